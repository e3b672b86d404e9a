package types

import (
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	EventTypeMinted        = ModuleName + ".minted"
	EventTypeCashedOut     = ModuleName + ".cashed_out"
	EventTypeBurnt         = ModuleName + ".burnt"
	EventTypeFeesWithdrawn = ModuleName + ".fees_withdrawn"
	EventTypeParamsUpdated = ModuleName + ".params_updated"
	EventTypePaused        = ModuleName + ".paused"
	EventTypeUnpaused      = ModuleName + ".unpaused"

	AttributeKeyID       = "id"
	AttributeKeyNetValue = "net_value"
	AttributeKeyValue    = "value"
	AttributeKeyAmount   = "amount"
	AttributeKeyParam    = "param"
)

// Event is a domain event produced by a committed operation.
type Event interface {
	Type() string
	Attributes() []sdk.Attribute
}

// ToSDKEvent converts a domain event for the SDK event manager.
func ToSDKEvent(e Event) sdk.Event {
	return sdk.NewEvent(e.Type(), e.Attributes()...)
}

type EventMinted struct {
	ID       uint64
	NetValue math.Int
}

func (e EventMinted) Type() string { return EventTypeMinted }

func (e EventMinted) Attributes() []sdk.Attribute {
	return []sdk.Attribute{
		sdk.NewAttribute(AttributeKeyID, strconv.FormatUint(e.ID, 10)),
		sdk.NewAttribute(AttributeKeyNetValue, e.NetValue.String()),
	}
}

// EventCashedOut carries the value the certificate held right before it was
// zeroed.
type EventCashedOut struct {
	ID    uint64
	Value math.Int
}

func (e EventCashedOut) Type() string { return EventTypeCashedOut }

func (e EventCashedOut) Attributes() []sdk.Attribute {
	return []sdk.Attribute{
		sdk.NewAttribute(AttributeKeyID, strconv.FormatUint(e.ID, 10)),
		sdk.NewAttribute(AttributeKeyValue, e.Value.String()),
	}
}

type EventBurnt struct {
	ID uint64
}

func (e EventBurnt) Type() string { return EventTypeBurnt }

func (e EventBurnt) Attributes() []sdk.Attribute {
	return []sdk.Attribute{sdk.NewAttribute(AttributeKeyID, strconv.FormatUint(e.ID, 10))}
}

type EventFeesWithdrawn struct {
	Amount math.Int
}

func (e EventFeesWithdrawn) Type() string { return EventTypeFeesWithdrawn }

func (e EventFeesWithdrawn) Attributes() []sdk.Attribute {
	return []sdk.Attribute{sdk.NewAttribute(AttributeKeyAmount, e.Amount.String())}
}

// EventParamsUpdated is emitted by the owner setters.
type EventParamsUpdated struct {
	Param string
	Value math.Int
}

func (e EventParamsUpdated) Type() string { return EventTypeParamsUpdated }

func (e EventParamsUpdated) Attributes() []sdk.Attribute {
	return []sdk.Attribute{
		sdk.NewAttribute(AttributeKeyParam, e.Param),
		sdk.NewAttribute(AttributeKeyValue, e.Value.String()),
	}
}

type EventPaused struct{}

func (EventPaused) Type() string { return EventTypePaused }

func (EventPaused) Attributes() []sdk.Attribute { return nil }

type EventUnpaused struct{}

func (EventUnpaused) Type() string { return EventTypeUnpaused }

func (EventUnpaused) Attributes() []sdk.Attribute { return nil }
