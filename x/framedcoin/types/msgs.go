package types

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/framedcoin/framedcoin/pkg/appconsts"
)

var (
	_ sdk.HasValidateBasic = (*MsgMint)(nil)
	_ sdk.HasValidateBasic = (*MsgCashOut)(nil)
	_ sdk.HasValidateBasic = (*MsgBurn)(nil)
	_ sdk.HasValidateBasic = (*MsgWithdrawFees)(nil)
	_ sdk.HasValidateBasic = (*MsgSetMintingFee)(nil)
	_ sdk.HasValidateBasic = (*MsgSetMinimumValueToMint)(nil)
	_ sdk.HasValidateBasic = (*MsgPause)(nil)
	_ sdk.HasValidateBasic = (*MsgUnpause)(nil)
)

// MsgMint pays Payment into escrow and mints a certificate to Sender.
type MsgMint struct {
	Sender  string   `json:"sender"`
	Payment sdk.Coin `json:"payment"`
}

type MsgMintResponse struct {
	ID        uint64   `json:"id"`
	NetValue  math.Int `json:"net_value"`
	BoughtFor math.Int `json:"bought_for"`
	Events    []Event  `json:"-"`
}

// ValidateBasic implements stateless validation for the HasValidateBasic interface.
func (msg *MsgMint) ValidateBasic() error {
	if err := validateAddress(msg.Sender); err != nil {
		return err
	}
	if msg.Payment.Denom != appconsts.BaseDenom {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, "payment must be in %s, got %q", appconsts.BaseDenom, msg.Payment.Denom)
	}
	if msg.Payment.Amount.IsNil() || msg.Payment.Amount.IsNegative() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidCoins, "payment must not be negative")
	}
	return nil
}

// MsgCashOut redeems the value escrowed by certificate ID.
type MsgCashOut struct {
	Sender string `json:"sender"`
	ID     uint64 `json:"id"`
}

type MsgCashOutResponse struct {
	Value   math.Int `json:"value"`
	SoldFor math.Int `json:"sold_for"`
	Events  []Event  `json:"-"`
}

func (msg *MsgCashOut) ValidateBasic() error {
	return validateAddress(msg.Sender)
}

// MsgBurn destroys a cashed out certificate.
type MsgBurn struct {
	Sender string `json:"sender"`
	ID     uint64 `json:"id"`
}

type MsgBurnResponse struct {
	Events []Event `json:"-"`
}

func (msg *MsgBurn) ValidateBasic() error {
	return validateAddress(msg.Sender)
}

// MsgWithdrawFees pays all unwithdrawn fees to the owner.
type MsgWithdrawFees struct {
	Sender string `json:"sender"`
}

type MsgWithdrawFeesResponse struct {
	Amount math.Int `json:"amount"`
	Events []Event  `json:"-"`
}

func (msg *MsgWithdrawFees) ValidateBasic() error {
	return validateAddress(msg.Sender)
}

type MsgSetMintingFee struct {
	Sender     string   `json:"sender"`
	MintingFee math.Int `json:"minting_fee"`
}

type MsgSetMintingFeeResponse struct {
	Events []Event `json:"-"`
}

func (msg *MsgSetMintingFee) ValidateBasic() error {
	if err := validateAddress(msg.Sender); err != nil {
		return err
	}
	return validateAmount("minting fee", msg.MintingFee)
}

type MsgSetMinimumValueToMint struct {
	Sender             string   `json:"sender"`
	MinimumValueToMint math.Int `json:"minimum_value_to_mint"`
}

type MsgSetMinimumValueToMintResponse struct {
	Events []Event `json:"-"`
}

func (msg *MsgSetMinimumValueToMint) ValidateBasic() error {
	if err := validateAddress(msg.Sender); err != nil {
		return err
	}
	return validateAmount("minimum value to mint", msg.MinimumValueToMint)
}

type MsgPause struct {
	Sender string `json:"sender"`
}

type MsgPauseResponse struct {
	Events []Event `json:"-"`
}

func (msg *MsgPause) ValidateBasic() error {
	return validateAddress(msg.Sender)
}

type MsgUnpause struct {
	Sender string `json:"sender"`
}

type MsgUnpauseResponse struct {
	Events []Event `json:"-"`
}

func (msg *MsgUnpause) ValidateBasic() error {
	return validateAddress(msg.Sender)
}

func validateAddress(addr string) error {
	if _, err := sdk.AccAddressFromBech32(addr); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid sender address: %s", err)
	}
	return nil
}
