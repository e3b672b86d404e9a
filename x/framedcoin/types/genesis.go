package types

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// GenesisState is the framedcoin module state at chain start or export.
type GenesisState struct {
	Params          Params                  `json:"params"`
	Paused          bool                    `json:"paused"`
	Counter         uint64                  `json:"counter"`
	UnwithdrawnFees math.Int                `json:"unwithdrawn_fees"`
	Certificates    []IdentifiedCertificate `json:"certificates"`
}

// DefaultGenesis returns the default module genesis.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:          DefaultParams(),
		UnwithdrawnFees: math.ZeroInt(),
	}
}

// TotalEscrowed sums the value of every certificate in the genesis.
func (gs GenesisState) TotalEscrowed() math.Int {
	total := math.ZeroInt()
	for _, c := range gs.Certificates {
		total = total.Add(c.Certificate.Value)
	}
	return total
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if gs.UnwithdrawnFees.IsNil() || gs.UnwithdrawnFees.IsNegative() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "unwithdrawn fees must be non-negative")
	}

	seen := make(map[uint64]struct{}, len(gs.Certificates))
	for _, c := range gs.Certificates {
		if c.ID == 0 || c.ID > gs.Counter {
			return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "certificate id %d outside [1, %d]", c.ID, gs.Counter)
		}
		if _, exists := seen[c.ID]; exists {
			return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "duplicate certificate id %d", c.ID)
		}
		seen[c.ID] = struct{}{}

		if err := c.Certificate.Validate(); err != nil {
			return errorsmod.Wrapf(err, "certificate %d", c.ID)
		}
	}
	return nil
}
