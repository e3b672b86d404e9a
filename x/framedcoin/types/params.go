package types

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"

	"github.com/framedcoin/framedcoin/pkg/appconsts"
)

// Params holds the owner-configurable minting configuration. Changes only
// affect future mints.
type Params struct {
	MintingFee         math.Int `json:"minting_fee"`
	MinimumValueToMint math.Int `json:"minimum_value_to_mint"`
}

// DefaultParams returns the default parameters for the framedcoin module
func DefaultParams() Params {
	return Params{
		MintingFee:         math.NewInt(appconsts.DefaultMintingFee),
		MinimumValueToMint: math.NewInt(appconsts.DefaultMinimumValueToMint),
	}
}

// NewParams creates a new Params instance
func NewParams(mintingFee, minimumValueToMint math.Int) Params {
	return Params{
		MintingFee:         mintingFee,
		MinimumValueToMint: minimumValueToMint,
	}
}

// MinimumPayment returns MintingFee + MinimumValueToMint.
func (p Params) MinimumPayment() math.Int {
	return MinimumPayment(p.MintingFee, p.MinimumValueToMint)
}

// Validate validates the set of params
func (p Params) Validate() error {
	if err := validateAmount("minting fee", p.MintingFee); err != nil {
		return err
	}
	if err := validateAmount("minimum value to mint", p.MinimumValueToMint); err != nil {
		return err
	}
	// a live certificate always escrows a positive value
	if p.MinimumValueToMint.IsZero() {
		return errorsmod.Wrap(ErrInvalidParams, "minimum value to mint must be positive")
	}
	return nil
}

func validateAmount(name string, v math.Int) error {
	if v.IsNil() {
		return errorsmod.Wrapf(ErrInvalidParams, "%s must be set", name)
	}
	if v.IsNegative() {
		return errorsmod.Wrapf(ErrInvalidParams, "%s must not be negative, got %s", name, v)
	}
	return nil
}
