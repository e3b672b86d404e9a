package types

import (
	"time"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// Certificate is the value record of one minted certificate.
//
// A live certificate has Value > 0 and no sale data. Cashing out zeroes Value
// and sets SoldFor/SoldAt; BoughtFor/BoughtAt never change after mint.
type Certificate struct {
	Value     math.Int  `json:"value"`
	BoughtFor math.Int  `json:"bought_for"`
	BoughtAt  time.Time `json:"bought_at"`
	SoldFor   math.Int  `json:"sold_for"`
	SoldAt    time.Time `json:"sold_at"`
}

// NewCertificate returns a live certificate escrowing value.
func NewCertificate(value, boughtFor math.Int, boughtAt time.Time) Certificate {
	return Certificate{
		Value:     value,
		BoughtFor: boughtFor,
		BoughtAt:  boughtAt.UTC(),
		SoldFor:   math.ZeroInt(),
	}
}

// IsCashedOut reports whether the certificate has been redeemed.
func (c Certificate) IsCashedOut() bool {
	return !c.SoldAt.IsZero()
}

// Validate checks the per-record invariants.
func (c Certificate) Validate() error {
	if c.Value.IsNil() || c.BoughtFor.IsNil() || c.SoldFor.IsNil() {
		return errorsmod.Wrap(ErrInvalidCertificate, "amounts must be set")
	}
	if c.Value.IsNegative() || c.BoughtFor.IsNegative() || c.SoldFor.IsNegative() {
		return errorsmod.Wrap(ErrInvalidCertificate, "amounts must not be negative")
	}
	if c.BoughtAt.IsZero() {
		return errorsmod.Wrap(ErrInvalidCertificate, "bought at must be set")
	}
	if c.IsCashedOut() {
		if !c.Value.IsZero() {
			return errorsmod.Wrapf(ErrInvalidCertificate, "cashed out certificate holds %s", c.Value)
		}
		return nil
	}
	if !c.Value.IsPositive() {
		return errorsmod.Wrap(ErrInvalidCertificate, "live certificate holds no value")
	}
	if !c.SoldFor.IsZero() {
		return errorsmod.Wrapf(ErrInvalidCertificate, "live certificate sold for %s", c.SoldFor)
	}
	return nil
}

// IdentifiedCertificate pairs a certificate with its id for genesis and
// listing queries.
type IdentifiedCertificate struct {
	ID          uint64      `json:"id"`
	Certificate Certificate `json:"certificate"`
}
