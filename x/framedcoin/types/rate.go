package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"

	"github.com/framedcoin/framedcoin/pkg/appconsts"
)

// Rate is a price feed sample: Answer reference units per base unit, scaled
// by 10^Decimals.
type Rate struct {
	Answer   math.Int `json:"answer"`
	Decimals uint32   `json:"decimals"`
}

// NewRate returns a Rate for the given answer and precision.
func NewRate(answer math.Int, decimals uint32) Rate {
	return Rate{Answer: answer, Decimals: decimals}
}

// Validate rejects samples that cannot be used for conversion.
func (r Rate) Validate() error {
	if r.Answer.IsNil() || !r.Answer.IsPositive() {
		return errorsmod.Wrapf(ErrInvalidRate, "answer must be positive, got %s", r.Answer)
	}
	if r.Decimals > appconsts.MaxRateDecimals {
		return errorsmod.Wrapf(ErrInvalidRate, "decimals %d exceed maximum %d", r.Decimals, appconsts.MaxRateDecimals)
	}
	return nil
}

func (r Rate) String() string {
	return fmt.Sprintf("%se-%d", r.Answer, r.Decimals)
}

// Normalized returns the answer rescaled to NormalizedRateDecimals. Extra
// precision is truncated.
func (r Rate) Normalized() (math.Int, error) {
	if err := r.Validate(); err != nil {
		return math.Int{}, err
	}
	target := uint32(appconsts.NormalizedRateDecimals)
	if r.Decimals <= target {
		out, err := r.Answer.SafeMul(pow10(target - r.Decimals))
		if err != nil {
			return math.Int{}, errorsmod.Wrap(ErrConversionOverflow, err.Error())
		}
		return out, nil
	}
	return r.Answer.Quo(pow10(r.Decimals - target)), nil
}

// ConvertToReference converts a base currency amount to the reference
// currency: amount * answer / 10^decimals, truncated toward zero. The
// product is checked against the 256-bit bound of math.Int and reported as
// ErrConversionOverflow instead of wrapping.
//
// This is the only place rate math happens; mint and cash-out both use it.
func ConvertToReference(amount math.Int, rate Rate) (math.Int, error) {
	if err := rate.Validate(); err != nil {
		return math.Int{}, err
	}
	if amount.IsNil() || amount.IsNegative() {
		return math.Int{}, errorsmod.Wrapf(ErrConversionOverflow, "amount must be non-negative, got %s", amount)
	}
	product, err := amount.SafeMul(rate.Answer)
	if err != nil {
		return math.Int{}, errorsmod.Wrapf(ErrConversionOverflow, "%s * %s: %s", amount, rate.Answer, err)
	}
	return product.Quo(pow10(rate.Decimals)), nil
}

func pow10(n uint32) math.Int {
	return math.NewIntWithDecimal(1, int(n))
}
