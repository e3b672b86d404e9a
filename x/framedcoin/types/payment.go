package types

import (
	"cosmossdk.io/math"
)

// ValidatePayment checks a mint payment against the configured fee and
// minimum value. On success it returns the value to escrow (paid minus the
// minting fee); the fee retained is always mintingFee.
func ValidatePayment(paid, mintingFee, minimumValueToMint math.Int) (math.Int, error) {
	minimumPayment := MinimumPayment(mintingFee, minimumValueToMint)
	if paid.IsNil() || paid.LT(minimumPayment) {
		if paid.IsNil() {
			paid = math.ZeroInt()
		}
		return math.Int{}, &InsufficientPaymentError{
			MinimumValueToMint: minimumValueToMint,
			MintingFee:         mintingFee,
			MinimumPayment:     minimumPayment,
			Paid:               paid,
		}
	}
	return paid.Sub(mintingFee), nil
}

// MinimumPayment is the smallest payment a mint accepts. It is always derived
// from its two components and never stored.
func MinimumPayment(mintingFee, minimumValueToMint math.Int) math.Int {
	return mintingFee.Add(minimumValueToMint)
}
