package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// Module error codes scoped by ModuleName.
// NOTE: Error code 1 is reserved by cosmos-sdk as internal error / unknown failure

var (
	ErrInsufficientPayment           = errorsmod.Register(ModuleName, 2, "payment below minimum")
	ErrNotFound                      = errorsmod.Register(ModuleName, 3, "certificate not found")
	ErrAlreadyCashedOut              = errorsmod.Register(ModuleName, 4, "certificate already cashed out")
	ErrStillHoldsValue               = errorsmod.Register(ModuleName, 5, "certificate still holds value")
	ErrUnauthorized                  = errorsmod.Register(ModuleName, 6, "caller is not the owner")
	ErrUnauthorizedCertificateAccess = errorsmod.Register(ModuleName, 7, "caller does not hold the certificate")
	ErrPaused                        = errorsmod.Register(ModuleName, 8, "minting is paused")
	ErrOracleUnavailable             = errorsmod.Register(ModuleName, 9, "price oracle unavailable")
	ErrTransferFailed                = errorsmod.Register(ModuleName, 10, "currency transfer failed")
	ErrConversionOverflow            = errorsmod.Register(ModuleName, 11, "reference conversion overflow")
	ErrInvalidRate                   = errorsmod.Register(ModuleName, 12, "invalid exchange rate")
	ErrNotSupported                  = errorsmod.Register(ModuleName, 13, "operation not supported")
	ErrInvalidParams                 = errorsmod.Register(ModuleName, 14, "invalid params")
	ErrInvalidCertificate            = errorsmod.Register(ModuleName, 15, "invalid certificate record")
)

// InsufficientPaymentError reports a mint payment below MintingFee +
// MinimumValueToMint together with the values it was checked against.
type InsufficientPaymentError struct {
	MinimumValueToMint math.Int
	MintingFee         math.Int
	MinimumPayment     math.Int
	Paid               math.Int
}

func (e *InsufficientPaymentError) Error() string {
	return fmt.Sprintf("%s: minimum value to mint %s, minting fee %s, minimum payment %s, paid %s",
		ErrInsufficientPayment.Error(), e.MinimumValueToMint, e.MintingFee, e.MinimumPayment, e.Paid)
}

func (e *InsufficientPaymentError) Unwrap() error { return ErrInsufficientPayment }

// StillHoldsValueError reports a burn attempted on a certificate that has not
// been cashed out.
type StillHoldsValueError struct {
	Value math.Int
}

func (e *StillHoldsValueError) Error() string {
	return fmt.Sprintf("%s: %s", ErrStillHoldsValue.Error(), e.Value)
}

func (e *StillHoldsValueError) Unwrap() error { return ErrStillHoldsValue }
