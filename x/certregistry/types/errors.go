package types

import (
	errorsmod "cosmossdk.io/errors"
)

// Module error codes scoped by ModuleName.
// NOTE: Error code 1 is reserved by cosmos-sdk as internal error / unknown failure

var (
	ErrCertificateNotFound = errorsmod.Register(ModuleName, 2, "certificate identity not found")
	ErrAlreadyRegistered   = errorsmod.Register(ModuleName, 3, "certificate identity already registered")
	ErrNotHolder           = errorsmod.Register(ModuleName, 4, "sender does not hold the certificate")
)
