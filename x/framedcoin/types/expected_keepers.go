package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper defines the expected interface for the currency transfers
// performed by the framedcoin module. Every call is treated as fallible and
// is never retried.
type BankKeeper interface {
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}

// OwnershipRegistry answers who holds a certificate identity and mints or
// retires identities. Holders can change between calls, so it is queried on
// every access check.
type OwnershipRegistry interface {
	OwnerOf(ctx context.Context, id uint64) (sdk.AccAddress, error)
	RegisterNew(ctx context.Context, id uint64, owner sdk.AccAddress) error
	Retire(ctx context.Context, id uint64) error
}

// PriceOracle is a read-only exchange rate feed from the base currency to
// the reference currency. Implementations neither cache nor retry.
type PriceOracle interface {
	CurrentRate(ctx context.Context) (Rate, error)
}
