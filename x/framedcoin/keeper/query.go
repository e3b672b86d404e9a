package keeper

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"

	"github.com/framedcoin/framedcoin/x/framedcoin/types"
)

// Certificate returns the record of certificate id.
func (k *Keeper) Certificate(ctx context.Context, id uint64) (types.Certificate, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	return k.getRecord(ctx, id)
}

// Certificates returns every live certificate in id order.
func (k *Keeper) Certificates(ctx context.Context) ([]types.IdentifiedCertificate, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	return k.allCertificates(ctx)
}

// Params returns the current minting configuration.
func (k *Keeper) Params(ctx context.Context) (types.Params, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	return k.getParams(ctx)
}

// MinimumPayment returns MintingFee + MinimumValueToMint.
func (k *Keeper) MinimumPayment(ctx context.Context) (math.Int, error) {
	params, err := k.Params(ctx)
	if err != nil {
		return math.Int{}, err
	}
	return params.MinimumPayment(), nil
}

// TokenCounter returns the number of certificates ever minted, which is also
// the last id assigned.
func (k *Keeper) TokenCounter(ctx context.Context) (uint64, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	return k.counter.Peek(ctx)
}

// Paused reports whether minting is paused.
func (k *Keeper) Paused(ctx context.Context) (bool, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	return k.isPaused(ctx)
}

// TotalEscrowedValue returns the base currency escrowed by live certificates.
func (k *Keeper) TotalEscrowedValue(ctx context.Context) (math.Int, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	return k.getEscrowed(ctx)
}

// TotalEscrowedValueReference converts TotalEscrowedValue at the current rate.
func (k *Keeper) TotalEscrowedValueReference(ctx context.Context) (math.Int, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	total, err := k.getEscrowed(ctx)
	if err != nil {
		return math.Int{}, err
	}
	rate, err := k.currentRate(ctx)
	if err != nil {
		return math.Int{}, err
	}
	return types.ConvertToReference(total, rate)
}

// ExchangeRate returns the current feed answer normalized to 18 decimals.
func (k *Keeper) ExchangeRate(ctx context.Context) (math.Int, error) {
	rate, err := k.currentRate(ctx)
	if err != nil {
		return math.Int{}, err
	}
	return rate.Normalized()
}

// PriceFeed describes the configured price oracle.
func (k *Keeper) PriceFeed() string {
	if s, ok := k.oracle.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", k.oracle)
}

// UnwithdrawnFees returns the fees collected since the last withdrawal. Only
// the owner may read it.
func (k *Keeper) UnwithdrawnFees(ctx context.Context, caller string) (math.Int, error) {
	sender, err := parseCaller(caller)
	if err != nil {
		return math.Int{}, err
	}
	if err := k.requireOwner(sender); err != nil {
		return math.Int{}, err
	}

	k.mu.RLock()
	defer k.mu.RUnlock()

	return k.getUnwithdrawnFees(ctx)
}

func (k *Keeper) getParams(ctx context.Context) (types.Params, error) {
	params, err := k.params.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return types.DefaultParams(), nil
	}
	return params, err
}

func (k *Keeper) allCertificates(ctx context.Context) ([]types.IdentifiedCertificate, error) {
	var out []types.IdentifiedCertificate
	err := k.walkCertificates(ctx, func(id uint64, cert types.Certificate) (bool, error) {
		out = append(out, types.IdentifiedCertificate{ID: id, Certificate: cert})
		return false, nil
	})
	return out, err
}
