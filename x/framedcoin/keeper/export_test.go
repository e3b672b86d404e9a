package keeper

import (
	"context"
	"time"

	"cosmossdk.io/math"

	"github.com/framedcoin/framedcoin/x/framedcoin/types"
)

// CreateRecord is a test func exposing the ledger create primitive.
func (k *Keeper) CreateRecord(ctx context.Context, netValue, boughtFor math.Int, now time.Time) (uint64, error) {
	return k.createRecord(ctx, netValue, boughtFor, now)
}

// MarkSold is a test func exposing the ledger cash-out primitive.
func (k *Keeper) MarkSold(ctx context.Context, id uint64, soldFor math.Int, now time.Time) error {
	return k.markSold(ctx, id, soldFor, now)
}

// DestroyRecord is a test func exposing the ledger destroy primitive.
func (k *Keeper) DestroyRecord(ctx context.Context, id uint64) error {
	return k.destroyRecord(ctx, id)
}

// SetCertificate is a test func used for corrupting the store collection.
func (k *Keeper) SetCertificate(ctx context.Context, id uint64, cert types.Certificate) error {
	return k.certificates.Set(ctx, id, cert)
}
