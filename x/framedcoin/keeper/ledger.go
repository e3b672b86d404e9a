package keeper

import (
	"context"
	"errors"
	"time"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/framedcoin/framedcoin/x/framedcoin/types"
)

// createRecord assigns the next id and stores a live certificate for it.
func (k *Keeper) createRecord(ctx context.Context, netValue, boughtFor math.Int, now time.Time) (uint64, error) {
	last, err := k.counter.Next(ctx)
	if err != nil {
		return 0, err
	}
	id := last + 1

	if err := k.certificates.Set(ctx, id, types.NewCertificate(netValue, boughtFor, now)); err != nil {
		return 0, err
	}
	if err := k.addEscrowed(ctx, netValue); err != nil {
		return 0, err
	}
	return id, nil
}

// getRecord loads certificate id. Ids never minted and ids already burnt
// both yield ErrNotFound.
func (k *Keeper) getRecord(ctx context.Context, id uint64) (types.Certificate, error) {
	cert, err := k.certificates.Get(ctx, id)
	if errors.Is(err, collections.ErrNotFound) {
		return types.Certificate{}, errorsmod.Wrapf(types.ErrNotFound, "id %d", id)
	}
	return cert, err
}

// markSold records the sale of certificate id and releases its value from
// the escrow total. BoughtFor and BoughtAt are left untouched.
func (k *Keeper) markSold(ctx context.Context, id uint64, soldFor math.Int, now time.Time) error {
	cert, err := k.getRecord(ctx, id)
	if err != nil {
		return err
	}
	if !cert.Value.IsPositive() {
		return errorsmod.Wrapf(types.ErrAlreadyCashedOut, "id %d", id)
	}

	if err := k.subEscrowed(ctx, cert.Value); err != nil {
		return err
	}
	cert.SoldFor = soldFor
	cert.SoldAt = now.UTC()
	cert.Value = math.ZeroInt()
	return k.certificates.Set(ctx, id, cert)
}

// destroyRecord removes a cashed out certificate permanently.
func (k *Keeper) destroyRecord(ctx context.Context, id uint64) error {
	cert, err := k.getRecord(ctx, id)
	if err != nil {
		return err
	}
	if !cert.Value.IsZero() {
		return &types.StillHoldsValueError{Value: cert.Value}
	}
	return k.certificates.Remove(ctx, id)
}

func (k *Keeper) getEscrowed(ctx context.Context) (math.Int, error) {
	total, err := k.totalEscrowed.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return math.ZeroInt(), nil
	}
	return total, err
}

func (k *Keeper) addEscrowed(ctx context.Context, amount math.Int) error {
	total, err := k.getEscrowed(ctx)
	if err != nil {
		return err
	}
	return k.totalEscrowed.Set(ctx, total.Add(amount))
}

func (k *Keeper) subEscrowed(ctx context.Context, amount math.Int) error {
	total, err := k.getEscrowed(ctx)
	if err != nil {
		return err
	}
	if total.LT(amount) {
		return errorsmod.Wrapf(sdkerrors.ErrLogic, "escrow total %s below released value %s", total, amount)
	}
	return k.totalEscrowed.Set(ctx, total.Sub(amount))
}

// blockTime returns the time stamped on certificates by the current operation.
func blockTime(ctx sdk.Context) (time.Time, error) {
	now := ctx.BlockTime()
	if now.IsZero() {
		return time.Time{}, errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "block time is not set")
	}
	return now.UTC(), nil
}

// walkCertificates visits every live certificate in id order.
func (k *Keeper) walkCertificates(ctx context.Context, fn func(id uint64, cert types.Certificate) (stop bool, err error)) error {
	return k.certificates.Walk(ctx, nil, fn)
}
