package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
)

// accrueFee adds a collected minting fee to the unwithdrawn balance.
func (k *Keeper) accrueFee(ctx context.Context, fee math.Int) error {
	current, err := k.getUnwithdrawnFees(ctx)
	if err != nil {
		return err
	}
	return k.unwithdrawnFees.Set(ctx, current.Add(fee))
}

// drainFees returns the unwithdrawn balance and resets it to zero. The
// caller must pay the amount out inside the same atomic operation.
func (k *Keeper) drainFees(ctx context.Context) (math.Int, error) {
	amount, err := k.getUnwithdrawnFees(ctx)
	if err != nil {
		return math.Int{}, err
	}
	if err := k.unwithdrawnFees.Set(ctx, math.ZeroInt()); err != nil {
		return math.Int{}, err
	}
	return amount, nil
}

func (k *Keeper) getUnwithdrawnFees(ctx context.Context) (math.Int, error) {
	fees, err := k.unwithdrawnFees.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return math.ZeroInt(), nil
	}
	return fees, err
}
