package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/framedcoin/framedcoin/x/framedcoin/types"
)

// Pause stops minting. Pausing an already paused module is a no-op.
func (k *Keeper) Pause(ctx context.Context, msg *types.MsgPause) (*types.MsgPauseResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	events, err := k.setPaused(ctx, msg.Sender, true)
	if err != nil {
		return nil, err
	}
	return &types.MsgPauseResponse{Events: events}, nil
}

// Unpause resumes minting. Unpausing a running module is a no-op.
func (k *Keeper) Unpause(ctx context.Context, msg *types.MsgUnpause) (*types.MsgUnpauseResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	events, err := k.setPaused(ctx, msg.Sender, false)
	if err != nil {
		return nil, err
	}
	return &types.MsgUnpauseResponse{Events: events}, nil
}

func (k *Keeper) setPaused(ctx context.Context, caller string, paused bool) ([]types.Event, error) {
	sender, err := parseCaller(caller)
	if err != nil {
		return nil, err
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	var events []types.Event
	err = k.atomically(ctx, func(ctx sdk.Context) error {
		if err := k.requireOwner(sender); err != nil {
			return err
		}
		current, err := k.isPaused(ctx)
		if err != nil {
			return err
		}
		if current == paused {
			return nil
		}
		if err := k.paused.Set(ctx, paused); err != nil {
			return err
		}

		if paused {
			events = []types.Event{types.EventPaused{}}
		} else {
			events = []types.Event{types.EventUnpaused{}}
		}
		emitEvents(ctx, events...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(events) > 0 {
		k.Logger(ctx).Info("pause state changed", "paused", paused)
	}
	return events, nil
}

func (k *Keeper) isPaused(ctx context.Context) (bool, error) {
	paused, err := k.paused.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return false, nil
	}
	return paused, err
}
