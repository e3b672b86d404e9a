package keeper

import (
	"context"
	"time"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/hashicorp/go-metrics"

	"github.com/framedcoin/framedcoin/x/framedcoin/types"
)

// Mint escrows the payment net of the minting fee in a new certificate held
// by the sender. Nothing is recorded unless every step, including collecting
// the payment, succeeds.
func (k *Keeper) Mint(ctx context.Context, msg *types.MsgMint) (*types.MsgMintResponse, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), "mint")

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	sender, err := parseCaller(msg.Sender)
	if err != nil {
		return nil, err
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	resp := &types.MsgMintResponse{}
	err = k.atomically(ctx, func(ctx sdk.Context) error {
		paused, err := k.isPaused(ctx)
		if err != nil {
			return err
		}
		if paused {
			return types.ErrPaused
		}

		params, err := k.getParams(ctx)
		if err != nil {
			return err
		}
		netValue, err := types.ValidatePayment(msg.Payment.Amount, params.MintingFee, params.MinimumValueToMint)
		if err != nil {
			return err
		}

		rate, err := k.currentRate(ctx)
		if err != nil {
			return err
		}
		boughtFor, err := types.ConvertToReference(netValue, rate)
		if err != nil {
			return err
		}

		now, err := blockTime(ctx)
		if err != nil {
			return err
		}
		id, err := k.createRecord(ctx, netValue, boughtFor, now)
		if err != nil {
			return err
		}
		if err := k.accrueFee(ctx, params.MintingFee); err != nil {
			return err
		}
		if err := k.registry.RegisterNew(ctx, id, sender); err != nil {
			return err
		}
		if err := k.collect(ctx, sender, msg.Payment.Amount); err != nil {
			return err
		}

		resp.ID = id
		resp.NetValue = netValue
		resp.BoughtFor = boughtFor
		resp.Events = []types.Event{types.EventMinted{ID: id, NetValue: netValue}}
		emitEvents(ctx, resp.Events...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	telemetry.IncrCounterWithLabels([]string{types.ModuleName, "minted"}, 1, []metrics.Label{telemetry.NewLabel("denom", msg.Payment.Denom)})
	k.Logger(ctx).Info("certificate minted", "id", resp.ID, "holder", msg.Sender, "net_value", resp.NetValue.String(), "bought_for", resp.BoughtFor.String())
	return resp, nil
}

// CashOut pays the escrowed value of a certificate to its holder and records
// the sale at the current rate.
func (k *Keeper) CashOut(ctx context.Context, msg *types.MsgCashOut) (*types.MsgCashOutResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	sender, err := parseCaller(msg.Sender)
	if err != nil {
		return nil, err
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	resp := &types.MsgCashOutResponse{}
	err = k.atomically(ctx, func(ctx sdk.Context) error {
		if err := k.requireCertificateOwner(ctx, sender, msg.ID); err != nil {
			return err
		}
		cert, err := k.getRecord(ctx, msg.ID)
		if err != nil {
			return err
		}
		if !cert.Value.IsPositive() {
			return types.ErrAlreadyCashedOut.Wrapf("id %d", msg.ID)
		}

		rate, err := k.currentRate(ctx)
		if err != nil {
			return err
		}
		soldFor, err := types.ConvertToReference(cert.Value, rate)
		if err != nil {
			return err
		}

		now, err := blockTime(ctx)
		if err != nil {
			return err
		}
		if err := k.markSold(ctx, msg.ID, soldFor, now); err != nil {
			return err
		}
		if err := k.pay(ctx, sender, cert.Value); err != nil {
			return err
		}

		resp.Value = cert.Value
		resp.SoldFor = soldFor
		resp.Events = []types.Event{types.EventCashedOut{ID: msg.ID, Value: cert.Value}}
		emitEvents(ctx, resp.Events...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	telemetry.IncrCounterWithLabels([]string{types.ModuleName, "cashed_out"}, 1, []metrics.Label{telemetry.NewLabel("denom", k.denom)})
	k.Logger(ctx).Info("certificate cashed out", "id", msg.ID, "holder", msg.Sender, "value", resp.Value.String(), "sold_for", resp.SoldFor.String())
	return resp, nil
}

// Burn destroys a cashed out certificate and retires its identity.
func (k *Keeper) Burn(ctx context.Context, msg *types.MsgBurn) (*types.MsgBurnResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	sender, err := parseCaller(msg.Sender)
	if err != nil {
		return nil, err
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	resp := &types.MsgBurnResponse{}
	err = k.atomically(ctx, func(ctx sdk.Context) error {
		if err := k.requireCertificateOwner(ctx, sender, msg.ID); err != nil {
			return err
		}
		if err := k.destroyRecord(ctx, msg.ID); err != nil {
			return err
		}
		if err := k.registry.Retire(ctx, msg.ID); err != nil {
			return err
		}

		resp.Events = []types.Event{types.EventBurnt{ID: msg.ID}}
		emitEvents(ctx, resp.Events...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	telemetry.IncrCounter(1, types.ModuleName, "burnt")
	k.Logger(ctx).Info("certificate burnt", "id", msg.ID, "holder", msg.Sender)
	return resp, nil
}

// WithdrawFees pays every unwithdrawn fee to the owner.
func (k *Keeper) WithdrawFees(ctx context.Context, msg *types.MsgWithdrawFees) (*types.MsgWithdrawFeesResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	sender, err := parseCaller(msg.Sender)
	if err != nil {
		return nil, err
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	resp := &types.MsgWithdrawFeesResponse{}
	err = k.atomically(ctx, func(ctx sdk.Context) error {
		if err := k.requireOwner(sender); err != nil {
			return err
		}
		amount, err := k.drainFees(ctx)
		if err != nil {
			return err
		}
		if err := k.pay(ctx, sender, amount); err != nil {
			return err
		}

		resp.Amount = amount
		resp.Events = []types.Event{types.EventFeesWithdrawn{Amount: amount}}
		emitEvents(ctx, resp.Events...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.Logger(ctx).Info("fees withdrawn", "amount", resp.Amount.String())
	return resp, nil
}

// SetMintingFee replaces the fee charged by future mints.
func (k *Keeper) SetMintingFee(ctx context.Context, msg *types.MsgSetMintingFee) (*types.MsgSetMintingFeeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	events, err := k.updateParams(ctx, msg.Sender, "minting_fee", msg.MintingFee, func(p *types.Params) {
		p.MintingFee = msg.MintingFee
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgSetMintingFeeResponse{Events: events}, nil
}

// SetMinimumValueToMint replaces the minimum net value future mints escrow.
func (k *Keeper) SetMinimumValueToMint(ctx context.Context, msg *types.MsgSetMinimumValueToMint) (*types.MsgSetMinimumValueToMintResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	events, err := k.updateParams(ctx, msg.Sender, "minimum_value_to_mint", msg.MinimumValueToMint, func(p *types.Params) {
		p.MinimumValueToMint = msg.MinimumValueToMint
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgSetMinimumValueToMintResponse{Events: events}, nil
}

func (k *Keeper) updateParams(ctx context.Context, caller, name string, value math.Int, update func(*types.Params)) ([]types.Event, error) {
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
		params, err := k.getParams(ctx)
		if err != nil {
			return err
		}
		update(&params)
		if err := params.Validate(); err != nil {
			return err
		}
		if err := k.params.Set(ctx, params); err != nil {
			return err
		}

		events = []types.Event{types.EventParamsUpdated{Param: name, Value: value}}
		emitEvents(ctx, events...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.Logger(ctx).Info("params updated", name, value.String())
	return events, nil
}
