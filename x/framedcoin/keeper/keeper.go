// Package keeper implements the framedcoin module keeper: the certificate
// ledger, the fee treasury, owner and holder access checks, the mint pause
// switch and the mint / cash-out / burn / withdraw lifecycle built on them.
package keeper

import (
	"context"
	"sync"

	"cosmossdk.io/collections"
	corestore "cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/framedcoin/framedcoin/pkg/appconsts"
	"github.com/framedcoin/framedcoin/x/framedcoin/types"
)

// Keeper owns all framedcoin state. Every public operation holds mu for its
// whole duration, so no two operations interleave.
type Keeper struct {
	mu *sync.RWMutex

	certificates    collections.Map[uint64, types.Certificate]
	counter         collections.Sequence
	params          collections.Item[types.Params]
	unwithdrawnFees collections.Item[math.Int]
	totalEscrowed   collections.Item[math.Int]
	paused          collections.Item[bool]
	schema          collections.Schema

	bankKeeper types.BankKeeper
	registry   types.OwnershipRegistry
	oracle     types.PriceOracle

	owner sdk.AccAddress
	denom string
}

// NewKeeper creates and returns a new framedcoin Keeper. owner is the bech32
// address allowed to configure the module and withdraw fees; it cannot be
// changed afterwards.
func NewKeeper(
	storeService corestore.KVStoreService,
	bankKeeper types.BankKeeper,
	registry types.OwnershipRegistry,
	oracle types.PriceOracle,
	owner string,
) *Keeper {
	if bankKeeper == nil {
		panic("bankKeeper cannot be nil")
	}
	if registry == nil {
		panic("registry cannot be nil")
	}
	if oracle == nil {
		panic("oracle cannot be nil")
	}
	ownerAddr, err := sdk.AccAddressFromBech32(owner)
	if err != nil {
		panic(errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid owner address: %s", err))
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := &Keeper{
		mu:              &sync.RWMutex{},
		certificates:    collections.NewMap(sb, types.CertificatesKeyPrefix, "certificates", collections.Uint64Key, types.CertificateValue),
		counter:         collections.NewSequence(sb, types.CounterKeyPrefix, "counter"),
		params:          collections.NewItem(sb, types.ParamsKeyPrefix, "params", types.ParamsValue),
		unwithdrawnFees: collections.NewItem(sb, types.UnwithdrawnFeesKeyPrefix, "unwithdrawn_fees", sdk.IntValue),
		totalEscrowed:   collections.NewItem(sb, types.TotalEscrowedKeyPrefix, "total_escrowed", sdk.IntValue),
		paused:          collections.NewItem(sb, types.PausedKeyPrefix, "paused", collections.BoolValue),
		bankKeeper:      bankKeeper,
		registry:        registry,
		oracle:          oracle,
		owner:           ownerAddr,
		denom:           appconsts.BaseDenom,
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.schema = schema

	return k
}

// Logger returns the module logger extracted using the sdk context.
func (k *Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// Owner returns the module owner.
func (k *Keeper) Owner() sdk.AccAddress {
	return k.owner
}

// atomically runs fn on a cached branch of ctx and writes the branch back,
// together with the events fn emitted, only if fn succeeds.
func (k *Keeper) atomically(ctx context.Context, fn func(ctx sdk.Context) error) error {
	cacheCtx, write := sdk.UnwrapSDKContext(ctx).CacheContext()
	if err := fn(cacheCtx); err != nil {
		return err
	}
	write()
	return nil
}

func emitEvents(ctx sdk.Context, events ...types.Event) {
	for _, e := range events {
		ctx.EventManager().EmitEvent(types.ToSDKEvent(e))
	}
}

func (k *Keeper) coins(amount math.Int) sdk.Coins {
	return sdk.NewCoins(sdk.NewCoin(k.denom, amount))
}

// pay sends amount of the base currency from escrow to recipient.
func (k *Keeper) pay(ctx sdk.Context, recipient sdk.AccAddress, amount math.Int) error {
	if amount.IsZero() {
		return nil
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, k.coins(amount)); err != nil {
		return errorsmod.Wrapf(types.ErrTransferFailed, "send %s%s to %s: %s", amount, k.denom, recipient, err)
	}
	return nil
}

// collect moves amount of the base currency from payer into escrow.
func (k *Keeper) collect(ctx sdk.Context, payer sdk.AccAddress, amount math.Int) error {
	if amount.IsZero() {
		return nil
	}
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, payer, types.ModuleName, k.coins(amount)); err != nil {
		return errorsmod.Wrapf(types.ErrTransferFailed, "collect %s%s from %s: %s", amount, k.denom, payer, err)
	}
	return nil
}

// currentRate samples the oracle once. Any failure, including an unusable
// sample, is reported as ErrOracleUnavailable.
func (k *Keeper) currentRate(ctx context.Context) (types.Rate, error) {
	rate, err := k.oracle.CurrentRate(ctx)
	if err != nil {
		return types.Rate{}, errorsmod.Wrap(types.ErrOracleUnavailable, err.Error())
	}
	if err := rate.Validate(); err != nil {
		return types.Rate{}, errorsmod.Wrap(types.ErrOracleUnavailable, err.Error())
	}
	return rate, nil
}
