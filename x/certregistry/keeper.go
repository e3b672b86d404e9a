// Package certregistry tracks which account holds each certificate identity.
// It mints identities, retires them and moves them between holders; the
// framedcoin module consults it on every holder-gated operation.
package certregistry

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	collcodec "cosmossdk.io/collections/codec"
	corestore "cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/framedcoin/framedcoin/x/certregistry/types"
)

// Keeper stores the holder of every live certificate identity.
type Keeper struct {
	holders collections.Map[uint64, sdk.AccAddress]
	byOwner collections.KeySet[collections.Pair[sdk.AccAddress, uint64]]
	// supply counts live identities. It is written at genesis and kept even
	// at zero, so the module store never commits empty.
	supply collections.Item[uint64]
	schema collections.Schema
}

// NewKeeper creates a new Keeper instance.
func NewKeeper(storeService corestore.KVStoreService) Keeper {
	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		holders: collections.NewMap(sb, types.HoldersKeyPrefix, "holders", collections.Uint64Key, collcodec.KeyToValueCodec(sdk.AccAddressKey)),
		byOwner: collections.NewKeySet(sb, types.HolderIndexKeyPrefix, "holder_index", collections.PairKeyCodec(sdk.AccAddressKey, collections.Uint64Key)),
		supply:  collections.NewItem(sb, types.SupplyKeyPrefix, "supply", collections.Uint64Value),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.schema = schema
	return k
}

// Logger returns the module logger extracted using the sdk context.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// OwnerOf returns the current holder of id.
func (k Keeper) OwnerOf(ctx context.Context, id uint64) (sdk.AccAddress, error) {
	owner, err := k.holders.Get(ctx, id)
	if errors.Is(err, collections.ErrNotFound) {
		return nil, errorsmod.Wrapf(types.ErrCertificateNotFound, "id %d", id)
	}
	return owner, err
}

// RegisterNew mints identity id to owner.
func (k Keeper) RegisterNew(ctx context.Context, id uint64, owner sdk.AccAddress) error {
	has, err := k.holders.Has(ctx, id)
	if err != nil {
		return err
	}
	if has {
		return errorsmod.Wrapf(types.ErrAlreadyRegistered, "id %d", id)
	}
	if err := k.holders.Set(ctx, id, owner); err != nil {
		return err
	}
	if err := k.byOwner.Set(ctx, collections.Join(owner, id)); err != nil {
		return err
	}
	return k.addSupply(ctx, 1)
}

// Retire removes identity id permanently.
func (k Keeper) Retire(ctx context.Context, id uint64) error {
	owner, err := k.OwnerOf(ctx, id)
	if err != nil {
		return err
	}
	if err := k.holders.Remove(ctx, id); err != nil {
		return err
	}
	if err := k.byOwner.Remove(ctx, collections.Join(owner, id)); err != nil {
		return err
	}
	return k.addSupply(ctx, -1)
}

// Supply returns the number of live identities.
func (k Keeper) Supply(ctx context.Context) (uint64, error) {
	supply, err := k.supply.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return 0, nil
	}
	return supply, err
}

func (k Keeper) addSupply(ctx context.Context, delta int64) error {
	supply, err := k.Supply(ctx)
	if err != nil {
		return err
	}
	if delta < 0 && supply < uint64(-delta) {
		return fmt.Errorf("identity supply %d cannot drop by %d", supply, -delta)
	}
	return k.supply.Set(ctx, uint64(int64(supply)+delta))
}

// Transfer moves identity id from its current holder to recipient.
func (k Keeper) Transfer(ctx context.Context, id uint64, sender, recipient sdk.AccAddress) error {
	owner, err := k.OwnerOf(ctx, id)
	if err != nil {
		return err
	}
	if !owner.Equals(sender) {
		return errorsmod.Wrapf(types.ErrNotHolder, "id %d is held by %s", id, owner)
	}
	if err := k.byOwner.Remove(ctx, collections.Join(owner, id)); err != nil {
		return err
	}
	if err := k.holders.Set(ctx, id, recipient); err != nil {
		return err
	}
	if err := k.byOwner.Set(ctx, collections.Join(recipient, id)); err != nil {
		return err
	}

	k.Logger(ctx).Debug("certificate transferred", "id", id, "from", sender.String(), "to", recipient.String())
	return nil
}

// IdentitiesOf lists the identities held by owner in ascending order.
func (k Keeper) IdentitiesOf(ctx context.Context, owner sdk.AccAddress) ([]uint64, error) {
	rng := collections.NewPrefixedPairRange[sdk.AccAddress, uint64](owner)
	iter, err := k.byOwner.Iterate(ctx, rng)
	if err != nil {
		return nil, err
	}
	keys, err := iter.Keys()
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(keys))
	for _, key := range keys {
		ids = append(ids, key.K2())
	}
	return ids, nil
}
