package certregistry

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/framedcoin/framedcoin/x/certregistry/types"
)

// InitGenesis registers every holder in gs.
func (k Keeper) InitGenesis(ctx context.Context, gs *types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return err
	}
	if err := k.supply.Set(ctx, 0); err != nil {
		return err
	}
	for _, h := range gs.Holders {
		if err := k.RegisterNew(ctx, h.ID, sdk.MustAccAddressFromBech32(h.Address)); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis returns every live identity in ascending order.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	gs := types.DefaultGenesis()
	err := k.holders.Walk(ctx, nil, func(id uint64, holder sdk.AccAddress) (bool, error) {
		gs.Holders = append(gs.Holders, types.Holder{ID: id, Address: holder.String()})
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return gs, nil
}
