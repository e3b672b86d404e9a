package keeper

import (
	"context"

	"github.com/framedcoin/framedcoin/x/framedcoin/types"
)

// InitGenesis loads the module state from genesis. Certificates in genesis
// must already be registered with the ownership registry.
func (k *Keeper) InitGenesis(ctx context.Context, gs *types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return err
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	if err := k.params.Set(ctx, gs.Params); err != nil {
		return err
	}
	if err := k.paused.Set(ctx, gs.Paused); err != nil {
		return err
	}
	if err := k.counter.Set(ctx, gs.Counter); err != nil {
		return err
	}
	if err := k.unwithdrawnFees.Set(ctx, gs.UnwithdrawnFees); err != nil {
		return err
	}
	for _, c := range gs.Certificates {
		if err := k.certificates.Set(ctx, c.ID, c.Certificate); err != nil {
			return err
		}
	}
	return k.totalEscrowed.Set(ctx, gs.TotalEscrowed())
}

// ExportGenesis returns the module state.
func (k *Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	params, err := k.getParams(ctx)
	if err != nil {
		return nil, err
	}
	paused, err := k.isPaused(ctx)
	if err != nil {
		return nil, err
	}
	counter, err := k.counter.Peek(ctx)
	if err != nil {
		return nil, err
	}
	fees, err := k.getUnwithdrawnFees(ctx)
	if err != nil {
		return nil, err
	}
	certs, err := k.allCertificates(ctx)
	if err != nil {
		return nil, err
	}

	return &types.GenesisState{
		Params:          params,
		Paused:          paused,
		Counter:         counter,
		UnwithdrawnFees: fees,
		Certificates:    certs,
	}, nil
}
