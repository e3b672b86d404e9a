package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"github.com/framedcoin/framedcoin/pkg/appconsts"
)

// GenesisAccount is an account funded at chain start.
type GenesisAccount struct {
	Address string   `json:"address"`
	Amount  math.Int `json:"amount"`
}

// GenesisState is the node genesis: chain metadata, funded accounts and the
// raw state of every module keyed by module name.
type GenesisState struct {
	ChainID     string                     `json:"chain_id"`
	GenesisTime time.Time                  `json:"genesis_time"`
	Accounts    []GenesisAccount           `json:"accounts"`
	AppState    map[string]json.RawMessage `json:"app_state"`
}

// DefaultGenesis returns a genesis with no funded accounts and the default
// state of every module.
func (app *App) DefaultGenesis() *GenesisState {
	gs := &GenesisState{
		ChainID:     app.chainID,
		GenesisTime: time.Now().UTC().Truncate(time.Second),
		AppState:    make(map[string]json.RawMessage, len(app.modules)),
	}
	for _, m := range app.modules {
		gs.AppState[m.Name()] = m.DefaultGenesis()
	}
	return gs
}

// ValidateGenesis checks the accounts and the state of every module.
func (app *App) ValidateGenesis(gs *GenesisState) error {
	if gs.ChainID == "" {
		return fmt.Errorf("chain id must be set")
	}
	for _, acc := range gs.Accounts {
		if _, err := sdk.AccAddressFromBech32(acc.Address); err != nil {
			return fmt.Errorf("genesis account %q: %w", acc.Address, err)
		}
		if acc.Amount.IsNil() || acc.Amount.IsNegative() {
			return fmt.Errorf("genesis account %s: invalid amount", acc.Address)
		}
	}
	for _, m := range app.modules {
		bz, ok := gs.AppState[m.Name()]
		if !ok {
			continue
		}
		if err := m.ValidateGenesis(bz); err != nil {
			return fmt.Errorf("%s genesis: %w", m.Name(), err)
		}
	}
	return nil
}

// InitChain loads gs into an empty node and commits it as height 1.
func (app *App) InitChain(gs *GenesisState) error {
	if err := app.ValidateGenesis(gs); err != nil {
		return err
	}

	app.mu.Lock()
	defer app.mu.Unlock()

	if height := app.cms.LastCommitID().Version; height != 0 {
		return fmt.Errorf("chain already initialized at height %d", height)
	}
	app.chainID = gs.ChainID

	err := app.deliver(func(ctx sdk.Context) error {
		if !gs.GenesisTime.IsZero() {
			ctx = ctx.WithBlockTime(gs.GenesisTime)
		}
		if err := app.AccountKeeper.Params.Set(ctx, authtypes.DefaultParams()); err != nil {
			return err
		}
		if err := app.BankKeeper.SetParams(ctx, banktypes.DefaultParams()); err != nil {
			return err
		}
		for _, m := range app.modules {
			bz, ok := gs.AppState[m.Name()]
			if !ok {
				bz = m.DefaultGenesis()
			}
			if err := m.InitGenesis(ctx, bz); err != nil {
				return fmt.Errorf("%s genesis: %w", m.Name(), err)
			}
		}
		for _, acc := range gs.Accounts {
			if err := app.mintTo(ctx, sdk.MustAccAddressFromBech32(acc.Address), acc.Amount); err != nil {
				return fmt.Errorf("fund genesis account %s: %w", acc.Address, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	app.logger.Info("chain initialized", "chain_id", gs.ChainID, "accounts", len(gs.Accounts))
	return nil
}

// ExportGenesis returns the latest committed state as a genesis.
func (app *App) ExportGenesis() (*GenesisState, error) {
	gs := &GenesisState{
		ChainID:  app.chainID,
		AppState: make(map[string]json.RawMessage, len(app.modules)),
	}
	err := app.Query(func(ctx sdk.Context) error {
		gs.GenesisTime = ctx.BlockTime()
		app.BankKeeper.IterateAllBalances(ctx, func(addr sdk.AccAddress, coin sdk.Coin) bool {
			if coin.Denom == appconsts.BaseDenom && coin.Amount.IsPositive() {
				gs.Accounts = append(gs.Accounts, GenesisAccount{Address: addr.String(), Amount: coin.Amount})
			}
			return false
		})
		for _, m := range app.modules {
			bz, err := m.ExportGenesis(ctx)
			if err != nil {
				return fmt.Errorf("%s genesis: %w", m.Name(), err)
			}
			gs.AppState[m.Name()] = bz
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return gs, nil
}

// LoadGenesisFile reads a genesis written by WriteGenesisFile.
func LoadGenesisFile(path string) (*GenesisState, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var gs GenesisState
	if err := json.Unmarshal(bz, &gs); err != nil {
		return nil, fmt.Errorf("failed to parse genesis %s: %w", path, err)
	}
	return &gs, nil
}

// WriteGenesisFile writes gs as indented JSON.
func WriteGenesisFile(path string, gs *GenesisState) error {
	bz, err := json.MarshalIndent(gs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, bz, 0o644)
}
