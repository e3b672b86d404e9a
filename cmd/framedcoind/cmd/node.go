package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"cosmossdk.io/math"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"github.com/framedcoin/framedcoin/app"
	"github.com/framedcoin/framedcoin/pkg/pricefeed"
	framedcointypes "github.com/framedcoin/framedcoin/x/framedcoin/types"
)

const lockFileName = "framedcoind.lock"

// newPriceFeed builds the exchange rate source selected by cfg.
func newPriceFeed(cfg PriceFeedConfig) (framedcointypes.PriceOracle, error) {
	switch cfg.Kind {
	case priceFeedStatic:
		return pricefeed.NewStaticFeed(math.NewIntFromUint64(cfg.StaticAnswer), cfg.StaticDecimals), nil
	case priceFeedHTTP:
		timeout, err := cfg.RequestTimeout()
		if err != nil {
			return nil, err
		}
		return pricefeed.NewHTTPFeed(cfg.URL, &http.Client{Timeout: timeout}), nil
	default:
		return nil, fmt.Errorf("unsupported price feed %q", cfg.Kind)
	}
}

// openNode opens the node state under the home directory. A node without
// committed state is initialized from <home>/config/genesis.json.
func openNode(cmd *cobra.Command, opts ...app.Option) (*node, error) {
	nctx, err := getNodeContext(cmd)
	if err != nil {
		return nil, err
	}
	cfg := nctx.Config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath(nctx.Home), err)
	}

	oracle, err := newPriceFeed(cfg.PriceFeed)
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(nctx.Home, dataDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	// goleveldb admits a single process; fail fast with a readable error
	lock := flock.New(filepath.Join(dir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to lock %s: %w", dir, err)
	}
	if !locked {
		return nil, fmt.Errorf("node state %s is in use by another framedcoind process; use the HTTP API of `framedcoind serve`", dir)
	}

	db, err := dbm.NewDB(app.Name, dbm.BackendType(cfg.DBBackend), dir)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}

	opts = append([]app.Option{app.WithChainID(cfg.ChainID)}, opts...)
	a, err := app.New(nctx.Logger, db, oracle, cfg.Owner, opts...)
	if err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}
	n := &node{App: a, lock: lock}

	if n.LastHeight() == 0 {
		gs, err := app.LoadGenesisFile(genesisPath(nctx.Home))
		if err != nil {
			_ = n.Close()
			return nil, fmt.Errorf("node is not initialized, run `framedcoind init`: %w", err)
		}
		if err := n.InitChain(gs); err != nil {
			_ = n.Close()
			return nil, err
		}
		nctx.Logger.Info("initialized chain from genesis", "chain_id", gs.ChainID, "accounts", len(gs.Accounts))
	}
	return n, nil
}

// node is an open App holding the lock on its state directory.
type node struct {
	*app.App
	lock *flock.Flock
}

func (n *node) Close() error {
	return errors.Join(n.App.Close(), n.lock.Unlock())
}

// withNode opens the node, runs fn and closes it.
func withNode(cmd *cobra.Command, fn func(node *app.App) error) error {
	n, err := openNode(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if err := n.Close(); err != nil {
			n.Logger().Error("failed to close node", "error", err)
		}
	}()
	return fn(n.App)
}
