package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	storemetrics "cosmossdk.io/store/metrics"
	pruningtypes "cosmossdk.io/store/pruning/types"
	storetypes "cosmossdk.io/store/types"
	tmproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/auth"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/cosmos/cosmos-sdk/x/bank"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/filecoin-project/go-clock"

	"github.com/framedcoin/framedcoin/app/encoding"
	"github.com/framedcoin/framedcoin/app/metrics"
	"github.com/framedcoin/framedcoin/x/certregistry"
	registrytypes "github.com/framedcoin/framedcoin/x/certregistry/types"
	"github.com/framedcoin/framedcoin/x/framedcoin"
	"github.com/framedcoin/framedcoin/x/framedcoin/keeper"
	framedcointypes "github.com/framedcoin/framedcoin/x/framedcoin/types"
)

const (
	Name = "framedcoin"

	// FaucetName is the module account minting base currency on development
	// networks.
	FaucetName = "faucet"
)

// maccPerms is short for module account permissions. It is a map from module
// account name to a list of permissions for that module account.
var maccPerms = map[string][]string{
	framedcointypes.ModuleName: nil,
	FaucetName:                 {authtypes.Minter},
}

// genesisModule is a module whose state is carried in the node genesis.
type genesisModule interface {
	Name() string
	DefaultGenesis() json.RawMessage
	ValidateGenesis(json.RawMessage) error
	InitGenesis(context.Context, json.RawMessage) error
	ExportGenesis(context.Context) (json.RawMessage, error)
}

// App is a single-process ledger node. Every operation runs on a branch of
// the latest committed state and is committed as its own block when it
// succeeds.
type App struct {
	mu sync.RWMutex

	logger         log.Logger
	db             dbm.DB
	cms            storetypes.CommitMultiStore
	keys           map[string]*storetypes.KVStoreKey
	encodingConfig encoding.Config
	chainID        string
	clock          clock.Clock
	metrics        *metrics.Ledger

	// keepers
	AccountKeeper    authkeeper.AccountKeeper
	BankKeeper       bankkeeper.BaseKeeper
	RegistryKeeper   certregistry.Keeper
	FramedcoinKeeper *keeper.Keeper

	// modules in genesis order
	modules    []genesisModule
	invariants *invariantRegistry
}

// New opens the node state in db. owner is the bech32 address administering
// the framedcoin module; oracle prices every mint and cash-out.
func New(logger log.Logger, db dbm.DB, oracle framedcointypes.PriceOracle, owner string, opts ...Option) (*App, error) {
	if _, err := sdk.AccAddressFromBech32(owner); err != nil {
		return nil, fmt.Errorf("invalid owner address %q: %w", owner, err)
	}

	encodingConfig := encoding.MakeConfig(auth.AppModuleBasic{}, bank.AppModuleBasic{})
	keys := storetypes.NewKVStoreKeys(allStoreKeys()...)

	cms := store.NewCommitMultiStore(db, logger, storemetrics.NewNoOpMetrics())
	cms.SetPruning(pruningtypes.NewPruningOptions(pruningtypes.PruningDefault))
	for _, key := range keys {
		cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, nil)
	}
	if err := cms.LoadLatestVersion(); err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	app := &App{
		logger:         logger,
		db:             db,
		cms:            cms,
		keys:           keys,
		encodingConfig: encodingConfig,
		chainID:        Name,
		clock:          clock.New(),
		invariants:     newInvariantRegistry(),
	}
	for _, opt := range opts {
		opt(app)
	}

	app.AccountKeeper = authkeeper.NewAccountKeeper(
		encodingConfig.Codec,
		runtime.NewKVStoreService(keys[authtypes.StoreKey]),
		authtypes.ProtoBaseAccount,
		maccPerms,
		encodingConfig.AddressCodec,
		encodingConfig.AddressPrefix,
		owner,
	)

	app.BankKeeper = bankkeeper.NewBaseKeeper(
		encodingConfig.Codec,
		runtime.NewKVStoreService(keys[banktypes.StoreKey]),
		app.AccountKeeper,
		app.BlockedAddresses(),
		owner,
		logger,
	)

	app.RegistryKeeper = certregistry.NewKeeper(runtime.NewKVStoreService(keys[registrytypes.StoreKey]))

	app.FramedcoinKeeper = keeper.NewKeeper(
		runtime.NewKVStoreService(keys[framedcointypes.StoreKey]),
		app.BankKeeper,
		app.RegistryKeeper,
		oracle,
		owner,
	)

	framedcoinModule := framedcoin.NewAppModule(app.FramedcoinKeeper)
	framedcoinModule.RegisterInvariants(app.invariants)

	// the registry must hold every identity before certificates are imported
	app.modules = []genesisModule{
		certregistry.NewAppModule(app.RegistryKeeper),
		framedcoinModule,
	}

	return app, nil
}

func allStoreKeys() []string {
	return []string{
		authtypes.StoreKey, banktypes.StoreKey,
		registrytypes.StoreKey, framedcointypes.StoreKey,
	}
}

// Logger returns the node logger.
func (app *App) Logger() log.Logger {
	return app.logger
}

// LastHeight returns the height of the latest committed operation. It is 0
// until InitChain runs.
func (app *App) LastHeight() int64 {
	app.mu.RLock()
	defer app.mu.RUnlock()

	return app.cms.LastCommitID().Version
}

// ModuleAccountAddrs returns all the app's module account addresses.
func (app *App) ModuleAccountAddrs() map[string]bool {
	modAccAddrs := make(map[string]bool)
	for acc := range maccPerms {
		modAccAddrs[authtypes.NewModuleAddress(acc).String()] = true
	}

	return modAccAddrs
}

// BlockedAddresses returns the addresses that may not receive plain
// transfers. Every module account is blocked, so the escrow can only be
// credited by a mint.
func (app *App) BlockedAddresses() map[string]bool {
	return app.ModuleAccountAddrs()
}

// GetEncodingConfig returns the node's encoding config.
func (app *App) GetEncodingConfig() encoding.Config {
	return app.encodingConfig
}

func (app *App) newContext(ms storetypes.MultiStore) sdk.Context {
	header := tmproto.Header{
		ChainID: app.chainID,
		Height:  app.cms.LastCommitID().Version + 1,
		Time:    app.clock.Now().UTC(),
	}
	return sdk.NewContext(ms, header, false, app.logger)
}

// Deliver runs fn against a branch of the latest state. The branch is
// committed as a new height only if fn succeeds.
func (app *App) Deliver(fn func(ctx sdk.Context) error) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	return app.deliver(fn)
}

func (app *App) deliver(fn func(ctx sdk.Context) error) error {
	ms := app.cms.CacheMultiStore()
	if err := fn(app.newContext(ms)); err != nil {
		return err
	}
	ms.Write()
	commitID := app.cms.Commit()
	app.logger.Debug("committed state", "height", commitID.Version, "hash", fmt.Sprintf("%X", commitID.Hash))

	app.observe()
	return nil
}

// Query runs fn against a read-only view of the latest committed state.
func (app *App) Query(fn func(ctx sdk.Context) error) error {
	app.mu.RLock()
	defer app.mu.RUnlock()

	return fn(app.newContext(app.cms.CacheMultiStore()))
}

// observe refreshes the ledger gauges from the committed state.
func (app *App) observe() {
	if app.metrics == nil {
		return
	}

	ctx := app.newContext(app.cms.CacheMultiStore())
	k := app.FramedcoinKeeper
	counter, err := k.TokenCounter(ctx)
	if err != nil {
		app.logger.Error("failed to read token counter", "error", err)
		return
	}
	escrowed, err := k.TotalEscrowedValue(ctx)
	if err != nil {
		app.logger.Error("failed to read escrowed value", "error", err)
		return
	}
	fees, err := k.UnwithdrawnFees(ctx, k.Owner().String())
	if err != nil {
		app.logger.Error("failed to read unwithdrawn fees", "error", err)
		return
	}
	paused, err := k.Paused(ctx)
	if err != nil {
		app.logger.Error("failed to read pause state", "error", err)
		return
	}

	app.metrics.Observe(metrics.Snapshot{
		Minted:          counter,
		Escrowed:        escrowed,
		UnwithdrawnFees: fees,
		Paused:          paused,
	})
}

// Close flushes and releases the node state.
func (app *App) Close() error {
	app.mu.Lock()
	defer app.mu.Unlock()

	var errs []error
	if closer, ok := app.cms.(interface{ Close() error }); ok {
		errs = append(errs, closer.Close())
	}
	errs = append(errs, app.db.Close())
	return errors.Join(errs...)
}
