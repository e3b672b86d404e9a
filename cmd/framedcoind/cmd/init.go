package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/spf13/cobra"

	"github.com/framedcoin/framedcoin/app"
	"github.com/framedcoin/framedcoin/pkg/pricefeed"
	framedcointypes "github.com/framedcoin/framedcoin/x/framedcoin/types"
)

const (
	flagOwner        = "owner"
	flagChainID      = "chain-id"
	flagMintingFee   = "minting-fee"
	flagMinimumValue = "minimum-value"
	flagAccount      = "account"
	flagDBBackend    = "db-backend"
	flagPriceFeedURL = "price-feed-url"
	flagOverwrite    = "overwrite"
)

func initCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write config.toml and genesis.json for a new node",
		Long: `Write config.toml and genesis.json into <home>/config.

Genesis accounts are funded with base currency at chain start:

  framedcoind init --owner framed1... --account framed1...=5000000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			nctx, err := getNodeContext(cmd)
			if err != nil {
				return err
			}

			overwrite, _ := cmd.Flags().GetBool(flagOverwrite)
			if _, err := os.Stat(genesisPath(nctx.Home)); err == nil && !overwrite {
				return fmt.Errorf("genesis file already exists: %s", genesisPath(nctx.Home))
			}

			cfg, err := initConfigFromFlags(cmd, nctx.Config)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			accounts, err := parseGenesisAccounts(mustGetStringArray(cmd, flagAccount))
			if err != nil {
				return err
			}

			gs, err := newGenesis(cfg, accounts)
			if err != nil {
				return err
			}
			if err := WriteConfigFile(configPath(nctx.Home), cfg); err != nil {
				return err
			}
			if err := app.WriteGenesisFile(genesisPath(nctx.Home), gs); err != nil {
				return err
			}

			nctx.Logger.Info("initialized node home", "home", nctx.Home, "chain_id", cfg.ChainID, "owner", cfg.Owner)
			return nil
		},
	}

	cmd.Flags().String(flagOwner, "", "Bech32 address administering the ledger")
	cmd.Flags().String(flagChainID, "", "Chain id of the new network")
	cmd.Flags().Uint64(flagMintingFee, 0, "Fee retained from every mint, in base currency")
	cmd.Flags().Uint64(flagMinimumValue, 0, "Minimum value a certificate escrows, in base currency")
	cmd.Flags().StringArray(flagAccount, nil, "Genesis account as <address>=<amount>. Repeatable")
	cmd.Flags().String(flagDBBackend, "", "State database backend (goleveldb|memdb)")
	cmd.Flags().String(flagPriceFeedURL, "", "Use the remote price feed at this URL instead of the static feed")
	cmd.Flags().Bool(flagOverwrite, false, "Overwrite an existing genesis file")
	return cmd
}

// initConfigFromFlags applies the init flags that were set to cfg.
func initConfigFromFlags(cmd *cobra.Command, cfg Config) (Config, error) {
	flags := cmd.Flags()
	var err error
	if flags.Changed(flagOwner) {
		cfg.Owner, err = flags.GetString(flagOwner)
	}
	if err == nil && flags.Changed(flagChainID) {
		cfg.ChainID, err = flags.GetString(flagChainID)
	}
	if err == nil && flags.Changed(flagMintingFee) {
		cfg.MintingFee, err = flags.GetUint64(flagMintingFee)
	}
	if err == nil && flags.Changed(flagMinimumValue) {
		cfg.MinimumValueToMint, err = flags.GetUint64(flagMinimumValue)
	}
	if err == nil && flags.Changed(flagDBBackend) {
		cfg.DBBackend, err = flags.GetString(flagDBBackend)
	}
	if err == nil && flags.Changed(flagPriceFeedURL) {
		cfg.PriceFeed.URL, err = flags.GetString(flagPriceFeedURL)
		cfg.PriceFeed.Kind = priceFeedHTTP
	}
	return cfg, err
}

func parseGenesisAccounts(entries []string) ([]app.GenesisAccount, error) {
	accounts := make([]app.GenesisAccount, 0, len(entries))
	for _, entry := range entries {
		addr, amountStr, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("invalid genesis account %q, expected <address>=<amount>", entry)
		}
		amount, err := parseAmount(amountStr)
		if err != nil {
			return nil, fmt.Errorf("genesis account %s: %w", addr, err)
		}
		accounts = append(accounts, app.GenesisAccount{Address: addr, Amount: amount})
	}
	return accounts, nil
}

// newGenesis builds the default node genesis with the configured params and
// funded accounts.
func newGenesis(cfg Config, accounts []app.GenesisAccount) (*app.GenesisState, error) {
	tempApp, err := app.New(log.NewNopLogger(), dbm.NewMemDB(), pricefeed.NewMockFeed(), cfg.Owner, app.WithChainID(cfg.ChainID))
	if err != nil {
		return nil, err
	}
	defer tempApp.Close()

	gs := tempApp.DefaultGenesis()
	gs.Accounts = accounts

	var moduleGenesis framedcointypes.GenesisState
	if err := json.Unmarshal(gs.AppState[framedcointypes.ModuleName], &moduleGenesis); err != nil {
		return nil, err
	}
	moduleGenesis.Params = framedcointypes.NewParams(
		math.NewIntFromUint64(cfg.MintingFee),
		math.NewIntFromUint64(cfg.MinimumValueToMint),
	)
	bz, err := json.Marshal(moduleGenesis)
	if err != nil {
		return nil, err
	}
	gs.AppState[framedcointypes.ModuleName] = bz

	if err := tempApp.ValidateGenesis(gs); err != nil {
		return nil, err
	}
	return gs, nil
}

func parseAmount(s string) (math.Int, error) {
	amount, ok := math.NewIntFromString(strings.TrimSpace(s))
	if !ok {
		return math.Int{}, fmt.Errorf("invalid amount %q", s)
	}
	if amount.IsNegative() {
		return math.Int{}, errors.New("amount must not be negative")
	}
	return amount, nil
}

func mustGetStringArray(cmd *cobra.Command, name string) []string {
	values, err := cmd.Flags().GetStringArray(name)
	if err != nil {
		panic(err)
	}
	return values
}
