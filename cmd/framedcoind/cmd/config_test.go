package cmd_test

import (
	"path/filepath"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framedcoin/framedcoin/cmd/framedcoind/cmd"
)

var configOwner = sdk.AccAddress("config_test_owner____").String()

func validConfig() cmd.Config {
	cfg := cmd.DefaultConfig()
	cfg.Owner = configOwner
	return cfg
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*cmd.Config)
		wantErr string
	}{
		{name: "default with owner", mutate: func(*cmd.Config) {}},
		{name: "memdb backend", mutate: func(c *cmd.Config) { c.DBBackend = "memdb" }},
		{name: "json logs", mutate: func(c *cmd.Config) { c.LogFormat = "json" }},
		{name: "module log filter", mutate: func(c *cmd.Config) { c.LogLevel = "x/framedcoin:debug,*:error" }},
		{name: "zero minting fee", mutate: func(c *cmd.Config) { c.MintingFee = 0 }},
		{name: "http feed", mutate: func(c *cmd.Config) {
			c.PriceFeed.Kind = "http"
			c.PriceFeed.URL = "http://127.0.0.1:8080/latest"
		}},
		{name: "missing owner", mutate: func(c *cmd.Config) { c.Owner = "" }, wantErr: "owner"},
		{name: "empty chain id", mutate: func(c *cmd.Config) { c.ChainID = "" }, wantErr: "chain_id"},
		{name: "zero minimum value", mutate: func(c *cmd.Config) { c.MinimumValueToMint = 0 }, wantErr: "minimum_value_to_mint"},
		{name: "unknown backend", mutate: func(c *cmd.Config) { c.DBBackend = "rocksdb" }, wantErr: "db_backend"},
		{name: "bad log level", mutate: func(c *cmd.Config) { c.LogLevel = "loud" }, wantErr: "log level"},
		{name: "bad log format", mutate: func(c *cmd.Config) { c.LogFormat = "xml" }, wantErr: "log_format"},
		{name: "unknown feed", mutate: func(c *cmd.Config) { c.PriceFeed.Kind = "oracle" }, wantErr: "price_feed.kind"},
		{name: "zero static answer", mutate: func(c *cmd.Config) { c.PriceFeed.StaticAnswer = 0 }, wantErr: "static_answer"},
		{name: "http feed without url", mutate: func(c *cmd.Config) { c.PriceFeed.Kind = "http" }, wantErr: "price_feed.url"},
		{name: "http feed bad timeout", mutate: func(c *cmd.Config) {
			c.PriceFeed.Kind = "http"
			c.PriceFeed.URL = "http://127.0.0.1:8080/latest"
			c.PriceFeed.Timeout = "-1s"
		}, wantErr: "price_feed.timeout"},
		{name: "metrics without address", mutate: func(c *cmd.Config) { c.Metrics.ListenAddr = "" }, wantErr: "metrics.listen_addr"},
		{name: "api without address", mutate: func(c *cmd.Config) { c.API.ListenAddr = "" }, wantErr: "api.listen_addr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoadConfigDefaultsWithoutFile(t *testing.T) {
	cfg, err := cmd.LoadConfig(t.TempDir(), pflag.NewFlagSet("test", pflag.ContinueOnError))
	require.NoError(t, err)
	assert.Equal(t, cmd.DefaultConfig(), cfg)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	home := t.TempDir()
	written := validConfig()
	written.MintingFee = 7
	written.PriceFeed.Kind = "http"
	written.PriceFeed.URL = "http://feed.local/latest"
	require.NoError(t, cmd.WriteConfigFile(filepath.Join(home, "config", "config.toml"), written))

	cfg, err := cmd.LoadConfig(home, pflag.NewFlagSet("test", pflag.ContinueOnError))
	require.NoError(t, err)
	assert.Equal(t, written, cfg)

	t.Setenv("FRAMEDCOIN_PRICE_FEED_TIMEOUT", "2s")
	t.Setenv("FRAMEDCOIN_MINTING_FEE", "9")
	cfg, err = cmd.LoadConfig(home, pflag.NewFlagSet("test", pflag.ContinueOnError))
	require.NoError(t, err)
	assert.Equal(t, "2s", cfg.PriceFeed.Timeout)
	assert.Equal(t, uint64(9), cfg.MintingFee)
	assert.Equal(t, configOwner, cfg.Owner)
}

func TestLoadConfigFlagsOverride(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String(cmd.FlagLogLevel, "", "")
	flags.String(cmd.FlagLogFormat, "", "")
	require.NoError(t, flags.Parse([]string{"--log-level", "debug"}))

	cfg, err := cmd.LoadConfig(t.TempDir(), flags)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "plain", cfg.LogFormat)
}
