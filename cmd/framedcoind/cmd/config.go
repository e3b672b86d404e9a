package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/framedcoin/framedcoin/app"
	"github.com/framedcoin/framedcoin/pkg/appconsts"
)

const (
	// EnvPrefix is the prefix of environment variables overriding config.toml.
	EnvPrefix = "FRAMEDCOIN"

	configDir      = "config"
	dataDir        = "data"
	configFileName = "config.toml"
	genesisFile    = "genesis.json"
	envFileName    = ".env"

	priceFeedStatic = "static"
	priceFeedHTTP   = "http"

	logFormatPlain = "plain"
	logFormatJSON  = "json"
)

// Config is the node configuration stored in <home>/config/config.toml.
type Config struct {
	Owner              string `mapstructure:"owner" toml:"owner"`
	ChainID            string `mapstructure:"chain_id" toml:"chain_id"`
	MintingFee         uint64 `mapstructure:"minting_fee" toml:"minting_fee"`
	MinimumValueToMint uint64 `mapstructure:"minimum_value_to_mint" toml:"minimum_value_to_mint"`
	DBBackend          string `mapstructure:"db_backend" toml:"db_backend"`
	LogLevel           string `mapstructure:"log_level" toml:"log_level"`
	LogFormat          string `mapstructure:"log_format" toml:"log_format"`

	PriceFeed PriceFeedConfig `mapstructure:"price_feed" toml:"price_feed"`
	Metrics   MetricsConfig   `mapstructure:"metrics" toml:"metrics"`
	API       APIConfig       `mapstructure:"api" toml:"api"`
}

// PriceFeedConfig selects the exchange rate source.
type PriceFeedConfig struct {
	Kind           string `mapstructure:"kind" toml:"kind"`
	URL            string `mapstructure:"url" toml:"url"`
	Timeout        string `mapstructure:"timeout" toml:"timeout"`
	StaticAnswer   uint64 `mapstructure:"static_answer" toml:"static_answer"`
	StaticDecimals uint32 `mapstructure:"static_decimals" toml:"static_decimals"`
}

type MetricsConfig struct {
	Enabled           bool   `mapstructure:"enabled" toml:"enabled"`
	ListenAddr        string `mapstructure:"listen_addr" toml:"listen_addr"`
	DiskUsageInterval string `mapstructure:"disk_usage_interval" toml:"disk_usage_interval"`
}

type APIConfig struct {
	Enabled    bool   `mapstructure:"enabled" toml:"enabled"`
	ListenAddr string `mapstructure:"listen_addr" toml:"listen_addr"`
}

// DefaultConfig returns the configuration written by `framedcoind init`.
func DefaultConfig() Config {
	return Config{
		ChainID:            app.Name,
		MintingFee:         appconsts.DefaultMintingFee,
		MinimumValueToMint: appconsts.DefaultMinimumValueToMint,
		DBBackend:          string(dbm.GoLevelDBBackend),
		LogLevel:           "info",
		LogFormat:          logFormatPlain,
		PriceFeed: PriceFeedConfig{
			Kind:           priceFeedStatic,
			Timeout:        "5s",
			StaticAnswer:   appconsts.MockRateAnswer,
			StaticDecimals: appconsts.MockRateDecimals,
		},
		Metrics: MetricsConfig{
			Enabled:           true,
			ListenAddr:        "127.0.0.1:26660",
			DiskUsageInterval: "1m",
		},
		API: APIConfig{
			Enabled:    true,
			ListenAddr: "127.0.0.1:1317",
		},
	}
}

// Validate rejects malformed values.
func (c Config) Validate() error {
	if _, err := sdk.AccAddressFromBech32(c.Owner); err != nil {
		return fmt.Errorf("owner: %w", err)
	}
	if c.ChainID == "" {
		return errors.New("chain_id must not be empty")
	}
	if c.MinimumValueToMint == 0 {
		return errors.New("minimum_value_to_mint must be positive")
	}
	switch dbm.BackendType(c.DBBackend) {
	case dbm.GoLevelDBBackend, dbm.MemDBBackend:
	default:
		return fmt.Errorf("unsupported db_backend %q", c.DBBackend)
	}
	if _, err := logOptions(c.LogLevel, c.LogFormat); err != nil {
		return err
	}

	switch c.PriceFeed.Kind {
	case priceFeedStatic:
		if c.PriceFeed.StaticAnswer == 0 {
			return errors.New("price_feed.static_answer must be positive")
		}
		if c.PriceFeed.StaticDecimals > appconsts.MaxRateDecimals {
			return fmt.Errorf("price_feed.static_decimals exceeds %d", appconsts.MaxRateDecimals)
		}
	case priceFeedHTTP:
		if c.PriceFeed.URL == "" {
			return errors.New("price_feed.url must be set for the http feed")
		}
		if _, err := c.PriceFeed.RequestTimeout(); err != nil {
			return fmt.Errorf("price_feed.timeout: %w", err)
		}
	default:
		return fmt.Errorf("unsupported price_feed.kind %q", c.PriceFeed.Kind)
	}

	if c.Metrics.Enabled {
		if c.Metrics.ListenAddr == "" {
			return errors.New("metrics.listen_addr must be set when metrics are enabled")
		}
		if _, err := c.Metrics.Interval(); err != nil {
			return fmt.Errorf("metrics.disk_usage_interval: %w", err)
		}
	}
	if c.API.Enabled && c.API.ListenAddr == "" {
		return errors.New("api.listen_addr must be set when the api is enabled")
	}
	return nil
}

// RequestTimeout is the deadline of one price feed request.
func (c PriceFeedConfig) RequestTimeout() (time.Duration, error) {
	return positiveDuration(c.Timeout)
}

// Interval is how often the state directory size is measured.
func (c MetricsConfig) Interval() (time.Duration, error) {
	return positiveDuration(c.DiskUsageInterval)
}

func positiveDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration %s must be positive", s)
	}
	return d, nil
}

func configPath(home string) string {
	return filepath.Join(home, configDir, configFileName)
}

func genesisPath(home string) string {
	return filepath.Join(home, configDir, genesisFile)
}

func envPath(home string) string {
	return filepath.Join(home, configDir, envFileName)
}

// loadEnvFile exports the variables of <home>/config/.env that are not set
// in the environment already.
func loadEnvFile(home string) error {
	err := godotenv.Load(envPath(home))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", envPath(home), err)
	}
	return nil
}

// newViper returns a viper instance layering flags, FRAMEDCOIN_* environment
// variables (including <home>/config/.env) and config.toml over the defaults.
func newViper(home string, flags *pflag.FlagSet) (*viper.Viper, error) {
	if err := loadEnvFile(home); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(configPath(home))
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults, err := configMap(DefaultConfig())
	if err != nil {
		return nil, err
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	for key, flag := range map[string]string{
		"log_level":  FlagLogLevel,
		"log_format": FlagLogFormat,
	} {
		if f := flags.Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, err
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, os.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read %s: %w", configPath(home), err)
		}
	}
	return v, nil
}

// configMap flattens cfg into dotted viper keys.
func configMap(cfg Config) (map[string]any, error) {
	bz, err := toml.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	tree := make(map[string]any)
	if err := toml.Unmarshal(bz, &tree); err != nil {
		return nil, err
	}

	flat := make(map[string]any)
	var walk func(prefix string, m map[string]any)
	walk = func(prefix string, m map[string]any) {
		for key, value := range m {
			if sub, ok := value.(map[string]any); ok {
				walk(prefix+key+".", sub)
				continue
			}
			flat[prefix+key] = value
		}
	}
	walk("", tree)
	return flat, nil
}

// LoadConfig reads the node configuration for home.
func LoadConfig(home string, flags *pflag.FlagSet) (Config, error) {
	v, err := newViper(home, flags)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// WriteConfigFile stores cfg as TOML at path.
func WriteConfigFile(path string, cfg Config) error {
	bz, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, bz, 0o644)
}
