package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"cosmossdk.io/log"
	kitlog "github.com/go-kit/log"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/framedcoin/framedcoin/app"
)

const (
	// FlagHome is the node's home directory.
	FlagHome = "home"

	// FlagLogToFile specifies whether to log to file or not.
	FlagLogToFile = "log-to-file"

	FlagLogLevel  = "log-level"
	FlagLogFormat = "log-format"
)

// nodeContext is shared by every command after the persistent pre-run.
type nodeContext struct {
	Home   string
	Config Config
	Logger log.Logger
}

type nodeContextKey struct{}

func getNodeContext(cmd *cobra.Command) (*nodeContext, error) {
	if cmd.Context() != nil {
		if nctx, ok := cmd.Context().Value(nodeContextKey{}).(*nodeContext); ok {
			return nctx, nil
		}
	}
	return nil, errors.New("node context not initialized")
}

// NewRootCmd creates a new root command for framedcoind.
func NewRootCmd() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:   "framedcoind",
		Short: "FramedCoin value certificate ledger node",
		PersistentPreRunE: func(command *cobra.Command, _ []string) error {
			command.SetOut(command.OutOrStdout())
			command.SetErr(command.ErrOrStderr())

			home, err := command.Flags().GetString(FlagHome)
			if err != nil {
				return err
			}
			cfg, err := LoadConfig(home, command.Flags())
			if err != nil {
				return err
			}

			var out io.Writer = command.ErrOrStderr()
			if command.Flags().Changed(FlagLogToFile) {
				// optionally log to file by replacing stderr with a file writer
				out, err = logFile(command)
				if err != nil {
					return err
				}
			}
			logger, err := newLogger(out, cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}

			ctx := command.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			command.SetContext(context.WithValue(ctx, nodeContextKey{}, &nodeContext{
				Home:   home,
				Config: cfg,
				Logger: logger,
			}))
			return nil
		},
		SilenceUsage: true,
	}

	rootCommand.PersistentFlags().String(FlagHome, app.DefaultNodeHome, "The node's home directory")
	rootCommand.PersistentFlags().String(FlagLogToFile, "", "Write logs directly to a file. If empty, logs are written to stderr")
	rootCommand.PersistentFlags().String(FlagLogLevel, "", "Log level (e.g. info, debug or x/framedcoin:debug,*:info). Overrides log_level")
	rootCommand.PersistentFlags().String(FlagLogFormat, "", "Log format (plain|json). Overrides log_format")

	rootCommand.AddCommand(
		initCommand(),
		txCommand(),
		queryCommand(),
		serveCommand(),
		exportCommand(),
	)
	return rootCommand
}

// logOptions converts a level (or a module:level filter list) and a format
// into logger options.
func logOptions(level, format string) ([]log.Option, error) {
	var opts []log.Option
	if strings.Contains(level, ":") {
		filter, err := log.ParseLogLevel(level)
		if err != nil {
			return nil, fmt.Errorf("failed to parse log level %q: %w", level, err)
		}
		opts = append(opts, log.FilterOption(filter))
	} else {
		lvl, err := zerolog.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("failed to parse log level %q: %w", level, err)
		}
		opts = append(opts, log.LevelOption(lvl))
	}

	switch format {
	case logFormatJSON:
		opts = append(opts, log.OutputJSONOption())
	case logFormatPlain:
	default:
		return nil, fmt.Errorf("log_format must be %q or %q", logFormatPlain, logFormatJSON)
	}
	return opts, nil
}

func newLogger(out io.Writer, level, format string) (log.Logger, error) {
	opts, err := logOptions(level, format)
	if err != nil {
		return nil, err
	}
	return log.NewLogger(out, opts...), nil
}

// logFile opens the file named by --log-to-file.
func logFile(cmd *cobra.Command) (io.Writer, error) {
	logFilePath, err := cmd.Flags().GetString(FlagLogToFile)
	if err != nil {
		return nil, err
	}

	if logFilePath == "" {
		return cmd.ErrOrStderr(), nil
	}

	file, err := os.OpenFile(logFilePath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return kitlog.NewSyncWriter(file), nil
}
