package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"cosmossdk.io/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/framedcoin/framedcoin/app"
	"github.com/framedcoin/framedcoin/app/api"
	"github.com/framedcoin/framedcoin/app/metrics"
)

const (
	shutdownTimeout    = 10 * time.Second
	telemetryRetention = 10 * time.Minute
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the node with its HTTP API and metrics endpoint",
		Long: `Run the node with its HTTP API and metrics endpoint until interrupted.

The node holds the state database exclusively while it runs; tx and query
commands must go through the HTTP API in the meantime.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			nctx, err := getNodeContext(cmd)
			if err != nil {
				return err
			}
			cfg := nctx.Config

			reg := prometheus.NewRegistry()

			var opts []app.Option
			if cfg.Metrics.Enabled {
				if _, err := metrics.EnableTelemetry(cfg.ChainID, telemetryRetention); err != nil {
					return err
				}
				ledger, err := metrics.NewLedger(reg)
				if err != nil {
					return err
				}
				opts = append(opts, app.WithLedgerMetrics(ledger))
			}

			n, err := openNode(cmd, opts...)
			if err != nil {
				return err
			}
			node := n.App
			defer func() {
				if err := n.Close(); err != nil {
					nctx.Logger.Error("failed to close node", "error", err)
				}
			}()
			if err := node.AssertInvariants(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			g, ctx := errgroup.WithContext(ctx)

			if cfg.Metrics.Enabled {
				interval, err := cfg.Metrics.Interval()
				if err != nil {
					return err
				}
				diskUsage, err := metrics.NewDiskUsage(reg, filepath.Join(nctx.Home, dataDir), nctx.Logger)
				if err != nil {
					return err
				}
				g.Go(func() error { return diskUsage.Run(ctx, interval) })

				mux := http.NewServeMux()
				mux.Handle("/metrics", metrics.Handler(reg))
				serveHTTP(ctx, g, nctx.Logger, "metrics", cfg.Metrics.ListenAddr, mux)
			}
			if cfg.API.Enabled {
				serveHTTP(ctx, g, nctx.Logger, "api", cfg.API.ListenAddr, api.New(node, nctx.Logger).Mux())
			}

			nctx.Logger.Info("node started", "chain_id", cfg.ChainID, "height", node.LastHeight())
			g.Go(func() error {
				<-ctx.Done()
				nctx.Logger.Info("shutting down")
				return nil
			})
			return g.Wait()
		},
	}
}

// serveHTTP runs an HTTP server in g until ctx is done.
func serveHTTP(ctx context.Context, g *errgroup.Group, logger log.Logger, name, addr string, handler http.Handler) {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g.Go(func() error {
		logger.Info("starting http server", "server", name, "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
}
