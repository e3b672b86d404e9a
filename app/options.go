package app

import (
	"github.com/filecoin-project/go-clock"

	"github.com/framedcoin/framedcoin/app/metrics"
)

// Option configures an App.
type Option func(*App)

// WithClock sets the source of block times. Defaults to the wall clock.
func WithClock(c clock.Clock) Option {
	return func(app *App) {
		app.clock = c
	}
}

// WithLedgerMetrics exports ledger gauges after every committed operation.
func WithLedgerMetrics(m *metrics.Ledger) Option {
	return func(app *App) {
		app.metrics = m
	}
}

// WithChainID sets the chain id stamped on every context.
func WithChainID(chainID string) Option {
	return func(app *App) {
		app.chainID = chainID
	}
}
