package metrics

import (
	"net/http"
	"time"

	"github.com/cosmos/cosmos-sdk/telemetry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// EnableTelemetry turns on the SDK telemetry recorded by the keepers. Its
// prometheus sink registers with the default registry and keeps a series for
// retention after its last update. It may be called once per process.
func EnableTelemetry(chainID string, retention time.Duration) (*telemetry.Metrics, error) {
	return telemetry.New(telemetry.Config{
		Enabled:                 true,
		PrometheusRetentionTime: int64(retention.Seconds()),
		GlobalLabels:            [][]string{{"chain_id", chainID}},
	})
}

// Handler serves the series of reg together with the default registry, which
// holds the Go runtime, process and telemetry collectors.
func Handler(reg prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(prometheus.Gatherers{prometheus.DefaultGatherer, reg}, promhttp.HandlerOpts{})
}
