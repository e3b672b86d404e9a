package metrics

import (
	"math/big"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
)

// Snapshot is the ledger state exported after every committed operation.
type Snapshot struct {
	Minted          uint64
	Escrowed        math.Int
	UnwithdrawnFees math.Int
	Paused          bool
}

// Ledger holds the framedcoin gauges.
type Ledger struct {
	minted   prometheus.Gauge
	escrowed prometheus.Gauge
	fees     prometheus.Gauge
	paused   prometheus.Gauge
}

// NewLedger registers the ledger gauges with reg.
func NewLedger(reg prometheus.Registerer) (*Ledger, error) {
	m := &Ledger{
		minted: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "framedcoin_certificates_minted_total",
			Help: "Number of certificates ever minted",
		}),
		escrowed: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "framedcoin_escrowed_value",
			Help: "Base currency escrowed by live certificates",
		}),
		fees: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "framedcoin_unwithdrawn_fees",
			Help: "Minting fees collected since the last withdrawal",
		}),
		paused: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "framedcoin_paused",
			Help: "1 while minting is paused",
		}),
	}
	for _, c := range []prometheus.Collector{m.minted, m.escrowed, m.fees, m.paused} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Observe sets every gauge from s.
func (m *Ledger) Observe(s Snapshot) {
	m.minted.Set(float64(s.Minted))
	m.escrowed.Set(toFloat(s.Escrowed))
	m.fees.Set(toFloat(s.UnwithdrawnFees))
	if s.Paused {
		m.paused.Set(1)
	} else {
		m.paused.Set(0)
	}
}

func toFloat(v math.Int) float64 {
	if v.IsNil() {
		return 0
	}
	f, _ := new(big.Float).SetInt(v.BigInt()).Float64()
	return f
}
