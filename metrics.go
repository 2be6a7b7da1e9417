// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package npos

import "github.com/prometheus/client_golang/prometheus"

// Metrics is an optional set of Prometheus series an Election reports
// through: register against a caller-supplied prometheus.Registerer, return
// an error if any registration fails.
type Metrics struct {
	roundsTotal         prometheus.Counter
	balancePasses       prometheus.Gauge
	arithmeticSaturated prometheus.Counter
}

// NewMetrics registers the election metrics against reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		roundsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "npos_election_rounds_total",
			Help: "Number of election rounds run across all elections using this registry.",
		}),
		balancePasses: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "npos_balance_passes",
			Help: "Number of passes the most recent star-balancer run actually made (set after every election round).",
		}),
		arithmeticSaturated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "npos_arithmetic_saturations_total",
			Help: "Number of saturating operations in the post-election edge-weight update that actually clipped a value; saturations elsewhere are not counted.",
		}),
	}
	for _, c := range []prometheus.Collector{m.roundsTotal, m.balancePasses, m.arithmeticSaturated} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observeRound() {
	if m != nil {
		m.roundsTotal.Inc()
	}
}

func (m *Metrics) observeBalancePasses(n int) {
	if m != nil {
		m.balancePasses.Set(float64(n))
	}
}

func (m *Metrics) observeSaturation() {
	if m != nil {
		m.arithmeticSaturated.Inc()
	}
}
