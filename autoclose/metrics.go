package autoclose

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts armed coordinators and why they were detached. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	armedGauge prometheus.Gauge
	detached   *prometheus.CounterVec
}

// NewMetrics registers auto-close metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		armedGauge: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "pagenav",
			Subsystem: "autoclose",
			Name:      "armed",
			Help:      "Number of auto-close coordinators currently listening for events.",
		}),
		detached: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pagenav",
			Subsystem: "autoclose",
			Name:      "detached_total",
			Help:      "Number of auto-close coordinators detached, by reason.",
		}, []string{"reason"}),
	}
}

func (m *Metrics) armed() {
	if m == nil {
		return
	}

	m.armedGauge.Inc()
}

func (m *Metrics) disarmed() {
	if m == nil {
		return
	}

	m.armedGauge.Dec()
}

func (m *Metrics) closed(reason Reason) {
	if m == nil {
		return
	}

	m.detached.WithLabelValues(string(reason)).Inc()
}
