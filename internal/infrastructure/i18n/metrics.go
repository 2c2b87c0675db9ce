package i18n

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts catalog loads and lookups. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	loads   *prometheus.CounterVec
	lookups *prometheus.CounterVec
}

// NewMetrics creates the catalog counters and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "catalog",
			Name:      "loads_total",
			Help:      "Bundle loads by outcome.",
		}, []string{"bundle", "result"}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "catalog",
			Name:      "lookups_total",
			Help:      "Message lookups by outcome.",
		}, []string{"bundle", "result"}),
	}
	reg.MustRegister(m.loads, m.lookups)
	return m
}

func (m *Metrics) observeLoad(bundleID string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.loads.WithLabelValues(bundleID, result).Inc()
}

func (m *Metrics) observeLookup(bundleID string, hit bool) {
	if m == nil {
		return
	}
	result := "hit"
	if !hit {
		result = "miss"
	}
	m.lookups.WithLabelValues(bundleID, result).Inc()
}
