package crt

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is an optional set of prometheus collectors an Engine can
// report its sync-recovery state through. It never influences decode
// control flow - attaching or leaving it nil must not change a single
// decoded pixel.
type Metrics struct {
	HSync      prometheus.Gauge
	VSync      prometheus.Gauge
	SyncGiveUp prometheus.Counter
}

// NewMetrics builds a Metrics bundle registered under the given
// registerer, labeled with the engine's id so that several concurrent
// Engine instances don't collide on metric identity.
func NewMetrics(reg prometheus.Registerer, engineID string) *Metrics {
	m := &Metrics{
		HSync: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "crt",
			Name:        "recovered_hsync_samples",
			Help:        "Most recently recovered horizontal sync offset, in samples.",
			ConstLabels: prometheus.Labels{"engine": engineID},
		}),
		VSync: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "crt",
			Name:        "recovered_vsync_line",
			Help:        "Most recently recovered vertical sync line.",
			ConstLabels: prometheus.Labels{"engine": engineID},
		}),
		SyncGiveUp: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "crt",
			Name:        "sync_search_gaveup_total",
			Help:        "Number of decodes where the vsync search window found no candidate and kept the previous lock.",
			ConstLabels: prometheus.Labels{"engine": engineID},
		}),
	}
	reg.MustRegister(m.HSync, m.VSync, m.SyncGiveUp)
	return m
}

// Observe records the engine's current sync lock. Call after Decode.
func (m *Metrics) Observe(e *Engine) {
	if m == nil {
		return
	}
	m.HSync.Set(float64(e.HSync()))
	m.VSync.Set(float64(e.VSync()))
	if e.VSyncGaveUp() {
		m.SyncGiveUp.Inc()
	}
}
