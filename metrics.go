package html2pdf

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds prometheus collectors for exports and browser sessions.
// A nil *Metrics records nothing.
type Metrics struct {
	exports  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	acquired prometheus.Counter
	released prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		exports: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "html2pdf",
			Name:      "exports_total",
			Help:      "Exports by source kind and result.",
		}, []string{"source", "result"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "html2pdf",
			Name:      "export_duration_seconds",
			Help:      "Wall time of a single export, session launch to release.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60},
		}, []string{"source"}),
		acquired: f.NewCounter(prometheus.CounterOpts{
			Namespace: "html2pdf",
			Name:      "sessions_acquired_total",
			Help:      "Browser sessions launched.",
		}),
		released: f.NewCounter(prometheus.CounterOpts{
			Namespace: "html2pdf",
			Name:      "sessions_released_total",
			Help:      "Browser sessions released.",
		}),
	}
}

func (m *Metrics) observeExport(kind SourceKind, err error, d time.Duration) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "failure"
	}
	m.exports.WithLabelValues(kind.String(), result).Inc()
	m.duration.WithLabelValues(kind.String()).Observe(d.Seconds())
}

func (m *Metrics) sessionAcquired() {
	if m == nil {
		return
	}
	m.acquired.Inc()
}

func (m *Metrics) sessionReleased() {
	if m == nil {
		return
	}
	m.released.Inc()
}
