package pipeline

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes render pipeline counters to Prometheus.
type Metrics struct {
	jobs       *prom.CounterVec
	duration   *prom.HistogramVec
	outputSize prom.Histogram
	warnings   prom.Counter
}

// NewMetrics constructs and registers the pipeline metrics on reg. A nil
// registry gets a private one.
func NewMetrics(reg prom.Registerer, queueDepth func() float64) *Metrics {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	m := &Metrics{
		jobs: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "docrtf",
			Name:      "jobs_total",
			Help:      "Render jobs by final status",
		}, []string{"status"}),
		duration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "docrtf",
			Name:      "phase_duration_seconds",
			Help:      "Duration of parse and render phases",
			Buckets:   prom.DefBuckets,
		}, []string{"phase"}),
		outputSize: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "docrtf",
			Name:      "output_bytes",
			Help:      "Size of rendered RTF documents",
			Buckets:   prom.ExponentialBuckets(1024, 4, 8),
		}),
		warnings: prom.NewCounter(prom.CounterOpts{
			Namespace: "docrtf",
			Name:      "render_warnings_total",
			Help:      "Recoverable diagnostics reported while rendering",
		}),
	}
	reg.MustRegister(m.jobs, m.duration, m.outputSize, m.warnings)
	if queueDepth != nil {
		reg.MustRegister(prom.NewGaugeFunc(prom.GaugeOpts{
			Namespace: "docrtf",
			Name:      "queue_depth",
			Help:      "Jobs waiting for a worker",
		}, queueDepth))
	}
	return m
}

func (m *Metrics) IncJob(status JobStatus) {
	if m == nil {
		return
	}
	m.jobs.WithLabelValues(string(status)).Inc()
}

func (m *Metrics) ObservePhase(phase string, d time.Duration) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(phase).Observe(d.Seconds())
}

func (m *Metrics) ObserveOutput(bytes int) {
	if m == nil {
		return
	}
	m.outputSize.Observe(float64(bytes))
}

func (m *Metrics) AddWarnings(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.warnings.Add(float64(n))
}
