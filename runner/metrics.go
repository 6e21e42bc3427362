package runner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "mazegen"

// Outcome label values for RunsTotal.
const (
	outcomeSuccess = "success"
	outcomeError   = "error"
)

// Metrics holds the Prometheus collectors for maze runs.
type Metrics struct {
	// Registry owns every collector below.
	Registry *prometheus.Registry

	// GenerationSeconds measures carving time.
	// Labels: algorithm
	GenerationSeconds *prometheus.HistogramVec

	// AnalysisSeconds measures analyzer time.
	// Labels: algorithm
	AnalysisSeconds *prometheus.HistogramVec

	// RunsTotal counts runs.
	// Labels: algorithm, outcome (success, error)
	RunsTotal *prometheus.CounterVec

	// DeadEnds, LongestPath and QualityIndex hold the last successful report.
	// Labels: algorithm
	DeadEnds     *prometheus.GaugeVec
	LongestPath  *prometheus.GaugeVec
	QualityIndex *prometheus.GaugeVec
}

// NewMetrics registers the run collectors on reg, or on a fresh registry if
// reg is nil.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)
	buckets := prometheus.ExponentialBuckets(0.0001, 4, 10) // 100µs .. ~26s

	return &Metrics{
		Registry: reg,
		GenerationSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "generation_duration_seconds",
			Help:      "Time spent carving a maze in seconds",
			Buckets:   buckets,
		}, []string{"algorithm"}),
		AnalysisSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "analysis_duration_seconds",
			Help:      "Time spent analyzing a maze in seconds",
			Buckets:   buckets,
		}, []string{"algorithm"}),
		RunsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "runs_total",
			Help:      "Total maze runs by algorithm and outcome",
		}, []string{"algorithm", "outcome"}),
		DeadEnds: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "dead_ends",
			Help:      "Dead ends in the last generated maze",
		}, []string{"algorithm"}),
		LongestPath: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "longest_path",
			Help:      "Longest path length in the last generated maze",
		}, []string{"algorithm"}),
		QualityIndex: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "quality_index",
			Help:      "Quality index of the last generated maze",
		}, []string{"algorithm"}),
	}
}

// WriteTextfile writes every collected metric to path in the Prometheus
// text exposition format, replacing the file atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}

func (m *Metrics) observe(res Result) {
	if m == nil {
		return
	}
	alg := string(res.Params.Method)
	m.GenerationSeconds.WithLabelValues(alg).Observe(res.Generation.Seconds())
	m.AnalysisSeconds.WithLabelValues(alg).Observe(res.Analysis.Seconds())
	m.RunsTotal.WithLabelValues(alg, outcomeSuccess).Inc()
	m.DeadEnds.WithLabelValues(alg).Set(float64(res.Report.DeadEnds))
	m.LongestPath.WithLabelValues(alg).Set(float64(res.Report.LongestPath))
	m.QualityIndex.WithLabelValues(alg).Set(res.Report.QualityIndex)
}

func (m *Metrics) fail(alg string) {
	if m == nil {
		return
	}
	m.RunsTotal.WithLabelValues(alg, outcomeError).Inc()
}
