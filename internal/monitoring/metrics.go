// Package monitoring records ranking run metrics and exports them in the
// node-exporter textfile format.
package monitoring

import (
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rotisserie/eris"

	"github.com/sells-group/getaway-cli/internal/model"
)

const namespace = "getaway"

// Drop reasons for RecordsDropped.
const (
	ReasonSelf       = "self"
	ReasonUnresolved = "unresolved"
	ReasonFiltered   = "filtered"
)

// Metrics holds the collectors for ranking runs, on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	RunsTotal       *prometheus.CounterVec // labels: outcome
	RecordsLoaded   prometheus.Counter
	RecordsDropped  *prometheus.CounterVec // labels: reason={self,unresolved,filtered}
	ResultsReturned prometheus.Counter
	RunDuration     prometheus.Histogram
}

// NewMetrics creates Metrics registered on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RunsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Ranking runs by outcome.",
		}, []string{"outcome"}),
		RecordsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_loaded_total",
			Help:      "Dataset records read across runs.",
		}),
		RecordsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_dropped_total",
			Help:      "Dataset records excluded from ranking by reason.",
		}, []string{"reason"}),
		ResultsReturned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "results_returned_total",
			Help:      "Recommendations returned across runs.",
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete load-rank-report cycle.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
	}

	m.registry.MustRegister(
		m.RunsTotal,
		m.RecordsLoaded,
		m.RecordsDropped,
		m.ResultsReturned,
		m.RunDuration,
	)

	for _, o := range []model.Outcome{
		model.OutcomeRanked,
		model.OutcomeNoMatches,
		model.OutcomeUnknownCity,
		model.OutcomeDatasetError,
	} {
		m.RunsTotal.WithLabelValues(string(o))
	}
	for _, r := range []string{ReasonSelf, ReasonUnresolved, ReasonFiltered} {
		m.RecordsDropped.WithLabelValues(r)
	}

	return m
}

// Gatherer returns the registry backing m.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// ObserveRun records one finished run.
func (m *Metrics) ObserveRun(rs *model.ResultSet, elapsed time.Duration) {
	if rs == nil {
		return
	}
	m.RunsTotal.WithLabelValues(string(rs.Outcome)).Inc()
	m.RecordsLoaded.Add(float64(rs.Stats.Loaded))
	m.RecordsDropped.WithLabelValues(ReasonSelf).Add(float64(rs.Stats.SelfExcluded))
	m.RecordsDropped.WithLabelValues(ReasonUnresolved).Add(float64(rs.Stats.Unresolved))
	m.RecordsDropped.WithLabelValues(ReasonFiltered).Add(float64(rs.Stats.FilteredOut))
	m.ResultsReturned.Add(float64(rs.Len()))
	m.RunDuration.Observe(elapsed.Seconds())
}

// WriteTextfile writes the current metric values to path.
func (m *Metrics) WriteTextfile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return eris.Wrapf(err, "monitoring: create dir %s", dir)
		}
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return eris.Wrapf(err, "monitoring: write textfile %s", path)
	}
	return nil
}
