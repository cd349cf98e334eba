package simulation

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	episodesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snakeduel",
			Subsystem: "batch",
			Name:      "episodes_total",
			Help:      "Finished episodes by outcome.",
		},
		[]string{"outcome"},
	)
	episodeSteps = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "snakeduel",
			Subsystem: "batch",
			Name:      "episode_steps",
			Help:      "Ticks per finished episode.",
			Buckets:   prometheus.ExponentialBuckets(4, 2, 9),
		},
	)
	recorderErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snakeduel",
			Subsystem: "batch",
			Name:      "recorder_errors_total",
			Help:      "Episode records the sink failed to persist.",
		},
	)
)

func init() {
	prometheus.MustRegister(episodesTotal, episodeSteps, recorderErrors)
}

// InstrumentRecorder wraps a recorder so every episode it sees is also
// counted in the process metrics.
func InstrumentRecorder(r Recorder) Recorder { return &instrumented{r} }

type instrumented struct{ r Recorder }

func (m *instrumented) Record(rec EpisodeRecord) error {
	episodesTotal.WithLabelValues(string(rec.Outcome)).Inc()
	episodeSteps.Observe(float64(rec.Steps))
	if err := m.r.Record(rec); err != nil {
		recorderErrors.Inc()
		return err
	}
	return nil
}

func (m *instrumented) Close() error { return m.r.Close() }
