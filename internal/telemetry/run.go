package telemetry

import (
	"time"

	"github.com/opencivic/tallyengine/pipeline"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Recorder wraps pipeline.Run with structured logging, prometheus stage
// timing, and RunRecord.StageTimings population. Construction follows the
// functional-option idiom, matching internal/config's Loader and
// cmd/tallyengine's command wiring.
type Recorder struct {
	log      zerolog.Logger
	registry prometheus.Registerer
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithLogger overrides the Recorder's logger configuration.
func WithLogger(cfg LoggerConfig) Option {
	return func(r *Recorder) { r.log = newZerolog(cfg) }
}

// WithRegisterer overrides the prometheus registerer collectors register
// against; defaults to prometheus.DefaultRegisterer.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(r *Recorder) { r.registry = reg }
}

// NewRecorder builds a Recorder, registering its collectors eagerly so a
// scrape immediately after construction sees zeroed series rather than
// missing ones.
func NewRecorder(opts ...Option) (*Recorder, error) {
	r := &Recorder{
		log:      newZerolog(LoggerConfig{}),
		registry: prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(r)
	}
	if err := Register(r.registry); err != nil {
		return nil, err
	}
	return r, nil
}

// Run executes pipeline.Run, logging its start and outcome and recording
// wall-clock duration in the prometheus histogram and, when the run
// succeeds, in the returned RunRecord.StageTimings (milliseconds, keyed
// "run" — spec section 6's "stage timings (opaque)"; the core never reads
// this value back into a decision). A failed run's RunRecord is returned
// without a timing.
func (r *Recorder) Run(registry pipeline.DivisionRegistry, ballots pipeline.Ballots, p pipeline.Params) (pipeline.ResultDoc, pipeline.RunRecord, error) {
	logger := r.log.With().Str("formula_id", p.FormulaId).Logger()
	logger.Info().Int("units", len(registry.Units)).Msg("pipeline run starting")

	start := time.Now()
	doc, record, err := pipeline.Run(registry, ballots, p)
	elapsed := time.Since(start)

	stageDurationSeconds.WithLabelValues("run", p.FormulaId).Observe(elapsed.Seconds())

	if err != nil {
		runsTotal.WithLabelValues("error").Inc()
		logger.Error().Err(err).Dur("elapsed", elapsed).Msg("pipeline run failed")
		return doc, record, err
	}

	if record.StageTimings == nil {
		record.StageTimings = make(map[string]int64, 1)
	}
	record.StageTimings["run"] = elapsed.Milliseconds()

	runsTotal.WithLabelValues("ok").Inc()
	logger.Info().
		Str("label", doc.Label).
		Dur("elapsed", elapsed).
		Msg("pipeline run complete")

	return doc, record, nil
}
