package telemetry

import "github.com/prometheus/client_golang/prometheus"

// stageDurationSeconds observes how long each named run stage takes, in
// seconds. "stage" here is coarse (currently just "run", the whole
// pipeline.Run call): the core exposes no internal stage boundaries to
// time against (spec section 5), so this is the finest granularity
// available without instrumenting the core itself.
var stageDurationSeconds = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "tallyengine",
		Subsystem: "pipeline",
		Name:      "stage_duration_seconds",
		Help:      "Wall-clock duration of a tally pipeline run stage.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"stage", "formula_id"},
)

// runsTotal counts completed runs by outcome.
var runsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "tallyengine",
		Subsystem: "pipeline",
		Name:      "runs_total",
		Help:      "Total tally pipeline runs, partitioned by outcome.",
	},
	[]string{"outcome"},
)

// Register registers this package's collectors with reg. Safe to call
// once per process; registering the same collectors twice against the
// same registry returns prometheus.AlreadyRegisteredError, which callers
// may ignore when re-registering against the default registry in tests.
func Register(reg prometheus.Registerer) error {
	if err := reg.Register(stageDurationSeconds); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
			return err
		}
	}
	if err := reg.Register(runsTotal); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
			return err
		}
	}
	return nil
}
