package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Failure reasons used as the "reason" label.
const (
	ReasonUnknownCode      = "unknown_code"
	ReasonArityMismatch    = "arity_mismatch"
	ReasonInvalidParameter = "invalid_parameter"
	ReasonComputationFault = "computation_fault"
	ReasonOther            = "other"
)

var (
	workoutsSummarized = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitness_tracker",
		Subsystem: "workouts",
		Name:      "summarized_total",
		Help:      "Number of workouts summarized, by activity kind.",
	}, []string{"kind"})
	workoutsFailed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitness_tracker",
		Subsystem: "workouts",
		Name:      "failed_total",
		Help:      "Number of readings that could not be summarized, by reason.",
	}, []string{"reason"})
)

func init() {
	prometheus.MustRegister(workoutsSummarized, workoutsFailed)
}

// RecordSummarized counts a successfully summarized workout.
func RecordSummarized(kind string) {
	workoutsSummarized.WithLabelValues(kind).Inc()
}

// RecordFailed counts a reading rejected for reason.
func RecordFailed(reason string) {
	workoutsFailed.WithLabelValues(reason).Inc()
}

// SummarizedCount returns the counter for kind.
func SummarizedCount(kind string) prometheus.Counter {
	return workoutsSummarized.WithLabelValues(kind)
}

// FailedCount returns the current counter for reason.
func FailedCount(reason string) prometheus.Counter {
	return workoutsFailed.WithLabelValues(reason)
}
