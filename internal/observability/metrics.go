package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/simplehiit-backend/internal/domain"
)

var (
	repositoryFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "simplehiit",
		Subsystem: "repository",
		Name:      "failures_total",
		Help:      "Repository operations that ended in an error Output, by operation and code.",
	}, []string{"operation", "code"})
	repositoryCancellations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "simplehiit",
		Subsystem: "repository",
		Name:      "cancellations_total",
		Help:      "Repository operations interrupted by context cancellation.",
	}, []string{"operation"})
	preferencesFallbacks = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "simplehiit",
		Subsystem: "settings",
		Name:      "default_fallbacks_total",
		Help:      "Default preference snapshots emitted in place of an unreadable store.",
	})
)

func init() {
	prometheus.MustRegister(repositoryFailures, repositoryCancellations, preferencesFallbacks)
}

// RecordFailure counts one failed repository operation.
func RecordFailure(operation string, code domain.DomainError) {
	repositoryFailures.WithLabelValues(operation, code.String()).Inc()
}

// RecordCancellation counts one cancelled repository operation.
func RecordCancellation(operation string) {
	repositoryCancellations.WithLabelValues(operation).Inc()
}

// RecordPreferencesFallback counts one default snapshot served after a store failure.
func RecordPreferencesFallback() {
	preferencesFallbacks.Inc()
}
