// Package metrics defines and registers all custom Prometheus metrics for
// the events client. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry at package init and are
// exposed by the observability listener while the interactive mode runs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "events_client"

// APIRequestsTotal counts outgoing calls to the remote events API.
// Labels:
//   - endpoint: logical endpoint name ("events", "event", "login", "signup")
//   - method: HTTP method
//   - outcome: "success" or "failure" (transport errors and non-2xx both
//     count as failure; the client does not distinguish them)
var APIRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_requests_total",
		Help:      "Total number of requests issued to the remote events API.",
	},
	[]string{"endpoint", "method", "outcome"},
)

// APIRequestDuration measures the wall time of a single API call.
// Label:
//   - endpoint: logical endpoint name
var APIRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_request_duration_seconds",
		Help:      "Duration of remote API calls from request to decoded response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// MutationsTotal counts event mutations that completed successfully,
// including the post-mutation resynchronization trigger.
// Label:
//   - operation: "create", "update", or "delete"
var MutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_total",
		Help:      "Total number of successful event mutations.",
	},
	[]string{"operation"},
)
