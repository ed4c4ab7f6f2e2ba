package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RequestsTotal counts analysis requests by operation and outcome
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "analysis_requests_total",
		Help: "Total number of analysis requests",
	},
	[]string{"operation", "status"},
)

// ModelBuildsTotal counts engine construction attempts by capability and outcome
var ModelBuildsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "analysis_model_builds_total",
		Help: "Total number of engine construction attempts",
	},
	[]string{"capability", "outcome"},
)

// InferenceDuration observes engine inference latency by operation
var InferenceDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "analysis_inference_duration_seconds",
		Help:    "Engine inference latency in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"operation"},
)
