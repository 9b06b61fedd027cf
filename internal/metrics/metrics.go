// Package metrics registers the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommender_http_requests_total",
			Help: "Total number of HTTP requests by handler and status code",
		},
		[]string{"handler", "status"},
	)

	RecommendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "recommender_recommendation_duration_seconds",
			Help: "Duration of recommendation computation in seconds",
		},
		[]string{"mode"},
	)

	DatasetRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommender_dataset_records",
			Help: "Number of career records loaded at startup",
		},
	)

	ModelLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommender_model_loaded",
			Help: "Whether a trained model artifact is loaded (1) or not (0)",
		},
	)
)
