// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admissions_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "admissions_http_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"method", "route"},
	)

	ApplicationSaves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admissions_application_saves_total",
			Help: "Total number of application save operations by requested status",
		},
		[]string{"status"},
	)

	ApplicationsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "admissions_applications_created_total",
			Help: "Total number of application records created",
		},
	)

	NotificationsDispatched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admissions_notifications_dispatched_total",
			Help: "Total number of submission notifications by outcome",
		},
		[]string{"status"},
	)

	StoreFailovers = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "admissions_store_failovers_total",
			Help: "Total number of operations retried on the fallback substrate",
		},
	)
)
