package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fuel_console_http_requests_total",
		Help: "Console HTTP requests by method, route and status.",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fuel_console_http_request_duration_seconds",
		Help:    "Console HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	BackendRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fuel_console_backend_requests_total",
		Help: "Calls to the REST backend by method, path and status. Status is \"error\" for transport failures.",
	}, []string{"method", "path", "status"})

	BackendRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fuel_console_backend_request_duration_seconds",
		Help:    "REST backend call latency.",
		Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"method", "path"})

	DashboardPollsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fuel_console_dashboard_polls_total",
		Help: "Dashboard polls by result.",
	}, []string{"result"})

	DashboardSubscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fuel_console_dashboard_subscribers",
		Help: "Open dashboard websocket connections.",
	})

	InvoicesGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fuel_console_invoices_generated_total",
		Help: "Credit bills rendered, by whether they were archived.",
	}, []string{"archived"})
)
