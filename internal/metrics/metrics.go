package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the crew desk
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Business Metrics
	ApplicationsSubmittedTotal prometheus.Counter
	DecisionsTotal             prometheus.CounterVec
	MailsTotal                 prometheus.CounterVec
	AircraftSkippedTotal       prometheus.Counter
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crewdesk_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "crewdesk_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "crewdesk_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Business Metrics
		ApplicationsSubmittedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "crewdesk_applications_submitted_total",
				Help: "Total pilot applications submitted",
			},
		),
		DecisionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crewdesk_decisions_total",
				Help: "Total application decisions by outcome",
			},
			[]string{"outcome"},
		),
		MailsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crewdesk_mails_total",
				Help: "Total outbound notification mails by delivery status",
			},
			[]string{"status"},
		),
		AircraftSkippedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "crewdesk_aircraft_skipped_total",
				Help: "Selected aircraft skipped during registration generation because the model is not in the catalog",
			},
		),
	}
}
