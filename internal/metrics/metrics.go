package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds the Prometheus metrics exposed on /metrics.
type Registry struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	OrdersCreatedTotal   prometheus.Counter
	TicketsBookedTotal   prometheus.Counter
	BookingFailuresTotal *prometheus.CounterVec
}

func NewRegistry() *Registry {
	return &Registry{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flight_service_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flight_service_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "flight_service_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),
		OrdersCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "flight_service_orders_created_total",
				Help: "Total orders created",
			},
		),
		TicketsBookedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "flight_service_tickets_booked_total",
				Help: "Total tickets booked",
			},
		),
		BookingFailuresTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flight_service_booking_failures_total",
				Help: "Total failed booking attempts by reason",
			},
			[]string{"reason"},
		),
	}
}
