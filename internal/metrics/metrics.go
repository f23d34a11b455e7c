package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_requests_latency_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	// Engine
	RowsNormalized = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sheet_rows_normalized_total",
			Help: "Raw sheet rows turned into entities",
		},
		[]string{"sheet"}, // units|bookings|users
	)
	ConflictsDetected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "reservation_conflicts_total",
			Help: "Reservation saves rejected because the unit was already taken",
		},
	)

	// Reservation lifecycle
	ReservationsSaved = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reservations_saved_total",
			Help: "Reservations written to the store",
		},
		[]string{"op"}, // create|update
	)
	ReservationsCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "reservations_cancelled_total",
			Help: "Reservations moved to cancelled",
		},
	)
	ReservationsReset = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "reservations_reset_total",
			Help: "Reservation rows removed by a system reset",
		},
	)

	initOnce sync.Once
)

// Handler serves the /metrics endpoint.
var Handler = promhttp.Handler

// Init registers the collectors with the default registry. Safe to call more than once.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			RequestsTotal,
			RequestLatency,
			RowsNormalized,
			ConflictsDetected,
			ReservationsSaved,
			ReservationsCancelled,
			ReservationsReset,
		)
	})
}
