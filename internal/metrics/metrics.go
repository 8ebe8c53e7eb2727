// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "eventregistration"

// Registration outcomes recorded by RegistrationsTotal.
const (
	OutcomeRegistered       = "registered"
	OutcomeCapacityExceeded = "capacity_exceeded"
	OutcomeDuplicate        = "duplicate"
	OutcomeNotFound         = "not_found"
	OutcomeInvalid          = "invalid"
	OutcomeFailed           = "failed"
)

// Registry is the Prometheus registry for all application metrics.
var Registry = prometheus.NewRegistry()

var (
	// RegistrationsTotal counts registration attempts by outcome.
	RegistrationsTotal = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Registration attempts by outcome",
		},
		[]string{"outcome"},
	)

	// RegistrationRetriesTotal counts registration transactions retried after a transient conflict.
	RegistrationRetriesTotal = promauto.With(Registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registration_tx_retries_total",
			Help:      "Registration transactions retried after serialization failures or deadlocks",
		},
	)

	// AttendeeRemovalsTotal counts attendees removed.
	AttendeeRemovalsTotal = promauto.With(Registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "attendee_removals_total",
			Help:      "Attendees removed from events",
		},
	)

	// EventsCreatedTotal counts events created.
	EventsCreatedTotal = promauto.With(Registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_created_total",
			Help:      "Events created",
		},
	)

	// HTTPRequestsTotal counts HTTP requests by method, route pattern and status code.
	HTTPRequestsTotal = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration records HTTP request latency in seconds.
	HTTPRequestDuration = promauto.With(Registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route"},
	)

	// HTTPRequestsInFlight tracks the current number of requests being processed.
	HTTPRequestsInFlight = promauto.With(Registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Current number of HTTP requests being processed",
		},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RecordRegistration increments the registration counter for outcome.
func RecordRegistration(outcome string) {
	RegistrationsTotal.WithLabelValues(outcome).Inc()
}
