// Package metrics exposes the Prometheus instruments of the service.
package metrics

import (
    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promauto"
)

var (
    // HTTPRequestsTotal counts finished HTTP requests by method,
    // route template and status code.
    HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
        Name: "http_requests_total",
        Help: "Total number of HTTP requests processed.",
    }, []string{"method", "route", "status"})

    // HTTPRequestDuration observes request latency per route.
    HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
        Name:    "http_request_duration_seconds",
        Help:    "HTTP request latency in seconds.",
        Buckets: prometheus.DefBuckets,
    }, []string{"method", "route"})

    // ReservationsTotal counts reservation write attempts by
    // operation (create, update, cancel, delete) and outcome
    // (ok, conflict, error).
    ReservationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
        Name: "reservations_total",
        Help: "Total reservation operations by outcome.",
    }, []string{"operation", "outcome"})

    // EventsPublishedTotal counts broker publications per queue and
    // result.
    EventsPublishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
        Name: "queue_events_published_total",
        Help: "Total events published to the message broker.",
    }, []string{"queue", "result"})
)

// ObserveReservation records the outcome of a reservation operation.
func ObserveReservation(operation, outcome string) {
    ReservationsTotal.WithLabelValues(operation, outcome).Inc()
}

// ObservePublish records the result of a broker publication.
func ObservePublish(queueName string, err error) {
    result := "ok"
    if err != nil {
        result = "error"
    }
    EventsPublishedTotal.WithLabelValues(queueName, result).Inc()
}
