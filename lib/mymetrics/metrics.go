package mymetrics

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	WebhookEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "webhook_events_total",
		Help: "Total number of stripe webhook invocations by event type and response status",
	}, []string{"event_type", "status"})

	ReservationsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reservations_created_total",
		Help: "Total number of reservations created",
	})

	CheckoutSessionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_sessions_total",
		Help: "Total number of checkout session requests by outcome",
	}, []string{"outcome"})

	ConfirmationPollsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "confirmation_polls_total",
		Help: "Total number of finished confirmation polls by outcome",
	}, []string{"outcome"})

	WebhookLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "webhook_latency_seconds",
		Help:    "Latency of stripe webhook handling",
		Buckets: prometheus.DefBuckets,
	})
)

func RegisterEndpoints(router *mux.Router) {
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
}
