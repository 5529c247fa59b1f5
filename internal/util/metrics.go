package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersPlacedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Total number of orders placed at checkout",
	})

	OrdersRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_rejected_total",
		Help: "Total number of rejected checkout submissions",
	}, []string{"reason"})

	OrderStatusChangesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "order_status_changes_total",
		Help: "Total number of order status transitions",
	}, []string{"status"})

	NotificationsEmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "notifications_emitted_total",
		Help: "Total number of customer notifications emitted",
	})

	DeliveryQuotesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "delivery_quotes_total",
		Help: "Total number of delivery cost lookups",
	}, []string{"result"})

	LoginAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "login_attempts_total",
		Help: "Total number of login attempts",
	}, []string{"result"})

	RegistrationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "registrations_total",
		Help: "Total number of registration attempts",
	}, []string{"result"})

	RecipeRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recipe_requests_total",
		Help: "Total number of recipe suggestion requests",
	}, []string{"result"})

	RecipeRequestLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "recipe_request_latency_seconds",
		Help:    "Latency of recipe generation calls",
		Buckets: prometheus.DefBuckets,
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
