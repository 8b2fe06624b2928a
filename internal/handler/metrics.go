package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "swahili_api",
		Name:      "orders_created_total",
		Help:      "Number of orders successfully placed.",
	})

	statusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "swahili_api",
		Name:      "order_status_transitions_total",
		Help:      "Number of manual order status transitions.",
	}, []string{"to"})

	webhooksReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "swahili_api",
		Name:      "payment_webhooks_total",
		Help:      "Payment gateway callbacks by outcome.",
	}, []string{"outcome"})
)
