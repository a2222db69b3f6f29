// Package metrics defines and registers the Prometheus metrics of the
// ledger service. Metric names and labels live here and nowhere else.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gigledger"

// PaymentsTotal counts job-payment attempts by outcome.
// Label:
//   - result: "ok", "not_payable", "insufficient_funds", "denied", "error"
var PaymentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_total",
		Help:      "Total number of job payment attempts, by outcome.",
	},
	[]string{"result"},
)

// PaymentAmount observes the price of successfully paid jobs.
var PaymentAmount = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "payment_amount",
		Help:      "Distribution of successfully paid job prices.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 10), // 1 .. ~262k
	},
)

// DepositsTotal counts deposit attempts by outcome.
// Label:
//   - result: "ok", "cap_exceeded", "invalid", "denied", "error"
var DepositsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deposits_total",
		Help:      "Total number of balance deposit attempts, by outcome.",
	},
	[]string{"result"},
)

// HTTPRequestDuration measures handler latency.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests, by method, route and status.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route", "status"},
)
