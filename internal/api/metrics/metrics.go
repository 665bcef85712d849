// Package metrics defines and registers all custom Prometheus metrics for
// the laundry order service. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "laundry"

// OrdersCreatedTotal counts newly created orders.
// Label:
//   - wash_type: the free-form wash type supplied by the customer
var OrdersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created, by wash type.",
	},
	[]string{"wash_type"},
)

// StatusUpdatesTotal counts successful order status updates.
// Label:
//   - status: the new status applied (e.g. "Washing")
var StatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_updates_total",
		Help:      "Total number of order status updates, by resulting status.",
	},
	[]string{"status"},
)

// RiderAssignmentsTotal counts rider assignments, including those against
// unknown order ids (label result="missing").
var RiderAssignmentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rider_assignments_total",
		Help:      "Total number of rider assignment requests, by result.",
	},
	[]string{"result"},
)

// LoginFailuresTotal counts rejected login attempts.
var LoginFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_failures_total",
		Help:      "Total number of failed login attempts.",
	},
)

// EventsQueueDepth tracks the current number of audit events waiting in
// each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var EventsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "events_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
