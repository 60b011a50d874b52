// Package metrics defines and registers all custom Prometheus metrics for the
// Prismatech dashboard gateway. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry on package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "prismatech"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthOperationsTotal counts credential operations.
// Labels:
//   - op: "login", "signup" or "logout"
//   - result: "success" or "failure"
var AuthOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_operations_total",
		Help:      "Total number of credential operations, by operation and result.",
	},
	[]string{"op", "result"},
)

// AuthOperationDuration measures credential operations end-to-end, including
// the gateway's simulated latency.
// Label:
//   - op: "login" or "signup"
var AuthOperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "auth_operation_duration_seconds",
		Help:      "Duration of login and signup operations.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"op"},
)

// ActiveContexts tracks how many per-scope auth contexts are held in memory.
var ActiveContexts = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "auth_contexts_active",
		Help:      "Number of per-client auth contexts currently held in memory.",
	},
)

// ── Route guard metrics ───────────────────────────────────────────────────────

// GuardDecisionsTotal counts route guard outcomes.
// Labels:
//   - route: the protected route pattern (e.g. "/dashboard")
//   - decision: "pending", "unauthenticated", "forbidden" or "allowed"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route guard decisions, by route and decision.",
	},
	[]string{"route", "decision"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsTotal counts toast notifications by outcome.
// Label:
//   - result: "delivered", "failed" or "dropped"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of notifications, by delivery result.",
	},
	[]string{"result"},
)

// NotificationsQueueDepth tracks notices waiting in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var NotificationsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notifications_queue_depth",
		Help:      "Current number of notifications pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
