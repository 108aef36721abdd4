// Package metrics defines and registers all custom Prometheus metrics for
// the ledger API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import
// time via promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ledger"

// TransfersTotal counts completed balance mutations.
// Label:
//   - op: "fund", "pay", or "buy"
var TransfersTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transfers_total",
		Help:      "Total number of completed transfer operations, by operation.",
	},
	[]string{"op"},
)

// TransferErrorsTotal counts rejected or failed balance mutations.
// Labels:
//   - op: "fund", "pay", or "buy"
//   - reason: "insufficient_funds", "recipient_not_found", "invalid_product",
//     "invalid_amount", or "store_error"
var TransferErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transfer_errors_total",
		Help:      "Total number of transfer operations that failed, by operation and reason.",
	},
	[]string{"op", "reason"},
)

// AuthAttemptsTotal counts per-request credential verifications.
// Label:
//   - result: "ok", "unauthorized", or "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of credential verifications, by result.",
	},
	[]string{"result"},
)

// RateLookupsTotal counts currency conversions on balance queries.
// Label:
//   - result: "ok" or "error"
var RateLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_lookups_total",
		Help:      "Total number of currency-rate conversions, by result.",
	},
	[]string{"result"},
)
