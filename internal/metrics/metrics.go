package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters registered on the default registry and exposed on /metrics.
var (
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_orders_created_total",
		Help: "Orders accepted by the store.",
	})

	Payments = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_payments_total",
		Help: "Payments recorded, by method.",
	}, []string{"method"})

	ExpensesRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_expenses_recorded_total",
		Help: "Expenses appended to the day book.",
	})

	TicketSnapshots = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_ticket_snapshots_total",
		Help: "Live ticket snapshots delivered to subscribers.",
	})

	TicketSyncErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_ticket_sync_errors_total",
		Help: "Failed writes or reads against the remote ticket store.",
	})
)
