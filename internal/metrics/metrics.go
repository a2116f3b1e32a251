package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BorrowRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campusconnect_borrow_requests_total",
		Help: "Total number of borrow requests successfully created.",
	})

	ApprovalsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campusconnect_approvals_total",
		Help: "Total number of transactions approved by lenders.",
	})

	ReturnsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campusconnect_returns_total",
		Help: "Total number of items marked as returned.",
	})

	PaymentsConfirmedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campusconnect_payments_confirmed_total",
		Help: "Total number of simulated payments confirmed.",
	})

	NotificationsPushedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campusconnect_notifications_pushed_total",
		Help: "Total number of notifications delivered over a live connection.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campusconnect_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	ItemCacheEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "campusconnect_item_cache_entries",
		Help: "Current number of items in the availability cache.",
	})
)
