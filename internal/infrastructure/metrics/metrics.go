package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// Money movement metrics
	TransfersCompleted prometheus.Counter
	TransfersRejected  *prometheus.CounterVec
	TransferDuration   prometheus.Histogram
	TransferAmount     prometheus.Histogram
	DepositsCompleted  prometheus.Counter
	CardCharges        *prometheus.CounterVec

	// Account metrics
	AccountsOpened    prometheus.Counter
	AccountOperations *prometheus.CounterVec

	// Card metrics
	CardsIssued    prometheus.Counter
	CardsCancelled prometheus.Counter

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Authentication metrics
	AuthAttempts *prometheus.CounterVec

	// Rate limiting metrics
	RateLimitHits *prometheus.CounterVec

	// Audit metrics
	AuditLogsCreated *prometheus.CounterVec
}

// New creates all Prometheus metrics and registers them with the
// default registerer.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith creates all Prometheus metrics against the given registerer.
func NewWith(reg prometheus.Registerer) *Metrics {
	auto := promauto.With(reg)

	return &Metrics{
		TransfersCompleted: auto.NewCounter(prometheus.CounterOpts{
			Name: "gobank_transfers_completed_total",
			Help: "Total number of completed transfers",
		}),
		TransfersRejected: auto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobank_transfers_rejected_total",
				Help: "Total number of rejected transfers by reason",
			},
			[]string{"reason"},
		),
		TransferDuration: auto.NewHistogram(prometheus.HistogramOpts{
			Name:    "gobank_transfer_duration_seconds",
			Help:    "Duration of transfer operations",
			Buckets: prometheus.DefBuckets,
		}),
		TransferAmount: auto.NewHistogram(prometheus.HistogramOpts{
			Name:    "gobank_transfer_amount",
			Help:    "Transfer amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),
		DepositsCompleted: auto.NewCounter(prometheus.CounterOpts{
			Name: "gobank_deposits_completed_total",
			Help: "Total number of completed deposits",
		}),
		CardCharges: auto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobank_card_charges_total",
				Help: "Total card charges by transaction type and outcome",
			},
			[]string{"type", "outcome"},
		),

		AccountsOpened: auto.NewCounter(prometheus.CounterOpts{
			Name: "gobank_accounts_opened_total",
			Help: "Total number of accounts opened",
		}),
		AccountOperations: auto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobank_account_operations_total",
				Help: "Total account operations by type",
			},
			[]string{"operation"},
		),

		CardsIssued: auto.NewCounter(prometheus.CounterOpts{
			Name: "gobank_cards_issued_total",
			Help: "Total number of cards issued",
		}),
		CardsCancelled: auto.NewCounter(prometheus.CounterOpts{
			Name: "gobank_cards_cancelled_total",
			Help: "Total number of cards cancelled",
		}),

		HTTPRequests: auto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobank_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: auto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gobank_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		AuthAttempts: auto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobank_auth_attempts_total",
				Help: "Total authentication attempts",
			},
			[]string{"status"},
		),

		RateLimitHits: auto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobank_rate_limit_hits_total",
				Help: "Total rate limit hits",
			},
			[]string{"ip"},
		),

		AuditLogsCreated: auto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobank_audit_logs_total",
				Help: "Total audit logs created",
			},
			[]string{"action", "status"},
		),
	}
}
