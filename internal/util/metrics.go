package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersConfirmedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_confirmed_total",
		Help: "Total number of orders confirmed",
	})

	OrdersFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_failed_total",
		Help: "Total number of failed order confirmations",
	}, []string{"reason"})

	CartItemsAddedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cart_items_added_total",
		Help: "Total number of line items added to carts",
	})

	CollectionSaveLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "collection_save_latency_seconds",
		Help:    "Latency of collection save operations",
		Buckets: prometheus.DefBuckets,
	}, []string{"collection"})

	CollectionLoadLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "collection_load_latency_seconds",
		Help:    "Latency of collection load operations",
		Buckets: prometheus.DefBuckets,
	}, []string{"collection"})

	BackupsCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "backups_created_total",
		Help: "Total number of collection backups created",
	}, []string{"collection"})

	BackupsFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "backups_failed_total",
		Help: "Total number of failed collection backups",
	}, []string{"collection"})

	CommandsInterpretedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "commands_interpreted_total",
		Help: "Total number of interpreted text commands",
	}, []string{"intent"})

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
