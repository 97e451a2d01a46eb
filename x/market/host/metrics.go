package host

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	operationCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nftmarket_operation",
		Help: "Market operations by action and result",
	}, []string{"action", "result"})

	effectCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nftmarket_effect",
		Help: "Dispatched effects by kind and result",
	}, []string{"kind", "result"})

	operationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "nftmarket_operation_duration_us",
		Help:    "Time to run an operation and its effects, in microseconds",
		Buckets: prometheus.ExponentialBuckets(10, 4, 8),
	})
)
