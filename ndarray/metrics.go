package ndarray

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	allocations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ndarray_allocations_total",
		Help: "Total number of owned buffers allocated",
	})

	views = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ndarray_views_total",
		Help: "Total number of strided views constructed",
	})

	copies = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ndarray_copies_total",
		Help: "Total number of materializing copies (flatten, gather)",
	})

	conversions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ndarray_conversions_total",
		Help: "Total number of cross-kind conversions",
	})
)
