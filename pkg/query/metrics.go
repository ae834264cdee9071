package query

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	queriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slaskorders_queries_total",
		Help: "The total number of filter+sort pipeline runs",
	})
	mutationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slaskorders_view_mutations_total",
		Help: "The total number of filter/sort state mutations",
	})
)
