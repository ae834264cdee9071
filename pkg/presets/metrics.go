package presets

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	savesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slaskorders_preset_saves_total",
		Help: "The total number of presets saved",
	})
	loadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slaskorders_preset_loads_total",
		Help: "The total number of presets loaded",
	})
	corruptionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slaskorders_storage_corruptions_total",
		Help: "The number of corrupted preset collections recovered to empty",
	})
)
