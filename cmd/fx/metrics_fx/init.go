package metrics_fx

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"

	"koreatrip/pkg/metrics"
)

var Module = fx.Provide(provideRegistry, provideGatherer, provideCollector)

func provideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func provideGatherer(reg *prometheus.Registry) prometheus.Gatherer {
	return reg
}

func provideCollector(reg *prometheus.Registry) *metrics.Collector {
	return metrics.New(reg)
}
