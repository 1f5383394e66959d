package cache

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	cacheAttempts  prometheus.Counter
	cacheHits      prometheus.Counter
	cacheSize      prometheus.Gauge
	cacheTotalSize prometheus.Gauge
}

func newMetrics(namespace, subsystem string) *metrics {
	return &metrics{
		cacheAttempts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "cache_total",
			Help:      "Number of times the cache was tried",
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "cache_hit",
			Help:      "Number of times the cache was used",
		}),
		cacheSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "cache_size",
			Help:      "Total number of cache entries (excluding expired items)",
		}),
		cacheTotalSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "cache_total_size",
			Help:      "Total number of cache entries (including expired items)",
		}),
	}
}

func (m *metrics) Describe(ch chan<- *prometheus.Desc) {
	m.cacheAttempts.Describe(ch)
	m.cacheHits.Describe(ch)
	m.cacheSize.Describe(ch)
	m.cacheTotalSize.Describe(ch)
}

func (m *metrics) Collect(ch chan<- prometheus.Metric) {
	m.cacheAttempts.Collect(ch)
	m.cacheHits.Collect(ch)
	m.cacheSize.Collect(ch)
	m.cacheTotalSize.Collect(ch)
}
