package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fundcache_cache_hits_total",
		Help: "Snapshot requests served from the cache.",
	})
	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fundcache_cache_misses_total",
		Help: "Snapshot requests that fell through to the upstream provider.",
	})
	upstreamFetches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fundcache_upstream_fetches_total",
		Help: "Fetch attempts against the upstream provider.",
	})
	upstreamErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fundcache_upstream_errors_total",
		Help: "Upstream fetch attempts that failed.",
	})
)
