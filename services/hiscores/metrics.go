package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hiscores_lookups",
		Help: "Hiscores lookups by outcome",
	}, []string{"outcome"})
	metricLookupDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hiscores_lookup_duration_seconds",
		Help:    "Duration of upstream hiscores lookups",
		Buckets: prometheus.DefBuckets,
	})
)
