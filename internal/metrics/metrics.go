package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UpstreamCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smhi_mcp_upstream_calls_total",
			Help: "Total SMHI point forecast API calls",
		},
		[]string{"status"},
	)

	UpstreamLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "smhi_mcp_upstream_latency_seconds",
			Help:    "SMHI API call latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	ForecastRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smhi_mcp_forecast_requests_total",
			Help: "Total get_weather_forecast tool invocations",
		},
		[]string{"outcome"},
	)

	EntriesDroppedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "smhi_mcp_entries_dropped_total",
			Help: "Time series entries dropped due to missing required parameters",
		},
	)
)
