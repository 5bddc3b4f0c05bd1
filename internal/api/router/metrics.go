package router

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "career_tracker",
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "Count of HTTP requests handled by the tracker API",
}, []string{"method", "route", "status"})

var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "career_tracker",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "Latency of HTTP requests handled by the tracker API",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "route"})
