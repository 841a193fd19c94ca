package metrics

import (
    "sync"

    "github.com/prometheus/client_golang/prometheus"
)

var (
    once sync.Once

    EndpointLatency = prometheus.NewHistogramVec(
        prometheus.HistogramOpts{
            Namespace: "fxrisk",
            Subsystem: "api",
            Name:      "latency_seconds",
            Help:      "Latency of dashboard endpoints",
            Buckets:   prometheus.DefBuckets,
        },
        []string{"endpoint"},
    )

    EndpointErrors = prometheus.NewCounterVec(
        prometheus.CounterOpts{
            Namespace: "fxrisk",
            Subsystem: "api",
            Name:      "errors_total",
            Help:      "Errors by dashboard endpoint and kind",
        },
        []string{"endpoint", "kind"},
    )
)

func Register() {
    once.Do(func() {
        prometheus.MustRegister(EndpointLatency, EndpointErrors)
    })
}
