package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	analyses      *prometheus.CounterVec
	newsLookups   *prometheus.CounterVec
	sentiment     *prometheus.CounterVec
	eventsDropped *prometheus.CounterVec
	latency       *prometheus.HistogramVec
}

// New creates a recorder registered on the default Prometheus registry.
func New() *Recorder {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer creates a recorder registered on reg. Collectors that are
// already registered (e.g. a second recorder in the same process) are reused.
func NewWithRegisterer(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		analyses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fxrisk_analyses_total",
				Help: "Total number of risk analyses served",
			},
			[]string{"direction", "trend"},
		),
		newsLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fxrisk_news_lookups_total",
				Help: "News lookups by outcome (hit, miss, empty)",
			},
			[]string{"outcome"},
		),
		sentiment: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fxrisk_sentiment_labels_total",
				Help: "Sentiment summaries by label",
			},
			[]string{"label"},
		),
		eventsDropped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fxrisk_events_dropped_total",
				Help: "Events that could not be published",
			},
			[]string{"type"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fxrisk_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}

	r.analyses = register(reg, r.analyses)
	r.newsLookups = register(reg, r.newsLookups)
	r.sentiment = register(reg, r.sentiment)
	r.eventsDropped = register(reg, r.eventsDropped)
	r.latency = register(reg, r.latency)
	return r
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if reg == nil {
		return c
	}
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

// RecordAnalysis counts a served analysis.
func (r *Recorder) RecordAnalysis(direction, trend string) {
	r.analyses.WithLabelValues(direction, trend).Inc()
}

// RecordNewsLookup counts a news lookup by outcome.
func (r *Recorder) RecordNewsLookup(outcome string) {
	r.newsLookups.WithLabelValues(outcome).Inc()
}

// RecordSentiment counts a sentiment summary by label.
func (r *Recorder) RecordSentiment(label string) {
	r.sentiment.WithLabelValues(label).Inc()
}

// RecordEventDropped counts an event that failed to publish.
func (r *Recorder) RecordEventDropped(kind string) {
	r.eventsDropped.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
