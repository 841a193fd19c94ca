package repository

import (
	"context"
	"time"

	"FxRisk/internal/domain/models"
)

// RateProvider supplies the current FX quote.
type RateProvider interface {
	Quote(ctx context.Context) (models.RateQuote, error)
}

// NewsSource returns the news items published on a calendar date.
// A date without news yields an empty slice and no error.
type NewsSource interface {
	LookupNews(ctx context.Context, date time.Time) ([]models.NewsItem, error)
}

// EventPublisher emits domain events.
type EventPublisher interface {
	PublishAnalysis(ctx context.Context, ev models.AnalysisEvent) error
}

// Metrics records domain-level counters.
type Metrics interface {
	RecordAnalysis(direction, trend string)
	RecordNewsLookup(outcome string)
	RecordSentiment(label string)
	RecordEventDropped(kind string)
	RecordLatency(op string, seconds float64)
}
