package repository

import (
	"context"
	"time"

	"FxRisk/internal/domain/models"
	"FxRisk/internal/domain/repository"
	"FxRisk/pkg/config"
)

// StaticRateProvider returns the configured quote. It stands in for a live feed.
type StaticRateProvider struct {
	quote models.RateQuote
	now   func() time.Time
}

// NewStaticRateProvider builds a provider from the rates section of cfg.
func NewStaticRateProvider(cfg *config.Config) *StaticRateProvider {
	return &StaticRateProvider{
		quote: models.RateQuote{
			Pair:    cfg.Rates.Pair,
			Rate:    cfg.Rates.Current,
			DayHigh: cfg.Rates.DayHigh,
			DayLow:  cfg.Rates.DayLow,
			Change:  cfg.Rates.Change,
		},
		now: time.Now,
	}
}

var _ repository.RateProvider = (*StaticRateProvider)(nil)

func (p *StaticRateProvider) Quote(_ context.Context) (models.RateQuote, error) {
	q := p.quote
	q.UpdatedAt = p.now().UTC()
	return q, nil
}
