package usecase

import (
	"context"
	"fmt"
	"time"

	"FxRisk/internal/domain/models"
	domrepo "FxRisk/internal/domain/repository"
	domsvc "FxRisk/internal/domain/service"
	"FxRisk/internal/services/sentiment"
	xutil "FxRisk/pkg/util"
)

// NewsUseCase returns a day's news together with its sentiment roll-up.
type NewsUseCase struct {
	source     domrepo.NewsSource
	summarizer domsvc.SentimentSummarizer
	metrics    domrepo.Metrics
	asOf       time.Time
}

// NewNewsUseCase creates the use case. asOf is the latest date with news.
func NewNewsUseCase(source domrepo.NewsSource, summarizer domsvc.SentimentSummarizer, metrics domrepo.Metrics, asOf time.Time) *NewsUseCase {
	return &NewsUseCase{
		source:     source,
		summarizer: summarizer,
		metrics:    metrics,
		asOf:       xutil.Midnight(asOf),
	}
}

// AsOf returns the latest date with news.
func (uc *NewsUseCase) AsOf() time.Time { return uc.asOf }

// News looks up date. A zero date means the as-of date.
func (uc *NewsUseCase) News(ctx context.Context, date time.Time) (*models.NewsResult, error) {
	start := time.Now()
	defer func() { uc.metrics.RecordLatency("news", time.Since(start).Seconds()) }()

	if date.IsZero() {
		date = uc.asOf
	}
	date = xutil.Midnight(date)
	if date.After(uc.asOf) {
		return nil, models.NewInputError("date", "must be on or before %s", xutil.FormatDate(uc.asOf))
	}

	items, err := uc.source.LookupNews(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("lookup news: %w", err)
	}
	sum := uc.summarizer.Summarize(items)
	uc.metrics.RecordSentiment(string(sum.Label))

	return &models.NewsResult{
		Date:            xutil.FormatDate(date),
		Items:           items,
		MeanSentiment:   sum.MeanSentiment,
		MeanConfidence:  sum.MeanConfidence,
		DownProbability: sum.DownProbability,
		UpProbability:   sum.UpProbability,
		Label:           sum.Label,
		Explanation:     sentiment.Explain(sum.Label),
	}, nil
}
