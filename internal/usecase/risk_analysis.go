package usecase

import (
	"context"
	"fmt"
	"time"

	"FxRisk/internal/domain/models"
	domrepo "FxRisk/internal/domain/repository"
	domsvc "FxRisk/internal/domain/service"
	"FxRisk/internal/services/scenario"
	applogger "FxRisk/pkg/logger"
	xutil "FxRisk/pkg/util"

	"github.com/google/uuid"
)

const (
	analysisCurrency = "USD"
	eventAnalysis    = "analysis.completed"
)

// RiskAnalysisUseCase runs the scenario model for a hypothetical trade.
type RiskAnalysisUseCase struct {
	rates   domrepo.RateProvider
	model   domsvc.ScenarioPredictor
	events  domrepo.EventPublisher
	metrics domrepo.Metrics
	logger  *applogger.Logger
	now     func() time.Time
	newID   func() string
}

func NewRiskAnalysisUseCase(
	rates domrepo.RateProvider,
	model domsvc.ScenarioPredictor,
	events domrepo.EventPublisher,
	metrics domrepo.Metrics,
	logger *applogger.Logger,
) *RiskAnalysisUseCase {
	return &RiskAnalysisUseCase{
		rates:   rates,
		model:   model,
		events:  events,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

type AnalyzeParams struct {
	Direction  models.Direction
	AmountUSD  float64
	StartDate  time.Time
	TargetDate time.Time
}

func (uc *RiskAnalysisUseCase) Analyze(ctx context.Context, p AnalyzeParams) (*models.AnalysisResult, error) {
	start := time.Now()
	defer func() { uc.metrics.RecordLatency("analyze", time.Since(start).Seconds()) }()

	if p.AmountUSD <= 0 {
		return nil, models.NewInputError("amountUSD", "must be greater than 0")
	}
	if p.StartDate.IsZero() {
		p.StartDate = xutil.Midnight(uc.now())
	}
	if p.TargetDate.IsZero() {
		p.TargetDate = p.StartDate.AddDate(0, 0, 90)
	}

	quote, err := uc.rates.Quote(ctx)
	if err != nil {
		return nil, fmt.Errorf("rate quote: %w", err)
	}

	out, err := uc.model.PredictWindow(p.StartDate, p.TargetDate, quote.Rate)
	if err != nil {
		return nil, fmt.Errorf("predict scenarios: %w", err)
	}
	dom := uc.model.DominantTrend(out)
	strategy := scenario.RecommendStrategy(dom.Trend, p.Direction)

	res := &models.AnalysisResult{
		ID:                  uc.newID(),
		Direction:           p.Direction,
		Currency:            analysisCurrency,
		AmountUSD:           p.AmountUSD,
		StartDate:           xutil.FormatDate(p.StartDate),
		TargetDate:          xutil.FormatDate(p.TargetDate),
		DaysDiff:            out.DaysDiff,
		CurrentRate:         quote.Rate,
		Probabilities:       out.Probabilities,
		PredictedRates:      out.PredictedRates,
		DominantTrend:       dom.Trend,
		DominantLabel:       dom.Label,
		DominantRate:        dom.Rate,
		RecommendedStrategy: strategy.Text(),
		StrategyCode:        strategy,
		Advice:              scenario.Advice(strategy, p.Direction),
	}

	uc.metrics.RecordAnalysis(string(p.Direction), string(dom.Trend))
	if strategy == models.NoStrategy {
		uc.logger.Warn("no strategy for direction", applogger.String("direction", string(p.Direction)))
	}
	uc.publish(ctx, res)

	return res, nil
}

// publish is best-effort; the analysis is already computed.
func (uc *RiskAnalysisUseCase) publish(ctx context.Context, res *models.AnalysisResult) {
	if uc.events == nil {
		return
	}
	ev := models.AnalysisEvent{
		Type:       eventAnalysis,
		ID:         res.ID,
		Direction:  res.Direction,
		AmountUSD:  res.AmountUSD,
		TargetDate: res.TargetDate,
		Rate:       res.CurrentRate,
		Trend:      res.DominantTrend,
		Strategy:   res.StrategyCode,
		Probs:      res.Probabilities,
		At:         uc.now().UTC(),
	}
	if err := uc.events.PublishAnalysis(ctx, ev); err != nil {
		uc.metrics.RecordEventDropped(eventAnalysis)
		uc.logger.Error("publish analysis event",
			applogger.String("id", res.ID),
			applogger.Error(err),
		)
	}
}
