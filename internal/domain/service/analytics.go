package service

import (
	"time"

	"FxRisk/internal/domain/models"
)

// ScenarioPredictor assigns probabilities and predicted rates to each scenario.
type ScenarioPredictor interface {
	PredictScenarios(targetDate time.Time, currentRate float64) (models.ScenarioOutput, error)
	PredictWindow(startDate, targetDate time.Time, currentRate float64) (models.ScenarioOutput, error)
	DominantTrend(out models.ScenarioOutput) models.DominantTrend
}

// SentimentSummarizer rolls a day's news up into a probability split.
type SentimentSummarizer interface {
	Summarize(items []models.NewsItem) models.SentimentSummary
}
