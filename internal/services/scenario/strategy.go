package scenario

import "FxRisk/internal/domain/models"

// RecommendStrategy looks up the hedging strategy for a dominant trend and a
// trade direction. Unknown directions or trends yield NoStrategy.
func RecommendStrategy(trend models.Scenario, direction models.Direction) models.Strategy {
	switch direction {
	case models.DirectionExport:
		switch trend {
		case models.ScenarioDown:
			return models.StrategySellForward
		case models.ScenarioUp:
			return models.StrategyHoldSpotSellUp
		case models.ScenarioFlat:
			return models.StrategyMonitor
		}
	case models.DirectionImport:
		switch trend {
		case models.ScenarioUp:
			return models.StrategyBuyForward
		case models.ScenarioDown:
			return models.StrategyBuySpotRebuyDip
		case models.ScenarioFlat:
			return models.StrategyMonitor
		}
	}
	return models.NoStrategy
}

// Advice returns the paragraph shown next to the recommendation.
func Advice(s models.Strategy, direction models.Direction) string {
	switch {
	case s == models.StrategySellForward && direction == models.DirectionExport:
		return "The dominant expectation is a rate decrease. As an exporter, consider selling forward to " +
			"protect the KRW value of future USD receipts."
	case s == models.StrategyBuyForward && direction == models.DirectionImport:
		return "The dominant expectation is a rate increase. As an importer, consider buying forward to " +
			"cap the KRW cost of future USD payments."
	case s == models.StrategyMonitor:
		return "The rate is expected to stay flat. Watch the market closely and react flexibly."
	case s == models.NoStrategy:
		return ""
	default:
		return "The dominant scenario favours your open position. Keep the spot exposure and revisit " +
			"the hedge if the outlook changes."
	}
}
