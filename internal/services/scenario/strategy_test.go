package scenario

import (
	"testing"

	"FxRisk/internal/domain/models"

	"github.com/stretchr/testify/assert"
)

func TestRecommendStrategy(t *testing.T) {
	t.Parallel()

	cases := []struct {
		trend     models.Scenario
		direction models.Direction
		want      models.Strategy
	}{
		{models.ScenarioDown, models.DirectionExport, models.StrategySellForward},
		{models.ScenarioUp, models.DirectionExport, models.StrategyHoldSpotSellUp},
		{models.ScenarioFlat, models.DirectionExport, models.StrategyMonitor},
		{models.ScenarioDown, models.DirectionImport, models.StrategyBuySpotRebuyDip},
		{models.ScenarioUp, models.DirectionImport, models.StrategyBuyForward},
		{models.ScenarioFlat, models.DirectionImport, models.StrategyMonitor},
		{models.ScenarioDown, models.Direction("barter"), models.NoStrategy},
		{models.ScenarioFlat, models.Direction(""), models.NoStrategy},
		{models.Scenario("sideways"), models.DirectionExport, models.NoStrategy},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, RecommendStrategy(tc.trend, tc.direction), "%s/%s", tc.direction, tc.trend)
	}
}

func TestForwardHedgeRecommendations(t *testing.T) {
	t.Parallel()

	assert.True(t, RecommendStrategy(models.ScenarioDown, models.DirectionExport).IsForwardHedge())
	assert.True(t, RecommendStrategy(models.ScenarioUp, models.DirectionImport).IsForwardHedge())
	assert.False(t, RecommendStrategy(models.ScenarioUp, models.DirectionExport).IsForwardHedge())
	assert.False(t, RecommendStrategy(models.ScenarioDown, models.DirectionImport).IsForwardHedge())

	for _, d := range []models.Direction{models.DirectionExport, models.DirectionImport} {
		assert.Equal(t, models.StrategyMonitor, RecommendStrategy(models.ScenarioFlat, d))
	}
}

func TestStrategyTextAndAdvice(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Sell forward (hedge against a rate decrease)", models.StrategySellForward.Text())
	assert.Equal(t, "No strategy", models.Strategy("bogus").Text())

	assert.Contains(t, Advice(models.StrategySellForward, models.DirectionExport), "selling forward")
	assert.Contains(t, Advice(models.StrategyBuyForward, models.DirectionImport), "buying forward")
	assert.Contains(t, Advice(models.StrategyMonitor, models.DirectionImport), "react flexibly")
	assert.Empty(t, Advice(models.NoStrategy, models.DirectionExport))
	assert.NotEmpty(t, Advice(models.StrategyHoldSpotSellUp, models.DirectionExport))
}
