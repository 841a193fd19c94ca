package models

import "time"

// Scenario is a qualitative rate-movement outcome.
type Scenario string

const (
	ScenarioDown Scenario = "down"
	ScenarioUp   Scenario = "up"
	ScenarioFlat Scenario = "flat"
)

// Scenarios lists every scenario in tie-break order.
var Scenarios = []Scenario{ScenarioDown, ScenarioUp, ScenarioFlat}

// Description is the human-readable expectation for the scenario.
func (s Scenario) Description() string {
	switch s {
	case ScenarioDown:
		return "Rate decrease expected"
	case ScenarioUp:
		return "Rate increase expected"
	case ScenarioFlat:
		return "Rate flat expected"
	default:
		return "Unknown"
	}
}

// Direction is the side of the hypothetical trade.
type Direction string

const (
	DirectionExport Direction = "export"
	DirectionImport Direction = "import"
)

// Distribution maps every scenario to its probability.
type Distribution map[Scenario]float64

// RateMap maps every scenario to its predicted rate.
type RateMap map[Scenario]float64

// ScenarioOutput is the result of a scenario prediction.
type ScenarioOutput struct {
	Probabilities  Distribution `json:"probabilities"`
	PredictedRates RateMap      `json:"predictedRates"`
	DaysDiff       int          `json:"daysDiff"`
}

// DominantTrend is the scenario with the highest probability.
type DominantTrend struct {
	Label       string   `json:"label"`
	Trend       Scenario `json:"trend"`
	Probability float64  `json:"probability"`
	Rate        float64  `json:"rate"`
}

// Strategy is a hedging recommendation.
type Strategy string

const (
	StrategySellForward     Strategy = "sell_forward"
	StrategyHoldSpotSellUp  Strategy = "hold_spot_sell_on_rise"
	StrategyBuySpotRebuyDip Strategy = "buy_spot_rebuy_on_dip"
	StrategyBuyForward      Strategy = "buy_forward"
	StrategyMonitor         Strategy = "monitor"
	NoStrategy              Strategy = "none"
)

var strategyText = map[Strategy]string{
	StrategySellForward:     "Sell forward (hedge against a rate decrease)",
	StrategyHoldSpotSellUp:  "Hold spot and sell on a rate rise (capture the upside)",
	StrategyBuySpotRebuyDip: "Buy spot now and consider rebuying on a dip (capture the downside)",
	StrategyBuyForward:      "Buy forward (hedge against a rate increase)",
	StrategyMonitor:         "Monitor the market and react flexibly",
	NoStrategy:              "No strategy",
}

// Text returns the display text of the strategy.
func (s Strategy) Text() string {
	if t, ok := strategyText[s]; ok {
		return t
	}
	return strategyText[NoStrategy]
}

// IsForwardHedge reports whether the strategy locks the rate with a forward contract.
func (s Strategy) IsForwardHedge() bool {
	return s == StrategySellForward || s == StrategyBuyForward
}

// RateQuote is a snapshot of the current FX rate.
type RateQuote struct {
	Pair      string    `json:"pair"`
	Rate      float64   `json:"rate"`
	DayHigh   float64   `json:"dayHigh"`
	DayLow    float64   `json:"dayLow"`
	Change    float64   `json:"change"`
	UpdatedAt time.Time `json:"updatedAt"`
}
