package sentiment

import (
	"FxRisk/internal/domain/models"

	"github.com/shopspring/decimal"
)

var (
	one        = decimal.NewFromInt(1)
	two        = decimal.NewFromInt(2)
	scale      = decimal.RequireFromString("0.8")
	offset     = decimal.RequireFromString("0.1")
	hysteresis = decimal.RequireFromString("0.05")
)

// Aggregator rolls news sentiment up into a down/up probability split.
type Aggregator struct{}

// NewAggregator creates an aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Summarize computes the sentiment summary of items. An empty list yields the
// zero summary labelled neutral.
//
// The down probability is round2(clamp01((mean*conf+1)/2*0.8+0.1)) and the up
// probability is its complement, so the pair always sums to exactly 1.
// "positive" means the down (KRW strengthening) side dominates.
func (a *Aggregator) Summarize(items []models.NewsItem) models.SentimentSummary {
	if len(items) == 0 {
		return models.SentimentSummary{Label: models.LabelNeutral}
	}

	sumSentiment, sumConfidence := decimal.Zero, decimal.Zero
	for _, it := range items {
		sumSentiment = sumSentiment.Add(decimal.NewFromFloat(it.Sentiment))
		sumConfidence = sumConfidence.Add(decimal.NewFromFloat(it.Confidence))
	}
	n := decimal.NewFromInt(int64(len(items)))
	meanSentiment := sumSentiment.Div(n)
	meanConfidence := sumConfidence.Div(n)

	weighted := meanSentiment.Mul(meanConfidence)
	down := clamp01(weighted.Add(one).Div(two).Mul(scale).Add(offset)).Round(2)
	up := one.Sub(down)

	return models.SentimentSummary{
		MeanSentiment:   meanSentiment.InexactFloat64(),
		MeanConfidence:  meanConfidence.InexactFloat64(),
		DownProbability: down.InexactFloat64(),
		UpProbability:   up.InexactFloat64(),
		Label:           label(down, up),
	}
}

func label(down, up decimal.Decimal) models.Label {
	switch {
	case down.GreaterThan(up.Add(hysteresis)):
		return models.LabelPositive
	case up.GreaterThan(down.Add(hysteresis)):
		return models.LabelNegative
	default:
		return models.LabelNeutral
	}
}

func clamp01(d decimal.Decimal) decimal.Decimal {
	if d.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if d.GreaterThan(one) {
		return one
	}
	return d
}

// Explain describes the expected rate impact of a sentiment label.
func Explain(l models.Label) string {
	switch l {
	case models.LabelPositive:
		return "News sentiment is positive: pressure toward a stronger KRW, which favours a rate decrease."
	case models.LabelNegative:
		return "News sentiment is negative: pressure toward a weaker KRW, which favours a rate increase."
	default:
		return "News sentiment is neutral: no strong directional signal for the rate."
	}
}
