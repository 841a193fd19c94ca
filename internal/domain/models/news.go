package models

// NewsItem is a single fixture news snippet. Items are never mutated.
type NewsItem struct {
	Title      string  `json:"title" yaml:"title"`
	Link       string  `json:"link" yaml:"link"`
	Sentiment  float64 `json:"sentiment" yaml:"sentiment"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

// Label classifies a sentiment summary.
type Label string

const (
	LabelPositive Label = "positive"
	LabelNegative Label = "negative"
	LabelNeutral  Label = "neutral"
)

// SentimentSummary is the roll-up of a day's news.
type SentimentSummary struct {
	MeanSentiment   float64 `json:"meanSentiment"`
	MeanConfidence  float64 `json:"meanConfidence"`
	DownProbability float64 `json:"downProbability"`
	UpProbability   float64 `json:"upProbability"`
	Label           Label   `json:"label"`
}
