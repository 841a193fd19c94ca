package models

import "time"

// AnalyzeRequest is bound from the query string or a JSON body.
type AnalyzeRequest struct {
	Direction  string  `query:"direction" json:"direction" validate:"required,oneof=export import"`
	AmountUSD  float64 `query:"amountUSD" json:"amountUSD" default:"1000000" validate:"gt=0"`
	StartDate  string  `query:"startDate" json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	TargetDate string  `query:"targetDate" json:"targetDate" validate:"omitempty,datetime=2006-01-02"`
}

// NewsRequest selects the news date.
type NewsRequest struct {
	Date string `query:"date" json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// AnalysisResult is the response of a risk analysis.
type AnalysisResult struct {
	ID                  string       `json:"id"`
	Direction           Direction    `json:"direction"`
	Currency            string       `json:"currency"`
	AmountUSD           float64      `json:"amountUSD"`
	StartDate           string       `json:"startDate"`
	TargetDate          string       `json:"targetDate"`
	DaysDiff            int          `json:"daysDiff"`
	CurrentRate         float64      `json:"currentRate"`
	Probabilities       Distribution `json:"probabilities"`
	PredictedRates      RateMap      `json:"predictedRates"`
	DominantTrend       Scenario     `json:"dominantTrend"`
	DominantLabel       string       `json:"dominantLabel"`
	DominantRate        float64      `json:"dominantRate"`
	RecommendedStrategy string       `json:"recommendedStrategy"`
	StrategyCode        Strategy     `json:"strategyCode"`
	Advice              string       `json:"advice"`
}

// NewsResult is the response of a news lookup.
type NewsResult struct {
	Date            string     `json:"date"`
	Items           []NewsItem `json:"items"`
	MeanSentiment   float64    `json:"meanSentiment"`
	MeanConfidence  float64    `json:"meanConfidence"`
	DownProbability float64    `json:"downProbability"`
	UpProbability   float64    `json:"upProbability"`
	Label           Label      `json:"label"`
	Explanation     string     `json:"explanation"`
}

// AnalysisEvent is published after every completed analysis.
type AnalysisEvent struct {
	Type       string       `json:"type"`
	ID         string       `json:"id"`
	Direction  Direction    `json:"direction"`
	AmountUSD  float64      `json:"amountUSD"`
	TargetDate string       `json:"targetDate"`
	Rate       float64      `json:"rate"`
	Trend      Scenario     `json:"trend"`
	Strategy   Strategy     `json:"strategy"`
	Probs      Distribution `json:"probabilities"`
	At         time.Time    `json:"at"`
}

// Page is a dashboard screen.
type Page string

const (
	PageHome     Page = "home"
	PageAnalysis Page = "analysis"
	PageNews     Page = "news"
)

// PageLink points to a neighbouring screen.
type PageLink struct {
	Page  Page   `json:"page"`
	Title string `json:"title"`
	Path  string `json:"path"`
}

// Navigation describes a screen and its neighbours.
type Navigation struct {
	Page  Page      `json:"page"`
	Title string    `json:"title"`
	Path  string    `json:"path"`
	Prev  *PageLink `json:"prev,omitempty"`
	Next  *PageLink `json:"next,omitempty"`
}

// HomeResult is the landing screen payload.
type HomeResult struct {
	Title      string     `json:"title"`
	Welcome    string     `json:"welcome"`
	Features   []string   `json:"features"`
	Disclaimer string     `json:"disclaimer"`
	Pages      []PageLink `json:"pages"`
	Navigation Navigation `json:"navigation"`
	Quote      RateQuote  `json:"quote"`
}
