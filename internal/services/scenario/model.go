package scenario

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"FxRisk/internal/domain/models"
	xutil "FxRisk/pkg/util"
)

// ErrInvalidInput is returned for a non-positive or non-finite current rate.
var ErrInvalidInput = models.ErrInvalidInput

// Rand is the uniform source used for predicted-rate jitter. Float64 returns
// a value in [0, 1).
type Rand interface {
	Float64() float64
}

type defaultRand struct{}

func (defaultRand) Float64() float64 { return rand.Float64() }

// Option configures Model.
type Option func(*Model)

// WithRand sets the random source.
func WithRand(r Rand) Option {
	return func(m *Model) {
		m.rand = r
	}
}

// WithClock sets the function that supplies "today".
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// bucket is one row of the horizon table.
type bucket struct {
	maxDays        int
	down, up, flat float64
}

// Longer horizons skew toward depreciation risk. The table is illustrative.
var buckets = []bucket{
	{maxDays: 30, down: 0.40, up: 0.50, flat: 0.10},
	{maxDays: 90, down: 0.55, up: 0.35, flat: 0.10},
	{maxDays: math.MaxInt, down: 0.65, up: 0.25, flat: 0.10},
}

// Model implements the scenario distribution, dominant trend and strategy table.
type Model struct {
	rand Rand
	now  func() time.Time
}

// NewModel creates a scenario model.
func NewModel(opts ...Option) *Model {
	m := &Model{
		rand: defaultRand{},
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// DaysUntil returns the whole calendar days from today to target.
func (m *Model) DaysUntil(target time.Time) int {
	return xutil.DaysBetween(m.now(), target)
}

// PredictScenarios returns the probability of each scenario for targetDate
// together with a predicted rate per scenario. A target date that is today or
// earlier yields the degenerate flat scenario.
func (m *Model) PredictScenarios(targetDate time.Time, currentRate float64) (models.ScenarioOutput, error) {
	if err := checkRate(currentRate); err != nil {
		return models.ScenarioOutput{}, err
	}
	days := m.DaysUntil(targetDate)
	if days <= 0 {
		return degenerate(days, currentRate), nil
	}
	return m.predict(days, currentRate), nil
}

// PredictWindow is PredictScenarios for a trade that starts on startDate. A
// target on or before the start date is also degenerate.
func (m *Model) PredictWindow(startDate, targetDate time.Time, currentRate float64) (models.ScenarioOutput, error) {
	if err := checkRate(currentRate); err != nil {
		return models.ScenarioOutput{}, err
	}
	days := m.DaysUntil(targetDate)
	if days <= 0 || xutil.DaysBetween(startDate, targetDate) <= 0 {
		return degenerate(days, currentRate), nil
	}
	return m.predict(days, currentRate), nil
}

func checkRate(rate float64) error {
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return models.NewInputError("currentRate", "must be a positive number, got %v", rate)
	}
	return nil
}

func degenerate(days int, rate float64) models.ScenarioOutput {
	return models.ScenarioOutput{
		Probabilities: models.Distribution{
			models.ScenarioDown: 0,
			models.ScenarioUp:   0,
			models.ScenarioFlat: 1,
		},
		PredictedRates: models.RateMap{
			models.ScenarioDown: rate,
			models.ScenarioUp:   rate,
			models.ScenarioFlat: rate,
		},
		DaysDiff: days,
	}
}

func (m *Model) predict(days int, rate float64) models.ScenarioOutput {
	var b bucket
	for _, b = range buckets {
		if days <= b.maxDays {
			break
		}
	}

	return models.ScenarioOutput{
		Probabilities: models.Distribution{
			models.ScenarioDown: b.down,
			models.ScenarioUp:   b.up,
			models.ScenarioFlat: b.flat,
		},
		PredictedRates: models.RateMap{
			models.ScenarioDown: rate * (1 - m.uniform(0.02, 0.05)),
			models.ScenarioUp:   rate * (1 + m.uniform(0.02, 0.05)),
			models.ScenarioFlat: rate * (1 + m.uniform(-0.005, 0.005)),
		},
		DaysDiff: days,
	}
}

func (m *Model) uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*m.rand.Float64()
}

// DominantTrend picks the scenario with the highest probability. Ties go to
// the earliest scenario in the order down, up, flat.
func (m *Model) DominantTrend(out models.ScenarioOutput) models.DominantTrend {
	best := models.Scenarios[0]
	for _, s := range models.Scenarios[1:] {
		if out.Probabilities[s] > out.Probabilities[best] {
			best = s
		}
	}

	p := out.Probabilities[best]
	return models.DominantTrend{
		Label:       fmt.Sprintf("%s (probability %.1f%%)", best.Description(), p*100),
		Trend:       best,
		Probability: p,
		Rate:        out.PredictedRates[best],
	}
}
