package scenario

import (
	"math"
	"testing"
	"time"

	"FxRisk/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seqRand struct {
	vals  []float64
	calls int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.calls%len(r.vals)]
	r.calls++
	return v
}

var today = time.Date(2025, 7, 17, 15, 30, 0, 0, time.UTC)

func fixedModel(r Rand) *Model {
	return NewModel(WithRand(r), WithClock(func() time.Time { return today }))
}

func TestPredictScenariosBuckets(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name           string
		days           int
		down, up, flat float64
	}{
		{"one day", 1, 0.40, 0.50, 0.10},
		{"thirty days", 30, 0.40, 0.50, 0.10},
		{"thirty one days", 31, 0.55, 0.35, 0.10},
		{"ninety days", 90, 0.55, 0.35, 0.10},
		{"ninety one days", 91, 0.65, 0.25, 0.10},
		{"two years", 730, 0.65, 0.25, 0.10},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := fixedModel(&seqRand{vals: []float64{0.5}})
			out, err := m.PredictScenarios(today.AddDate(0, 0, tc.days), 1353)
			require.NoError(t, err)

			assert.Equal(t, tc.days, out.DaysDiff)
			assert.Equal(t, tc.down, out.Probabilities[models.ScenarioDown])
			assert.Equal(t, tc.up, out.Probabilities[models.ScenarioUp])
			assert.Equal(t, tc.flat, out.Probabilities[models.ScenarioFlat])
		})
	}
}

func TestPredictScenariosDegenerate(t *testing.T) {
	t.Parallel()

	for _, days := range []int{0, -1, -400} {
		r := &seqRand{vals: []float64{0.5}}
		out, err := fixedModel(r).PredictScenarios(today.AddDate(0, 0, days), 1353)
		require.NoError(t, err)

		assert.Equal(t, models.Distribution{
			models.ScenarioDown: 0,
			models.ScenarioUp:   0,
			models.ScenarioFlat: 1,
		}, out.Probabilities)
		for _, s := range models.Scenarios {
			assert.Equal(t, 1353.0, out.PredictedRates[s])
		}
		assert.Zero(t, r.calls, "no draws without a future horizon")
	}
}

func TestPredictScenariosUsesCalendarDays(t *testing.T) {
	t.Parallel()

	// Later on the same day is still today.
	out, err := fixedModel(&seqRand{vals: []float64{0.5}}).PredictScenarios(today.Add(5*time.Hour), 1353)
	require.NoError(t, err)
	assert.Equal(t, 0, out.DaysDiff)
	assert.Equal(t, 1.0, out.Probabilities[models.ScenarioFlat])

	// Early next morning is one day out.
	tomorrow := time.Date(2025, 7, 18, 0, 5, 0, 0, time.UTC)
	out, err = fixedModel(&seqRand{vals: []float64{0.5}}).PredictScenarios(tomorrow, 1353)
	require.NoError(t, err)
	assert.Equal(t, 1, out.DaysDiff)
}

func TestPredictScenariosExactRates(t *testing.T) {
	t.Parallel()

	r := &seqRand{vals: []float64{0, 0.5, 0.25}}
	out, err := fixedModel(r).PredictScenarios(today.AddDate(0, 0, 45), 1000)
	require.NoError(t, err)

	assert.Equal(t, 3, r.calls)
	assert.InDelta(t, 980.0, out.PredictedRates[models.ScenarioDown], 1e-9)
	assert.InDelta(t, 1035.0, out.PredictedRates[models.ScenarioUp], 1e-9)
	assert.InDelta(t, 997.5, out.PredictedRates[models.ScenarioFlat], 1e-9)
}

func TestPredictScenariosInvariants(t *testing.T) {
	t.Parallel()

	m := NewModel(WithClock(func() time.Time { return today }))
	for _, days := range []int{-5, 0, 1, 15, 30, 31, 60, 90, 91, 365} {
		for i := 0; i < 20; i++ {
			out, err := m.PredictScenarios(today.AddDate(0, 0, days), 1353)
			require.NoError(t, err)

			sum := 0.0
			for _, p := range out.Probabilities {
				assert.GreaterOrEqual(t, p, 0.0)
				assert.LessOrEqual(t, p, 1.0)
				sum += p
			}
			assert.InDelta(t, 1.0, sum, 1e-9)

			require.Len(t, out.Probabilities, len(models.Scenarios))
			require.Len(t, out.PredictedRates, len(models.Scenarios))
			for s := range out.Probabilities {
				assert.Contains(t, out.PredictedRates, s)
			}

			if days > 0 {
				assert.GreaterOrEqual(t, out.PredictedRates[models.ScenarioDown], 1353*0.95)
				assert.LessOrEqual(t, out.PredictedRates[models.ScenarioDown], 1353*0.98)
				assert.GreaterOrEqual(t, out.PredictedRates[models.ScenarioUp], 1353*1.02)
				assert.LessOrEqual(t, out.PredictedRates[models.ScenarioUp], 1353*1.05)
				assert.GreaterOrEqual(t, out.PredictedRates[models.ScenarioFlat], 1353*0.995)
				assert.LessOrEqual(t, out.PredictedRates[models.ScenarioFlat], 1353*1.005)
			}
		}
	}
}

func TestPredictScenariosInvalidRate(t *testing.T) {
	t.Parallel()

	m := fixedModel(&seqRand{vals: []float64{0.5}})
	for _, rate := range []float64{0, -1353, math.NaN(), math.Inf(1)} {
		_, err := m.PredictScenarios(today.AddDate(0, 0, 10), rate)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestPredictWindow(t *testing.T) {
	t.Parallel()

	m := fixedModel(&seqRand{vals: []float64{0.5}})
	start := today.AddDate(0, 0, 20)

	out, err := m.PredictWindow(start, start, 1353)
	require.NoError(t, err)
	assert.Equal(t, 1.0, out.Probabilities[models.ScenarioFlat])
	assert.Equal(t, 20, out.DaysDiff)

	out, err = m.PredictWindow(start, start.AddDate(0, 0, -5), 1353)
	require.NoError(t, err)
	assert.Equal(t, 1.0, out.Probabilities[models.ScenarioFlat])

	out, err = m.PredictWindow(today, today.AddDate(0, 0, 60), 1353)
	require.NoError(t, err)
	assert.Equal(t, 0.55, out.Probabilities[models.ScenarioDown])

	_, err = m.PredictWindow(today, today.AddDate(0, 0, 60), -1)
	var ie *models.InputError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "currentRate", ie.Field)
}

func TestDominantTrend(t *testing.T) {
	t.Parallel()

	rates := models.RateMap{
		models.ScenarioDown: 1300,
		models.ScenarioUp:   1400,
		models.ScenarioFlat: 1353,
	}
	cases := []struct {
		name  string
		probs models.Distribution
		want  models.Scenario
		label string
	}{
		{
			name:  "up wins",
			probs: models.Distribution{models.ScenarioDown: 0.40, models.ScenarioUp: 0.50, models.ScenarioFlat: 0.10},
			want:  models.ScenarioUp,
			label: "Rate increase expected (probability 50.0%)",
		},
		{
			name:  "down wins",
			probs: models.Distribution{models.ScenarioDown: 0.65, models.ScenarioUp: 0.25, models.ScenarioFlat: 0.10},
			want:  models.ScenarioDown,
			label: "Rate decrease expected (probability 65.0%)",
		},
		{
			name:  "degenerate",
			probs: models.Distribution{models.ScenarioDown: 0, models.ScenarioUp: 0, models.ScenarioFlat: 1},
			want:  models.ScenarioFlat,
			label: "Rate flat expected (probability 100.0%)",
		},
		{
			name:  "tie down and up",
			probs: models.Distribution{models.ScenarioDown: 0.45, models.ScenarioUp: 0.45, models.ScenarioFlat: 0.10},
			want:  models.ScenarioDown,
			label: "Rate decrease expected (probability 45.0%)",
		},
		{
			name:  "tie up and flat",
			probs: models.Distribution{models.ScenarioDown: 0, models.ScenarioUp: 0.5, models.ScenarioFlat: 0.5},
			want:  models.ScenarioUp,
			label: "Rate increase expected (probability 50.0%)",
		},
		{
			name:  "all equal",
			probs: models.Distribution{models.ScenarioDown: 0.25, models.ScenarioUp: 0.25, models.ScenarioFlat: 0.25},
			want:  models.ScenarioDown,
			label: "Rate decrease expected (probability 25.0%)",
		},
	}

	m := NewModel()
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := m.DominantTrend(models.ScenarioOutput{Probabilities: tc.probs, PredictedRates: rates})
			assert.Equal(t, tc.want, got.Trend)
			assert.Equal(t, tc.label, got.Label)
			assert.Equal(t, tc.probs[tc.want], got.Probability)
			assert.Equal(t, rates[tc.want], got.Rate)
		})
	}
}
