package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"FxRisk/internal/domain/models"
	"FxRisk/internal/repository"
	"FxRisk/internal/services/scenario"
	"FxRisk/internal/services/sentiment"
	"FxRisk/internal/usecase"
	"FxRisk/pkg/config"
	xhttp "FxRisk/pkg/http"
	applogger "FxRisk/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clock = time.Date(2025, 7, 17, 10, 0, 0, 0, time.UTC)

type halfRand struct{}

func (halfRand) Float64() float64 { return 0.5 }

type nopMetrics struct{}

func (nopMetrics) RecordAnalysis(string, string) {}
func (nopMetrics) RecordNewsLookup(string)       {}
func (nopMetrics) RecordSentiment(string)        {}
func (nopMetrics) RecordEventDropped(string)     {}
func (nopMetrics) RecordLatency(string, float64) {}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	cfg := config.Default()
	rates := repository.NewStaticRateProvider(cfg)
	src, err := repository.NewFixtureNewsSource()
	require.NoError(t, err)

	model := scenario.NewModel(
		scenario.WithRand(halfRand{}),
		scenario.WithClock(func() time.Time { return clock }),
	)
	analysis := usecase.NewRiskAnalysisUseCase(rates, model, repository.NoopEventPublisher{}, nopMetrics{}, applogger.Nop())
	news := usecase.NewNewsUseCase(src, sentiment.NewAggregator(), nopMetrics{}, cfg.AsOfDate())
	nav := usecase.NewNavigationUseCase(rates)

	h := NewDashboardEchoHandler(applogger.Nop(), analysis, news, nav)
	h.now = func() time.Time { return clock }

	srv := xhttp.NewServer([]xhttp.Handler{h}, xhttp.WithMetrics("", 0), xhttp.WithCORS(false))
	return srv.Echo()
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func TestAnalyzeQuery(t *testing.T) {
	t.Parallel()

	h := newTestServer(t)
	rec, env := do(t, h, http.MethodGet, "/api/analyze?direction=export&amountUSD=250000&targetDate=2025-12-31", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var res models.AnalysisResult
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, models.DirectionExport, res.Direction)
	assert.Equal(t, 250000.0, res.AmountUSD)
	assert.Equal(t, "2025-07-17", res.StartDate)
	assert.Equal(t, "2025-12-31", res.TargetDate)
	assert.Equal(t, 1353.0, res.CurrentRate)
	assert.Equal(t, 0.65, res.Probabilities[models.ScenarioDown])
	assert.Equal(t, models.StrategySellForward, res.StrategyCode)
	assert.NotEmpty(t, res.ID)
}

func TestAnalyzeJSONBodyWithDefaults(t *testing.T) {
	t.Parallel()

	h := newTestServer(t)
	rec, env := do(t, h, http.MethodPost, "/api/analyze", `{"direction":"import"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res models.AnalysisResult
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, 1000000.0, res.AmountUSD)
	assert.Equal(t, "2025-10-15", res.TargetDate)
	assert.Equal(t, 0.35, res.Probabilities[models.ScenarioUp])
	assert.Equal(t, models.StrategyBuySpotRebuyDip, res.StrategyCode)
}

func TestAnalyzePastTarget(t *testing.T) {
	t.Parallel()

	h := newTestServer(t)
	rec, env := do(t, h, http.MethodGet, "/api/analyze?direction=import&targetDate=2025-07-01", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var res models.AnalysisResult
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, 1.0, res.Probabilities[models.ScenarioFlat])
	assert.Equal(t, models.StrategyMonitor, res.StrategyCode)
}

func TestAnalyzeValidation(t *testing.T) {
	t.Parallel()

	h := newTestServer(t)
	cases := []struct {
		name  string
		query string
		field string
		code  string
	}{
		{"missing direction", "", "direction", "ERR_REQUIRED"},
		{"bad direction", "direction=barter", "direction", "ERR_ONEOF"},
		{"negative amount", "direction=export&amountUSD=-10", "amountUSD", "ERR_GT"},
		{"bad date", "direction=export&targetDate=31-12-2025", "targetDate", "ERR_DATETIME"},
	}

	for _, tc := range cases {
		rec, env := do(t, h, http.MethodGet, "/api/analyze?"+tc.query, "")
		require.Equal(t, http.StatusBadRequest, rec.Code, tc.name)

		var errs []xhttp.ValidationError
		require.NoError(t, json.Unmarshal(env.Data, &errs), tc.name)
		require.NotEmpty(t, errs, tc.name)
		assert.Equal(t, tc.field, errs[0].Field, tc.name)
		assert.Equal(t, tc.code, errs[0].Code, tc.name)
	}
}

func TestNewsDefaultsToAsOfDate(t *testing.T) {
	t.Parallel()

	h := newTestServer(t)
	rec, env := do(t, h, http.MethodGet, "/api/news", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var res models.NewsResult
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, "2025-07-17", res.Date)
	assert.Len(t, res.Items, 3)
	assert.Equal(t, 0.35, res.DownProbability)
	assert.Equal(t, 0.65, res.UpProbability)
	assert.Equal(t, models.LabelNegative, res.Label)
}

func TestNewsUnknownDateIsEmpty(t *testing.T) {
	t.Parallel()

	h := newTestServer(t)
	rec, env := do(t, h, http.MethodGet, "/api/news?date=2025-06-30", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var res models.NewsResult
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Empty(t, res.Items)
	assert.Equal(t, models.LabelNeutral, res.Label)
}

func TestNewsAfterAsOfIsRejected(t *testing.T) {
	t.Parallel()

	h := newTestServer(t)
	rec, env := do(t, h, http.MethodGet, "/api/news?date=2025-07-18", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errs []xhttp.AppError
	require.NoError(t, json.Unmarshal(env.Data, &errs))
	require.Len(t, errs, 1)
	assert.Equal(t, "ERR_INVALID_INPUT", errs[0].Code)
	assert.Equal(t, "date", errs[0].Field)
}

func TestPagesAndHome(t *testing.T) {
	t.Parallel()

	h := newTestServer(t)

	rec, env := do(t, h, http.MethodGet, "/api/pages/analysis", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var nav models.Navigation
	require.NoError(t, json.Unmarshal(env.Data, &nav))
	assert.Equal(t, models.PageHome, nav.Prev.Page)
	assert.Equal(t, models.PageNews, nav.Next.Page)

	rec, _ = do(t, h, http.MethodGet, "/api/pages/settings", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, env = do(t, h, http.MethodGet, "/api/home", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var home models.HomeResult
	require.NoError(t, json.Unmarshal(env.Data, &home))
	assert.Len(t, home.Pages, 3)
	assert.Equal(t, 1353.0, home.Quote.Rate)
}

func TestRate(t *testing.T) {
	t.Parallel()

	h := newTestServer(t)
	rec, env := do(t, h, http.MethodGet, "/api/rate", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "private, max-age=15", rec.Header().Get("Cache-Control"))

	var q models.RateQuote
	require.NoError(t, json.Unmarshal(env.Data, &q))
	assert.Equal(t, "USD/KRW", q.Pair)
	assert.Equal(t, 1396.0, q.DayHigh)
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	rec, env := do(t, newTestServer(t), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, http.StatusOK, env.Status)
}
