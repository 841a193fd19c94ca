package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	applogger "FxRisk/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type denyAfter struct{ n int }

func (d *denyAfter) Allow(string) bool {
	d.n--
	return d.n >= 0
}

func serve(e *echo.Echo, method, path string, hdr map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.Use(RateLimit(&denyAfter{n: 2}))
	e.GET("/x", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/x", nil).Code)
	assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/x", nil).Code)
	rec := serve(e, http.MethodGet, "/x", nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":429`)
}

func TestRecoverLogsPanic(t *testing.T) {
	var buf bytes.Buffer
	l := applogger.NewWithWriter(&buf, zerolog.InfoLevel, "json", "")

	e := echo.New()
	e.Use(RequestLogging(l))
	e.Use(Recover(l))
	e.GET("/boom", func(echo.Context) error { panic("kaboom") })

	rec := serve(e, http.MethodGet, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), "panic recovered")
	assert.Contains(t, buf.String(), "kaboom")
	assert.Contains(t, buf.String(), `"status":500`)
}

func TestRequestLoggingWritesEchoErrors(t *testing.T) {
	var buf bytes.Buffer
	l := applogger.NewWithWriter(&buf, zerolog.InfoLevel, "json", "")

	e := echo.New()
	e.Use(RequestLogging(l))
	e.GET("/missing", func(echo.Context) error { return echo.ErrNotFound })

	rec := serve(e, http.MethodGet, "/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, buf.String(), `"status":404`)
}

func TestCORS(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.Use(CORS(CORSConfig{
		AllowOrigins: []string{"https://dash.example.com"},
		AllowMethods: []string{http.MethodGet},
	}))
	e.Any("/x", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := serve(e, http.MethodGet, "/x", map[string]string{echo.HeaderOrigin: "https://dash.example.com"})
	assert.Equal(t, "https://dash.example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, http.MethodGet, rec.Header().Get(echo.HeaderAccessControlAllowMethods))

	rec = serve(e, http.MethodGet, "/x", map[string]string{echo.HeaderOrigin: "https://evil.example.com"})
	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))

	rec = serve(e, http.MethodOptions, "/x", map[string]string{echo.HeaderOrigin: "https://dash.example.com"})
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMatchOrigin(t *testing.T) {
	t.Parallel()

	ok, wildcard := matchOrigin([]string{"*"}, "")
	assert.True(t, ok)
	assert.True(t, wildcard)

	ok, _ = matchOrigin(nil, "https://any")
	assert.True(t, ok)

	ok, _ = matchOrigin([]string{"https://a"}, "https://b")
	assert.False(t, ok)
}

func TestStatusClass(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2xx", statusClass(204))
	assert.Equal(t, "4xx", statusClass(429))
	assert.Equal(t, "5xx", statusClass(503))
	assert.Equal(t, "5xx", statusClass(0))
}
