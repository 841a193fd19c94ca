package api

import (
	"errors"
	"time"

	"FxRisk/internal/domain/models"
	"FxRisk/internal/service/metrics"
	"FxRisk/internal/usecase"
	xhttp "FxRisk/pkg/http"
	applogger "FxRisk/pkg/logger"
	xutil "FxRisk/pkg/util"

	"github.com/labstack/echo/v4"
)

// DashboardEchoHandler serves the dashboard screens over Echo.
type DashboardEchoHandler struct {
	logger   *applogger.Logger
	analysis *usecase.RiskAnalysisUseCase
	news     *usecase.NewsUseCase
	nav      *usecase.NavigationUseCase
	now      func() time.Time
}

func NewDashboardEchoHandler(
	logger *applogger.Logger,
	analysis *usecase.RiskAnalysisUseCase,
	news *usecase.NewsUseCase,
	nav *usecase.NavigationUseCase,
) *DashboardEchoHandler {
	metrics.Register()
	return &DashboardEchoHandler{
		logger:   logger,
		analysis: analysis,
		news:     news,
		nav:      nav,
		now:      time.Now,
	}
}

func (h *DashboardEchoHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/home", h.Home)
	g.GET("/pages/:page", h.Page)
	g.GET("/rate", h.Rate)
	g.GET("/analyze", h.Analyze)
	g.POST("/analyze", h.Analyze)
	g.GET("/news", h.News)
}

func (h *DashboardEchoHandler) Home(c echo.Context) error {
	defer observe("home", time.Now())
	res, err := h.nav.Home(c.Request().Context())
	if err != nil {
		return h.fail(c, "home", err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *DashboardEchoHandler) Page(c echo.Context) error {
	nav, err := h.nav.Page(models.Page(c.Param("page")))
	if err != nil {
		metrics.EndpointErrors.WithLabelValues("page", "not_found").Inc()
		return xhttp.AppErrorResponse(c, xhttp.NotFoundError(err.Error()).WithParam("page", c.Param("page")))
	}
	return xhttp.SuccessResponse(c, nav)
}

func (h *DashboardEchoHandler) Rate(c echo.Context) error {
	q, err := h.nav.Quote(c.Request().Context())
	if err != nil {
		return h.fail(c, "rate", err)
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=15")
	return xhttp.SuccessResponse(c, q)
}

func (h *DashboardEchoHandler) Analyze(c echo.Context) error {
	defer observe("analyze", time.Now())
	req := &models.AnalyzeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		metrics.EndpointErrors.WithLabelValues("analyze", "validation").Inc()
		return xhttp.BadRequestResponse(c, verr)
	}

	today := xutil.Midnight(h.now())
	start := xhttp.ParseDateDefault(req.StartDate, today)
	target := xhttp.ParseDateDefault(req.TargetDate, start.AddDate(0, 0, 90))

	res, err := h.analysis.Analyze(c.Request().Context(), usecase.AnalyzeParams{
		Direction:  models.Direction(req.Direction),
		AmountUSD:  req.AmountUSD,
		StartDate:  start,
		TargetDate: target,
	})
	if err != nil {
		return h.fail(c, "analyze", err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *DashboardEchoHandler) News(c echo.Context) error {
	defer observe("news", time.Now())
	req := &models.NewsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		metrics.EndpointErrors.WithLabelValues("news", "validation").Inc()
		return xhttp.BadRequestResponse(c, verr)
	}

	date := xhttp.ParseDateDefault(req.Date, h.news.AsOf())
	res, err := h.news.News(c.Request().Context(), date)
	if err != nil {
		return h.fail(c, "news", err)
	}
	return xhttp.SuccessResponse(c, res)
}

// fail maps domain input errors to 400 and everything else to 500.
func (h *DashboardEchoHandler) fail(c echo.Context, endpoint string, err error) error {
	var ie *models.InputError
	if errors.As(err, &ie) {
		metrics.EndpointErrors.WithLabelValues(endpoint, "invalid_input").Inc()
		return xhttp.AppErrorResponse(c, xhttp.InvalidInputError(ie.Field, ie))
	}
	if errors.Is(err, models.ErrInvalidInput) {
		metrics.EndpointErrors.WithLabelValues(endpoint, "invalid_input").Inc()
		return xhttp.AppErrorResponse(c, xhttp.InvalidInputError("", err))
	}
	metrics.EndpointErrors.WithLabelValues(endpoint, "internal").Inc()
	h.logger.Error(endpoint+" usecase error", applogger.Error(err))
	return xhttp.AppErrorResponse(c, err)
}

func observe(endpoint string, start time.Time) {
	metrics.EndpointLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}
