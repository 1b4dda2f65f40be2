package api

import (
	"errors"
	"strings"

	models "MarketMood/internal/domain/models"
	domrepo "MarketMood/internal/domain/repository"
	"MarketMood/internal/usecase"
	xhttp "MarketMood/pkg/http"
	xlogger "MarketMood/pkg/logger"

	"github.com/labstack/echo/v4"
)

// MoodsEchoHandler exposes the aggregation pipeline over HTTP.
type MoodsEchoHandler struct {
	logger    *xlogger.Logger
	agg       *usecase.MoodAggregator
	headlines *usecase.HeadlineAnalyzer
	store     domrepo.MoodStore
	live      *LiveHub
}

func NewMoodsEchoHandler(logger *xlogger.Logger, agg *usecase.MoodAggregator, headlines *usecase.HeadlineAnalyzer, store domrepo.MoodStore, live *LiveHub) *MoodsEchoHandler {
	return &MoodsEchoHandler{logger: logger, agg: agg, headlines: headlines, store: store, live: live}
}

func (h *MoodsEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/stocks", h.Stocks)
	g.GET("/moods", h.Moods)
	g.GET("/moods/:symbol/history", h.History)
	g.GET("/news/:symbol", h.News)
	g.GET("/sentiment/:symbol", h.Sentiment)
	g.GET("/live", h.Live)
}

// Stocks returns the symbol allow-list.
func (h *MoodsEchoHandler) Stocks(c echo.Context) error {
	return xhttp.SuccessResponse(c, models.NasdaqSymbols)
}

// Moods returns fused daily records for a symbol.
func (h *MoodsEchoHandler) Moods(c echo.Context) error {
	req := &models.MoodsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	moods, err := h.agg.Aggregate(c.Request().Context(), strings.ToUpper(req.Symbol), req.Days)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidSymbol) {
			return xhttp.AppErrorResponse(c, xhttp.BadRequestError("Invalid NASDAQ symbol"))
		}
		h.logger.Error("moods usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, moods)
}

// History returns the most recent stored records for a symbol
// straight from the durable store, without touching upstream providers.
func (h *MoodsEchoHandler) History(c echo.Context) error {
	req := &models.MoodHistoryRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	symbol := strings.ToUpper(req.Symbol)
	if !models.IsAllowedSymbol(symbol) {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError("Invalid NASDAQ symbol"))
	}

	moods, err := h.store.Recent(c.Request().Context(), symbol, req.Days)
	if err != nil {
		h.logger.Error("mood history error", xlogger.Error(err), xlogger.String("symbol", symbol))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, moods)
}

// News returns scraped headlines with a per-headline sentiment breakdown.
func (h *MoodsEchoHandler) News(c echo.Context) error {
	symbol := strings.ToUpper(c.Param("symbol"))

	news, err := h.headlines.Analyze(c.Request().Context(), symbol)
	if err != nil {
		return h.headlineError(c, err)
	}
	return xhttp.SuccessResponse(c, news)
}

// Sentiment returns the overall scraped-news sentiment for a symbol.
func (h *MoodsEchoHandler) Sentiment(c echo.Context) error {
	symbol := strings.ToUpper(c.Param("symbol"))

	overall, err := h.headlines.Overall(c.Request().Context(), symbol)
	if err != nil {
		return h.headlineError(c, err)
	}
	return xhttp.SuccessResponse(c, overall)
}

// Live upgrades to a WebSocket pushing freshly computed moods.
func (h *MoodsEchoHandler) Live(c echo.Context) error {
	return h.live.Serve(c)
}

func (h *MoodsEchoHandler) headlineError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidSymbol):
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError("Invalid NASDAQ symbol"))
	case errors.Is(err, usecase.ErrNoHeadlines):
		return xhttp.AppErrorResponse(c, xhttp.NotFoundError("No news found"))
	default:
		h.logger.Error("headline usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.UpstreamError("Scraping failed").WithError(err))
	}
}
