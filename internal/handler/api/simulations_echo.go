package api

import (
	"errors"
	"strconv"
	"time"

	"TradeLite/internal/domain/models"
	"TradeLite/internal/service/metrics"
	"TradeLite/internal/service/ratelimit"
	"TradeLite/internal/services/market"
	"TradeLite/pkg/cache"
	xhttp "TradeLite/pkg/http"
	xlogger "TradeLite/pkg/logger"

	"github.com/labstack/echo/v4"
)

// simulationTTL bounds how long a generated simulation stays retrievable.
const simulationTTL = time.Hour

// mockListing holds the value pools the listing endpoint samples from.
var (
	listingAssets     = []string{"BTC", "ETH", "AAPL", "MSFT", "TSLA"}
	listingStrategies = []string{"sma_crossover", "ema_crossover", "macd", "rsi", "bollinger"}
	listingTimeframes = []int{7, 14, 30, 60, 90}
)

// SimulationsEchoHandler serves simulation creation and retrieval. Created
// simulations live only in the cache; retrieval after expiry is a 404.
type SimulationsEchoHandler struct {
	logger    *xlogger.Logger
	generator *market.Generator
	cache     cache.Service
	limiter   *ratelimit.Limiter
}

func NewSimulationsEchoHandler(logger *xlogger.Logger, generator *market.Generator, cacheSvc cache.Service, limiter *ratelimit.Limiter) *SimulationsEchoHandler {
	return &SimulationsEchoHandler{logger: logger, generator: generator, cache: cacheSvc, limiter: limiter}
}

func (h *SimulationsEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/simulations")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
}

func (h *SimulationsEchoHandler) Create(c echo.Context) error {
	start := time.Now()
	if !h.limiter.Allow(c.RealIP()+":simulations", 20, 5) {
		return xhttp.TooManyRequestsResponse(c)
	}

	req := &models.SimulationCreateRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	result, err := h.generator.Generate(req.Asset, req.Strategy, req.TimeframeDays, req.InitialCapital)
	if err != nil {
		metrics.EndpointErrors.WithLabelValues("simulations_create").Inc()
		h.logger.Error("simulation generation error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError(err.Error()).WithError(err))
	}

	key := cache.GenerateKey("simulation", result.ID)
	if err := h.cache.Set(c.Request().Context(), key, result, simulationTTL); err != nil {
		h.logger.Warn("simulation cache write failed", xlogger.String("id", result.ID), xlogger.Error(err))
	}

	metrics.EndpointLatency.WithLabelValues("simulations_create").Observe(time.Since(start).Seconds())
	return xhttp.CreatedResponse(c, result)
}

func (h *SimulationsEchoHandler) Get(c echo.Context) error {
	id := c.Param("id")
	key := cache.GenerateKey("simulation", id)

	var result models.SimulationResult
	err := h.cache.Get(c.Request().Context(), key, &result)
	switch {
	case err == nil:
		metrics.CacheHits.WithLabelValues("simulation").Inc()
		return xhttp.SuccessResponse(c, result)
	case errors.Is(err, cache.ErrCacheMiss):
		metrics.CacheMisses.WithLabelValues("simulation").Inc()
		return xhttp.AppErrorResponse(c, xhttp.NotFoundError("Simulation not found"))
	default:
		metrics.EndpointErrors.WithLabelValues("simulations_get").Inc()
		h.logger.Error("simulation cache read error", xlogger.String("id", id), xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}
}

// List returns freshly generated example simulations. There is no persistent
// store; the listing exists so clients have populated data to render.
func (h *SimulationsEchoHandler) List(c echo.Context) error {
	limit := 5
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n < limit {
			limit = n
		}
	}

	results := make([]models.SimulationResult, 0, limit)
	for i := 0; i < limit; i++ {
		result, err := h.generator.Generate(
			listingAssets[h.generator.Intn(len(listingAssets))],
			listingStrategies[h.generator.Intn(len(listingStrategies))],
			listingTimeframes[h.generator.Intn(len(listingTimeframes))],
			10000,
		)
		if err != nil {
			metrics.EndpointErrors.WithLabelValues("simulations_list").Inc()
			h.logger.Error("simulation listing error", xlogger.Error(err))
			return xhttp.InternalServerErrorResponse(c)
		}
		results = append(results, result)
	}
	return xhttp.SuccessResponse(c, results)
}
