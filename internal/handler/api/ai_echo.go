package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"TradeLite/internal/domain/models"
	"TradeLite/internal/service/metrics"
	"TradeLite/internal/service/ratelimit"
	"TradeLite/internal/services/analytics"
	"TradeLite/internal/services/feedback"
	"TradeLite/pkg/cache"
	xhttp "TradeLite/pkg/http"
	xlogger "TradeLite/pkg/logger"

	"github.com/labstack/echo/v4"
)

// aiCacheTTL is the memoization window for analysis results. The cache is an
// optimization only; a cold cache produces identical output.
const aiCacheTTL = time.Hour

// AIEchoHandler serves the analysis endpoints: sentiment scoring, anomaly
// detection and educational feedback.
type AIEchoHandler struct {
	logger   *xlogger.Logger
	cache    cache.Service
	feedback *feedback.Generator
	limiter  *ratelimit.Limiter
}

func NewAIEchoHandler(logger *xlogger.Logger, cacheSvc cache.Service, fb *feedback.Generator, limiter *ratelimit.Limiter) *AIEchoHandler {
	return &AIEchoHandler{logger: logger, cache: cacheSvc, feedback: fb, limiter: limiter}
}

func (h *AIEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/ai")
	g.POST("/sentiment", h.Sentiment)
	g.POST("/anomalies", h.Anomalies)
	g.POST("/feedback", h.Feedback)
}

func (h *AIEchoHandler) Sentiment(c echo.Context) error {
	start := time.Now()
	if !h.limiter.Allow(c.RealIP()+":ai", 30, 10) {
		return xhttp.TooManyRequestsResponse(c)
	}

	req := &models.SentimentRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	key := cache.GenerateKey("sentiment", cache.HashKey(req.Text))
	var cached models.SentimentResult
	if hit := h.lookup(c, "sentiment", key, &cached); hit {
		return xhttp.SuccessResponse(c, cached)
	}

	result := analytics.AnalyzeSentiment(req.Text)
	h.store(c, key, result)

	metrics.EndpointLatency.WithLabelValues("ai_sentiment").Observe(time.Since(start).Seconds())
	return xhttp.SuccessResponse(c, result)
}

func (h *AIEchoHandler) Anomalies(c echo.Context) error {
	start := time.Now()
	if !h.limiter.Allow(c.RealIP()+":ai", 30, 10) {
		return xhttp.TooManyRequestsResponse(c)
	}

	req := &models.AnomalyDetectRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	payload, _ := json.Marshal(req.Data)
	key := cache.GenerateKey("anomalies", fmt.Sprintf("%s-%d", cache.HashKey(string(payload)), req.WindowSize))
	var cached models.AnomalyReport
	if hit := h.lookup(c, "anomalies", key, &cached); hit {
		return xhttp.SuccessResponse(c, cached)
	}

	result := analytics.DetectAnomalies(req.Data, req.WindowSize)
	h.store(c, key, result)

	metrics.EndpointLatency.WithLabelValues("ai_anomalies").Observe(time.Since(start).Seconds())
	return xhttp.SuccessResponse(c, result)
}

func (h *AIEchoHandler) Feedback(c echo.Context) error {
	start := time.Now()
	if !h.limiter.Allow(c.RealIP()+":ai", 30, 10) {
		return xhttp.TooManyRequestsResponse(c)
	}

	req := &models.FeedbackRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	key := cache.GenerateKey("feedback", cache.HashKey(fmt.Sprintf("%s-%s-%d", req.Asset, req.Strategy, req.TimeframeDays)))
	var cached models.FeedbackResult
	if hit := h.lookup(c, "feedback", key, &cached); hit {
		return xhttp.SuccessResponse(c, cached)
	}

	result := h.feedback.Generate(c.Request().Context(), req.Asset, req.Strategy, req.TimeframeDays, req.Performance)
	h.store(c, key, result)

	metrics.EndpointLatency.WithLabelValues("ai_feedback").Observe(time.Since(start).Seconds())
	return xhttp.SuccessResponse(c, result)
}

// lookup reads key into dest and records hit/miss. Read errors other than a
// miss are logged and treated as a miss.
func (h *AIEchoHandler) lookup(c echo.Context, operation, key string, dest interface{}) bool {
	err := h.cache.Get(c.Request().Context(), key, dest)
	if err == nil {
		metrics.CacheHits.WithLabelValues(operation).Inc()
		return true
	}
	metrics.CacheMisses.WithLabelValues(operation).Inc()
	if !errors.Is(err, cache.ErrCacheMiss) {
		h.logger.Warn("cache read failed", xlogger.String("key", key), xlogger.Error(err))
	}
	return false
}

func (h *AIEchoHandler) store(c echo.Context, key string, value interface{}) {
	if err := h.cache.Set(c.Request().Context(), key, value, aiCacheTTL); err != nil {
		h.logger.Warn("cache write failed", xlogger.String("key", key), xlogger.Error(err))
	}
}
