package api

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"TradeLite/internal/domain/models"
	"TradeLite/internal/service/ratelimit"
	"TradeLite/internal/services/feedback"
	"TradeLite/internal/services/market"
	"TradeLite/pkg/cache"
	xhttp "TradeLite/pkg/http"
	applogger "TradeLite/pkg/logger"

	"github.com/labstack/echo/v4"
)

func testLogger(t *testing.T) *applogger.Logger {
	t.Helper()
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

func newTestServer(t *testing.T) (*echo.Echo, cache.Service) {
	t.Helper()
	log := testLogger(t)
	mem := cache.NewMemoryCache()
	t.Cleanup(func() { mem.Close() })

	limiter := ratelimit.New()
	gen := market.NewGenerator(rand.New(rand.NewSource(1)))
	fb := feedback.NewGenerator(log, 0)

	e := echo.New()
	for _, h := range []xhttp.Handler{
		NewSimulationsEchoHandler(log, gen, mem, limiter),
		NewAIEchoHandler(log, mem, fb, limiter),
	} {
		h.RegisterRoutes(e)
	}
	return e, mem
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func doJSONWithAuth(e *echo.Echo, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	req.Header.Set(echo.HeaderAuthorization, authorization)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	var env struct {
		Status  int             `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if dest != nil {
		if err := json.Unmarshal(env.Data, dest); err != nil {
			t.Fatalf("decode data: %v", err)
		}
	}
}

func TestCreateAndGetSimulation(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/simulations",
		`{"asset":"BTC","strategy":"sma_crossover","timeframe_days":30}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created models.SimulationResult
	decodeEnvelope(t, rec, &created)
	if created.ID == "" || len(created.Series) != 30 {
		t.Fatalf("unexpected simulation %+v", created)
	}
	if created.InitialCapital != 10000 {
		t.Fatalf("expected default capital 10000, got %v", created.InitialCapital)
	}

	rec = doJSON(e, http.MethodGet, "/api/simulations/"+created.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var fetched models.SimulationResult
	decodeEnvelope(t, rec, &fetched)
	if fetched.ID != created.ID || fetched.ROIPercent != created.ROIPercent {
		t.Fatalf("fetched simulation mismatch: %+v vs %+v", fetched, created)
	}
}

func TestGetSimulationNotFound(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/simulations/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCreateSimulationValidation(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/simulations", `{"asset":"BTC"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	rec = doJSON(e, http.MethodPost, "/api/simulations",
		`{"asset":"BTC","strategy":"rsi","timeframe_days":9999}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for out-of-range timeframe, got %d", rec.Code)
	}
}

func TestListSimulations(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/simulations?limit=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var listed []models.SimulationResult
	decodeEnvelope(t, rec, &listed)
	if len(listed) != 2 {
		t.Fatalf("expected 2 simulations, got %d", len(listed))
	}

	rec = doJSON(e, http.MethodGet, "/api/simulations", "")
	decodeEnvelope(t, rec, &listed)
	if len(listed) != 5 {
		t.Fatalf("expected capped listing of 5, got %d", len(listed))
	}
}

func TestSentimentEndpoint(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/ai/sentiment", `{"text":"bullish rally with strong momentum"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var res models.SentimentResult
	decodeEnvelope(t, rec, &res)
	if res.Category != models.SentimentPositive {
		t.Fatalf("expected positive, got %s", res.Category)
	}

	rec = doJSON(e, http.MethodPost, "/api/ai/sentiment", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing text, got %d", rec.Code)
	}
}

func TestSentimentMemoized(t *testing.T) {
	e, mem := newTestServer(t)

	body := `{"text":"growth and profit ahead"}`
	first := doJSON(e, http.MethodPost, "/api/ai/sentiment", body)
	if first.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", first.Code)
	}

	key := cache.GenerateKey("sentiment", cache.HashKey("growth and profit ahead"))
	var cached models.SentimentResult
	if err := mem.Get(context.Background(), key, &cached); err != nil {
		t.Fatalf("expected result cached under %q: %v", key, err)
	}

	second := doJSON(e, http.MethodPost, "/api/ai/sentiment", body)
	if second.Body.String() != first.Body.String() {
		t.Fatalf("expected identical memoized response")
	}
}

func TestAnomaliesEndpoint(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/ai/anomalies",
		`{"data":[1,2,1,2,1,100],"window_size":5}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var res models.AnomalyReport
	decodeEnvelope(t, rec, &res)
	if len(res.Anomalies) != 1 || res.Anomalies[0] != 5 {
		t.Fatalf("expected anomaly at 5, got %v", res.Anomalies)
	}

	rec = doJSON(e, http.MethodPost, "/api/ai/anomalies", `{"data":[]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty data, got %d", rec.Code)
	}
}

func TestAnomaliesDefaultWindow(t *testing.T) {
	e, _ := newTestServer(t)

	// Ten points with the default window of 20: degenerate all-zero report.
	rec := doJSON(e, http.MethodPost, "/api/ai/anomalies",
		`{"data":[1,2,3,4,5,6,7,8,9,10]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var res models.AnomalyReport
	decodeEnvelope(t, rec, &res)
	if len(res.Anomalies) != 0 {
		t.Fatalf("expected no anomalies, got %v", res.Anomalies)
	}
	if len(res.Scores) != 10 {
		t.Fatalf("expected 10 scores, got %d", len(res.Scores))
	}
}

func TestFeedbackEndpointTemplateTier(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/ai/feedback",
		`{"asset":"BTC","strategy":"sma_crossover","timeframe_days":30,"performance":{"roi":20,"final_capital":12000}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var res models.FeedbackResult
	decodeEnvelope(t, rec, &res)
	if !strings.Contains(res.Narrative, "Simple Moving Average (SMA) Crossover") {
		t.Fatalf("expected template narrative, got %q", res.Narrative)
	}
	if len(res.KeyPoints) == 0 || len(res.Suggestions) == 0 {
		t.Fatalf("expected key points and suggestions")
	}
}
