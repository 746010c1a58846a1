package market

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"TradeLite/internal/domain/models"

	"github.com/google/uuid"
)

// AssetProfile is the starting price and per-step volatility for an asset.
type AssetProfile struct {
	StartPrice float64
	Volatility float64
}

// PerformanceRange bounds the uniform ROI draw for a strategy.
type PerformanceRange struct {
	Min float64
	Max float64
}

// Parameter tables. Unknown keys fall back to the explicit defaults below;
// keep these as lookup tables rather than conditional chains.
var assetProfiles = map[string]AssetProfile{
	"BTC": {StartPrice: 30000, Volatility: 0.03},
	"ETH": {StartPrice: 2000, Volatility: 0.04},
}

var defaultAssetProfile = AssetProfile{StartPrice: 100, Volatility: 0.02}

var strategyPerformance = map[string]PerformanceRange{
	"sma_crossover": {Min: -0.10, Max: 0.30},
	"ema_crossover": {Min: -0.05, Max: 0.25},
	"macd":          {Min: -0.15, Max: 0.35},
	"rsi":           {Min: -0.20, Max: 0.40},
	"bollinger":     {Min: -0.10, Max: 0.30},
}

// Degenerate range: unknown strategies get a fixed moderate positive return.
var defaultPerformance = PerformanceRange{Min: 0.10, Max: 0.10}

const (
	smaWindow  = 20
	emaWindow  = 10
	priceFloor = 0.1
)

// Generator produces synthetic daily price paths via a bounded random walk.
// Randomness is injected so simulations are reproducible under test. A single
// Generator is shared across request goroutines; the mutex serializes access
// to the underlying source, which is not safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator creates a generator around the given random source.
// A nil source gets seeded from the wall clock.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Generate builds a SimulationResult: a timeframeDays-long price series with
// rolling indicator windows, and a final ROI drawn from the strategy's
// performance range.
//
// By contract, sma20 is the sum of the prior 19 stored prices divided by 20
// (present from day 20) and ema10 the sum of the prior 9 divided by 10
// (present from day 10). Neither is a true exponential average.
func (g *Generator) Generate(asset, strategy string, timeframeDays int, initialCapital float64) (models.SimulationResult, error) {
	if timeframeDays <= 0 {
		return models.SimulationResult{}, fmt.Errorf("market: timeframe days must be positive, got %d", timeframeDays)
	}
	if initialCapital <= 0 {
		return models.SimulationResult{}, fmt.Errorf("market: initial capital must be positive, got %v", initialCapital)
	}

	profile, ok := assetProfiles[asset]
	if !ok {
		profile = defaultAssetProfile
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	series := make([]models.PricePoint, 0, timeframeDays)
	prices := make([]float64, 0, timeframeDays)
	current := profile.StartPrice

	for i := 0; i < timeframeDays; i++ {
		change := current * profile.Volatility * (g.rng.Float64() - 0.5)
		current = math.Max(current+change, priceFloor)

		point := models.PricePoint{
			Day:   i + 1,
			Price: round2(current),
		}

		if i >= smaWindow-1 {
			point.SMA20 = trailingMean(prices, i, smaWindow)
		}
		if i >= emaWindow-1 {
			point.EMA10 = trailingMean(prices, i, emaWindow)
		}

		series = append(series, point)
		prices = append(prices, point.Price)
	}

	perfRange, ok := strategyPerformance[strategy]
	if !ok {
		perfRange = defaultPerformance
	}
	performance := perfRange.Min + g.rng.Float64()*(perfRange.Max-perfRange.Min)

	return models.SimulationResult{
		ID:             uuid.NewString(),
		Asset:          asset,
		Strategy:       strategy,
		TimeframeDays:  timeframeDays,
		InitialCapital: initialCapital,
		FinalCapital:   round2(initialCapital * (1 + performance)),
		ROIPercent:     round2(performance * 100),
		Series:         series,
		CreatedAt:      time.Now().UTC(),
	}, nil
}

// Intn draws a uniform int in [0,n) from the generator's source, serialized
// the same way Generate is.
func (g *Generator) Intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Intn(n)
}

// trailingMean sums prices[i-window+1:i] and divides by window. The window
// deliberately excludes the current point; do not widen it.
func trailingMean(prices []float64, i, window int) *float64 {
	sum := 0.0
	for j := i - window + 1; j < i; j++ {
		sum += prices[j]
	}
	v := round2(sum / float64(window))
	return &v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
