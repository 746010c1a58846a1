package feedback

import (
	"fmt"

	"TradeLite/internal/domain/models"
)

const systemInstruction = "You are an educational assistant for trading simulations."

const (
	promptTemperature = 0.7
	promptMaxTokens   = 1000
)

// strategyDisplayNames maps strategy keys to readable names for prompts and
// templates. Unknown strategies keep their raw key.
var strategyDisplayNames = map[string]string{
	"sma_crossover": "Simple Moving Average Crossover",
	"ema_crossover": "Exponential Moving Average Crossover",
	"macd":          "Moving Average Convergence Divergence (MACD)",
	"rsi":           "Relative Strength Index (RSI)",
	"bollinger":     "Bollinger Bands",
}

func displayName(strategy string) string {
	if name, ok := strategyDisplayNames[strategy]; ok {
		return name
	}
	return strategy
}

// buildPrompt renders the provider prompt for one simulation.
func buildPrompt(asset, strategy string, timeframeDays int, perf models.PerformanceSummary) string {
	return fmt.Sprintf(`Generate educational feedback for a trading simulation with the following parameters:
- Asset: %s
- Strategy: %s
- Timeframe: %d days
- Performance: ROI of %.2f%%, Final capital: $%.2f

Provide detailed educational feedback explaining how this strategy works, what factors might have influenced the performance, and what the user could learn from this simulation. Include key points and improvement suggestions.

Format the response as:
1. Detailed feedback paragraph
2. List of 3-5 key points
3. List of 2-3 improvement suggestions

Remember this is for educational purposes only and not financial advice.`,
		asset, displayName(strategy), timeframeDays, perf.ROI, perf.FinalCapital)
}
