package feedback

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"TradeLite/internal/domain/models"
)

type stubCompleter struct {
	name    string
	content string
	err     error
	calls   int
}

func (s *stubCompleter) Name() string { return s.name }

func (s *stubCompleter) Complete(ctx context.Context, system, prompt string, temperature float64, maxTokens int) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.content, nil
}

func TestGenerateNoProvidersUsesTemplate(t *testing.T) {
	g := NewGenerator(nil, 0)

	res := g.Generate(context.Background(), "BTC", "sma_crossover", 30, models.PerformanceSummary{ROI: 20, FinalCapital: 12000})

	if !strings.Contains(res.Narrative, "Simple Moving Average (SMA) Crossover") {
		t.Fatalf("expected sma template narrative, got %q", res.Narrative)
	}
	if !strings.Contains(res.Narrative, "performed well") {
		t.Fatalf("expected high-roi sentence, got %q", res.Narrative)
	}
	if len(res.KeyPoints) == 0 || len(res.Suggestions) == 0 {
		t.Fatalf("expected template points and suggestions")
	}
}

func TestGenerateFallsThroughFailingProviders(t *testing.T) {
	first := &stubCompleter{name: "first", err: errors.New("boom")}
	second := &stubCompleter{name: "second", err: errors.New("boom")}
	g := NewGenerator(nil, 0, first, second)

	res := g.Generate(context.Background(), "ETH", "rsi", 14, models.PerformanceSummary{ROI: -5, FinalCapital: 9500})

	if first.calls != 1 || second.calls != 1 {
		t.Fatalf("expected both providers attempted, got %d/%d", first.calls, second.calls)
	}
	if !strings.Contains(res.Narrative, "Relative Strength Index (RSI)") {
		t.Fatalf("expected rsi template narrative, got %q", res.Narrative)
	}
	if !strings.Contains(res.Narrative, "negative ROI") {
		t.Fatalf("expected loss sentence, got %q", res.Narrative)
	}
}

func TestGenerateFirstSuccessShortCircuits(t *testing.T) {
	first := &stubCompleter{
		name:    "first",
		content: "A provider narrative.\n\nKey points:\n- from provider\n\nSuggestions:\n- also from provider",
	}
	second := &stubCompleter{name: "second", content: "unused"}
	g := NewGenerator(nil, 0, first, second)

	res := g.Generate(context.Background(), "BTC", "macd", 30, models.PerformanceSummary{ROI: 3, FinalCapital: 10300})

	if second.calls != 0 {
		t.Fatalf("expected second provider untouched, got %d calls", second.calls)
	}
	if res.Narrative != "A provider narrative." {
		t.Fatalf("unexpected narrative %q", res.Narrative)
	}
	if len(res.KeyPoints) != 1 || res.KeyPoints[0] != "from provider" {
		t.Fatalf("unexpected key points %v", res.KeyPoints)
	}
}

func TestGenerateUnknownStrategyGenericTemplate(t *testing.T) {
	g := NewGenerator(nil, 0)

	res := g.Generate(context.Background(), "AAPL", "hold_forever", 60, models.PerformanceSummary{ROI: 5, FinalCapital: 10500})

	if !strings.Contains(res.Narrative, "hold_forever strategy applied to AAPL over 60 days") {
		t.Fatalf("expected generic narrative, got %q", res.Narrative)
	}
	if !strings.Contains(res.Narrative, "moderate result") {
		t.Fatalf("expected moderate-roi sentence, got %q", res.Narrative)
	}
	if len(res.KeyPoints) != len(genericKeyPoints) {
		t.Fatalf("expected generic key points, got %v", res.KeyPoints)
	}
}

func TestGenerateProviderTimeout(t *testing.T) {
	slow := &stubCompleter{name: "slow", err: context.DeadlineExceeded}
	g := NewGenerator(nil, 10*time.Millisecond, slow)

	res := g.Generate(context.Background(), "BTC", "bollinger", 30, models.PerformanceSummary{ROI: 1, FinalCapital: 10100})

	if !strings.Contains(res.Narrative, "Bollinger Bands") {
		t.Fatalf("expected template fallback, got %q", res.Narrative)
	}
}

func TestTemplateFeedbackPerformanceTiers(t *testing.T) {
	cases := []struct {
		roi  float64
		want string
	}{
		{20, "performed well"},
		{5, "moderate result"},
		{0, "negative ROI"},
		{-10, "negative ROI"},
	}
	for _, tc := range cases {
		res := templateFeedback("BTC", "macd", 30, models.PerformanceSummary{ROI: tc.roi})
		if !strings.Contains(res.Narrative, tc.want) {
			t.Fatalf("roi %v: expected %q in %q", tc.roi, tc.want, res.Narrative)
		}
	}
}

func TestTemplateBankMatchesFixedText(t *testing.T) {
	res := templateFeedback("ETH", "bollinger", 30, models.PerformanceSummary{ROI: 5})

	if res.Suggestions[2] != "Consider using Bollinger Band %B or Bandwidth for additional insights" {
		t.Fatalf("unexpected bollinger suggestion %q", res.Suggestions[2])
	}
	if res.KeyPoints[0] != "Bollinger Bands adapt to market volatility by widening and narrowing" {
		t.Fatalf("unexpected bollinger key point %q", res.KeyPoints[0])
	}

	res = templateFeedback("BTC", "sma_crossover", 30, models.PerformanceSummary{ROI: 5})
	if res.Suggestions[0] != "Consider adding a confirmation indicator like volume or RSI" {
		t.Fatalf("unexpected sma suggestion %q", res.Suggestions[0])
	}
}

func TestBuildPromptContents(t *testing.T) {
	p := buildPrompt("ETH", "ema_crossover", 14, models.PerformanceSummary{ROI: 7.5, FinalCapital: 10750})

	for _, want := range []string{
		"Asset: ETH",
		"Exponential Moving Average Crossover",
		"Timeframe: 14 days",
		"ROI of 7.50%",
		"$10750.00",
	} {
		if !strings.Contains(p, want) {
			t.Fatalf("expected %q in prompt", want)
		}
	}
}
