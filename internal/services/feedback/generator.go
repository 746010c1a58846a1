package feedback

import (
	"context"
	"time"

	"TradeLite/internal/domain/models"
	domsvc "TradeLite/internal/domain/service"
	"TradeLite/internal/service/metrics"
	applogger "TradeLite/pkg/logger"
)

// DefaultTierTimeout bounds each provider attempt so a hung provider cannot
// stall the fallback chain.
const DefaultTierTimeout = 8 * time.Second

// Generator produces educational feedback through a prioritized fallback
// chain: each configured language-model provider is attempted in order, any
// failure moves control strictly forward, and the static template bank is
// the terminal tier. No provider error ever reaches the caller.
type Generator struct {
	providers   []domsvc.TextCompleter
	tierTimeout time.Duration
	log         *applogger.Logger
}

// NewGenerator creates a feedback generator. Providers are attempted in the
// order given; an empty list goes straight to the template tier.
func NewGenerator(log *applogger.Logger, tierTimeout time.Duration, providers ...domsvc.TextCompleter) *Generator {
	if tierTimeout <= 0 {
		tierTimeout = DefaultTierTimeout
	}
	return &Generator{
		providers:   providers,
		tierTimeout: tierTimeout,
		log:         log,
	}
}

// Generate returns a well-formed FeedbackResult for every input. The outer
// recover exists only to guard against a defect in the template tier; under
// normal operation the template tier cannot fail.
func (g *Generator) Generate(ctx context.Context, asset, strategy string, timeframeDays int, perf models.PerformanceSummary) (result models.FeedbackResult) {
	defer func() {
		if r := recover(); r != nil {
			if g.log != nil {
				g.log.Error("feedback generation panic", applogger.Any("panic", r))
			}
			result = models.FeedbackResult{
				Narrative:   "Unable to generate feedback at this time. Please try again later.",
				KeyPoints:   []string{"System is currently experiencing issues."},
				Suggestions: []string{"Please try again later."},
			}
		}
	}()

	prompt := buildPrompt(asset, strategy, timeframeDays, perf)

	for _, p := range g.providers {
		content, err := g.complete(ctx, p, prompt)
		if err != nil {
			if g.log != nil {
				g.log.Warn("feedback provider unavailable",
					applogger.String("provider", p.Name()),
					applogger.Error(err),
				)
			}
			continue
		}
		if g.log != nil {
			g.log.Debug("feedback provider succeeded", applogger.String("provider", p.Name()))
		}
		metrics.FeedbackTier.WithLabelValues(p.Name()).Inc()
		return parseCompletion(content)
	}

	metrics.FeedbackTier.WithLabelValues("template").Inc()
	return templateFeedback(asset, strategy, timeframeDays, perf)
}

func (g *Generator) complete(ctx context.Context, p domsvc.TextCompleter, prompt string) (string, error) {
	tctx, cancel := context.WithTimeout(ctx, g.tierTimeout)
	defer cancel()
	return p.Complete(tctx, systemInstruction, prompt, promptTemperature, promptMaxTokens)
}
