package analytics

import (
	"fmt"
	"regexp"
	"strings"

	"TradeLite/internal/domain/models"
)

// Fixed financial lexicons. These lists are part of the service contract:
// results must stay reproducible, so do not reorder or "improve" them.
var positiveKeywords = []string{
	"bullish", "uptrend", "growth", "profit", "gain", "outperform",
	"buy", "strong", "positive", "up", "rise", "rising", "rally",
	"opportunity", "optimistic", "confident", "exceed", "beat",
	"momentum", "recovery", "upgrade", "success", "improve",
}

var negativeKeywords = []string{
	"bearish", "downtrend", "decline", "loss", "risk", "underperform",
	"sell", "weak", "negative", "down", "fall", "falling", "drop",
	"threat", "pessimistic", "concerned", "miss", "below",
	"slowdown", "recession", "downgrade", "failure", "worsen",
}

var (
	positivePattern = compileLexicon(positiveKeywords)
	negativePattern = compileLexicon(negativeKeywords)
)

func compileLexicon(terms []string) *regexp.Regexp {
	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// AnalyzeSentiment scores free text by counting whole-word matches against
// the positive and negative lexicons. A term occurring N times contributes
// N to its count. The score is (pos-neg)/(pos+neg); categories follow the
// +/-0.25 thresholds, with the zero-keyword case neutral.
func AnalyzeSentiment(text string) models.SentimentResult {
	lower := strings.ToLower(text)

	positiveCount := len(positivePattern.FindAllStringIndex(lower, -1))
	negativeCount := len(negativePattern.FindAllStringIndex(lower, -1))

	total := positiveCount + negativeCount
	if total == 0 {
		return models.SentimentResult{
			Category:    models.SentimentNeutral,
			Score:       0.0,
			Explanation: "No clear sentiment indicators found in the text.",
		}
	}

	score := float64(positiveCount-negativeCount) / float64(total)

	switch {
	case score > 0.25:
		return models.SentimentResult{
			Category: models.SentimentPositive,
			Score:    score,
			Explanation: fmt.Sprintf(
				"The text contains more positive financial indicators (%d) than negative ones (%d).",
				positiveCount, negativeCount),
		}
	case score < -0.25:
		return models.SentimentResult{
			Category: models.SentimentNegative,
			Score:    score,
			Explanation: fmt.Sprintf(
				"The text contains more negative financial indicators (%d) than positive ones (%d).",
				negativeCount, positiveCount),
		}
	default:
		return models.SentimentResult{
			Category: models.SentimentNeutral,
			Score:    score,
			Explanation: fmt.Sprintf(
				"The text contains a balanced mix of positive (%d) and negative (%d) financial indicators.",
				positiveCount, negativeCount),
		}
	}
}
