package analytics

import (
	"testing"

	"TradeLite/internal/domain/models"
)

func TestAnalyzeSentimentNoKeywords(t *testing.T) {
	res := AnalyzeSentiment("the quarterly report was published on schedule")

	if res.Category != models.SentimentNeutral {
		t.Fatalf("expected neutral, got %s", res.Category)
	}
	if res.Score != 0 {
		t.Fatalf("expected zero score, got %v", res.Score)
	}
	if res.Explanation != "No clear sentiment indicators found in the text." {
		t.Fatalf("unexpected explanation %q", res.Explanation)
	}
}

func TestAnalyzeSentimentPositive(t *testing.T) {
	res := AnalyzeSentiment("Bullish rally with strong momentum")

	if res.Category != models.SentimentPositive {
		t.Fatalf("expected positive, got %s", res.Category)
	}
	if res.Score != 1 {
		t.Fatalf("expected score 1, got %v", res.Score)
	}
}

func TestAnalyzeSentimentNegative(t *testing.T) {
	res := AnalyzeSentiment("bearish decline, heavy loss and rising risk")

	// 4 negative vs 1 positive ("rising"): score -0.6.
	if res.Category != models.SentimentNegative {
		t.Fatalf("expected negative, got %s", res.Category)
	}
	if res.Score >= -0.25 {
		t.Fatalf("expected score below -0.25, got %v", res.Score)
	}
}

func TestAnalyzeSentimentCountsOccurrences(t *testing.T) {
	// "up" three times and "down" once: (3-1)/4 = 0.5.
	res := AnalyzeSentiment("up up up down")

	if res.Category != models.SentimentPositive {
		t.Fatalf("expected positive, got %s", res.Category)
	}
	if res.Score != 0.5 {
		t.Fatalf("expected score 0.5, got %v", res.Score)
	}
}

func TestAnalyzeSentimentBalanced(t *testing.T) {
	res := AnalyzeSentiment("prices went up then down")

	if res.Category != models.SentimentNeutral {
		t.Fatalf("expected neutral, got %s", res.Category)
	}
	if res.Score != 0 {
		t.Fatalf("expected zero score, got %v", res.Score)
	}
	if res.Explanation != "The text contains a balanced mix of positive (1) and negative (1) financial indicators." {
		t.Fatalf("unexpected explanation %q", res.Explanation)
	}
}

func TestAnalyzeSentimentWholeWordsOnly(t *testing.T) {
	// "uptrend" must count once as itself, not also as "up"; "gains" must
	// not match the "gain" lexicon entry.
	res := AnalyzeSentiment("uptrend gains")

	if res.Category != models.SentimentPositive {
		t.Fatalf("expected positive, got %s", res.Category)
	}
	if res.Score != 1 {
		t.Fatalf("expected score 1, got %v", res.Score)
	}
	if res.Explanation != "The text contains more positive financial indicators (1) than negative ones (0)." {
		t.Fatalf("unexpected explanation %q", res.Explanation)
	}
}

func TestAnalyzeSentimentCaseInsensitive(t *testing.T) {
	res := AnalyzeSentiment("STRONG GROWTH")

	if res.Category != models.SentimentPositive {
		t.Fatalf("expected positive, got %s", res.Category)
	}
}
