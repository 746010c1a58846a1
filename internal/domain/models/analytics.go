package models

// Sentiment categories.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// AnomalyReport holds rolling z-scores for a series plus the indices whose
// score exceeds the threshold. Scores has one entry per input element;
// Anomalies is ascending and every listed index satisfies score > Threshold.
type AnomalyReport struct {
	Anomalies []int     `json:"anomalies"`
	Scores    []float64 `json:"scores"`
	Threshold float64   `json:"threshold"`
}

// SentimentResult is a lexicon-based sentiment classification.
// Score is in [-1, 1]; Category follows the +/-0.25 thresholds.
type SentimentResult struct {
	Category    string  `json:"sentiment"`
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
}
