package analytics

import (
	"math"

	"TradeLite/internal/domain/models"
)

// AnomalyThreshold is the fixed z-score above which a point is flagged.
// Not configurable per call.
const AnomalyThreshold = 3.0

// DetectAnomalies computes a rolling z-score for each point of the series
// against the trailing window of windowSize points (excluding the point
// itself) and flags points whose score exceeds AnomalyThreshold.
//
// Insufficient history is not an error: a series shorter than the window
// yields all-zero scores and no anomalies, and the first windowSize points
// always score 0. A zero-variance window also scores 0 rather than
// dividing by zero.
func DetectAnomalies(series []float64, windowSize int) models.AnomalyReport {
	report := models.AnomalyReport{
		Anomalies: []int{},
		Scores:    make([]float64, len(series)),
		Threshold: AnomalyThreshold,
	}

	if len(series) < windowSize {
		return report
	}

	for i := windowSize; i < len(series); i++ {
		window := series[i-windowSize : i]

		mean := 0.0
		for _, v := range window {
			mean += v
		}
		mean /= float64(windowSize)

		variance := 0.0
		for _, v := range window {
			d := v - mean
			variance += d * d
		}
		std := math.Sqrt(variance / float64(windowSize))

		if std == 0 {
			continue
		}

		score := math.Abs(series[i]-mean) / std
		report.Scores[i] = score

		if score > AnomalyThreshold {
			report.Anomalies = append(report.Anomalies, i)
		}
	}

	return report
}
