package models

// FeedbackResult is structured educational feedback for one simulation.
// At most 5 key points and 3 suggestions; produced fresh per request.
type FeedbackResult struct {
	Narrative   string   `json:"feedback"`
	KeyPoints   []string `json:"key_points"`
	Suggestions []string `json:"improvement_suggestions"`
}
