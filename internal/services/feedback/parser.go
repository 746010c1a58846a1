package feedback

import (
	"strings"

	"TradeLite/internal/domain/models"
)

const (
	maxKeyPoints   = 5
	maxSuggestions = 3
)

// Substituted when a provider response yields no usable items.
var defaultKeyPoints = []string{
	"Understanding market trends",
	"Risk management is essential",
	"Past performance is not indicative of future results",
}

var defaultSuggestions = []string{
	"Consider backtesting with different parameters",
	"Combine with other indicators for confirmation",
}

// parseCompletion extracts a FeedbackResult from free-form provider output.
// Sections are blank-line separated; a section mentioning "key point" feeds
// key points, one mentioning "improvement" or "suggestion" feeds
// suggestions, and the first section matching neither becomes the
// narrative. Within a matching section the lines after the heading become
// items, with any leading "- " bullet stripped.
func parseCompletion(content string) models.FeedbackResult {
	sections := strings.Split(content, "\n\n")

	var narrative string
	var keyPoints, suggestions []string

	for _, section := range sections {
		lowered := strings.ToLower(section)
		switch {
		case strings.Contains(lowered, "key point"):
			keyPoints = append(keyPoints, sectionItems(section)...)
		case strings.Contains(lowered, "improvement") || strings.Contains(lowered, "suggestion"):
			suggestions = append(suggestions, sectionItems(section)...)
		default:
			if narrative == "" {
				narrative = strings.TrimSpace(section)
			}
		}
	}

	if len(keyPoints) == 0 {
		keyPoints = append([]string(nil), defaultKeyPoints...)
	}
	if len(suggestions) == 0 {
		suggestions = append([]string(nil), defaultSuggestions...)
	}

	if len(keyPoints) > maxKeyPoints {
		keyPoints = keyPoints[:maxKeyPoints]
	}
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	return models.FeedbackResult{
		Narrative:   narrative,
		KeyPoints:   keyPoints,
		Suggestions: suggestions,
	}
}

// sectionItems returns the non-empty lines after the section heading,
// stripped of a leading bullet.
func sectionItems(section string) []string {
	lines := strings.Split(section, "\n")
	if len(lines) < 2 {
		return nil
	}

	items := make([]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "- ")
		line = strings.TrimSpace(line)
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}
