package ports

import "github.com/amdox/moodtrack/internal/domain"

// QuoteLibrary picks a supportive quote aligned with a mood category.
type QuoteLibrary interface {
	Pick(category domain.MoodCategory) (string, error)
}
