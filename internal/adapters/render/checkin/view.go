package checkin

import (
	"fmt"
	"strings"

	"github.com/amdox/moodtrack/internal/application"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	// Name is the raw name as entered; the alert block addresses the
	// person, not the hash. It is never persisted.
	Name string
}

func renderView(result application.SessionResult, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Mood Check-In"),
		s.mood.Render(fmt.Sprintf("Mood detected: %s", strings.ToUpper(result.Mood))),
		s.quote.Render(fmt.Sprintf("Inspiration: %s", result.Quote)),
		s.task.Render(fmt.Sprintf("Recommended Task: %s", result.Recommendation)),
	}

	if result.MoodDefaulted {
		lines = append(lines, s.note.Render("mood detection was inconclusive; defaulted to neutral"))
	}
	if result.HistorySkipped {
		lines = append(lines, s.note.Render("mood history unreadable; burnout check skipped"))
	}

	if result.AlertRaised {
		name := opts.Name
		if name == "" {
			name = result.UserHash
		}
		lines = append(lines,
			s.warning.Render(fmt.Sprintf("[ALERT] Prolonged stress or burnout detected for %s!", name)),
			s.action.Render("ACTION: Notify HR for counseling or task adjustments."),
		)
	}

	lines = append(lines, s.footer.Render(fmt.Sprintf("Recorded for user %s", result.UserHash)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
