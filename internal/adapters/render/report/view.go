package report

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/amdox/moodtrack/internal/application"
	"github.com/charmbracelet/lipgloss"
)

const (
	chartWidth  = 48
	chartHeight = 10
)

type styles struct {
	title   lipgloss.Style
	bar     lipgloss.Style
	detail  lipgloss.Style
	warning lipgloss.Style
	ok      lipgloss.Style
	empty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		bar:     lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
		detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		ok:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		empty:   lipgloss.NewStyle().Faint(true),
	}
}

// Render produces the team mood analytics view: a frequency bar chart over
// raw labels plus the morale summary.
func Render(teamReport application.TeamReport) (string, error) {
	s := newStyles()

	if teamReport.TotalRecords == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			s.title.Render("Team Mood Analytics"),
			s.empty.Render("No data found."),
		), nil
	}

	chart := barchart.New(chartWidth, chartHeight)
	for _, count := range teamReport.MoodCounts {
		chart.Push(barchart.BarData{
			Label: count.Label,
			Values: []barchart.BarValue{
				{Name: count.Label, Value: float64(count.Count), Style: s.bar},
			},
		})
	}
	chart.Draw()

	recommendation := s.ok.Render("Recommendation: Morale is stable.")
	if teamReport.CheckupAdvised {
		recommendation = s.warning.Render("Recommendation: Checkup on employees and review workloads.")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.title.Render("Team Mood Analytics"),
		chart.View(),
		s.detail.Render(fmt.Sprintf("Total Observations: %d", teamReport.TotalRecords)),
		s.detail.Render(fmt.Sprintf("Negative Entries: %d", teamReport.NegativeRecords)),
		s.detail.Render(fmt.Sprintf("Negative Morale: %.1f%%", teamReport.NegativeMorale)),
		recommendation,
	), nil
}
