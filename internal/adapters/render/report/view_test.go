package report

import (
	"testing"

	"github.com/amdox/moodtrack/internal/application"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderEmptyReport(t *testing.T) {
	output, err := Render(application.TeamReport{})
	require.NoError(t, err)
	assert.Contains(t, output, "Team Mood Analytics")
	assert.Contains(t, output, "No data found.")
}

func TestRenderReportSummary(t *testing.T) {
	output, err := Render(application.TeamReport{
		TotalRecords: 6,
		MoodCounts: []application.MoodCount{
			{Label: "happy", Count: 3},
			{Label: "stressed", Count: 2},
			{Label: "tired", Count: 1},
		},
		NegativeRecords: 3,
		NegativeMorale:  50.0,
		CheckupAdvised:  true,
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Total Observations: 6")
	assert.Contains(t, output, "Negative Entries: 3")
	assert.Contains(t, output, "Negative Morale: 50.0%")
	assert.Contains(t, output, "Checkup on employees and review workloads.")
}

func TestRenderReportStableMorale(t *testing.T) {
	output, err := Render(application.TeamReport{
		TotalRecords:    4,
		MoodCounts:      []application.MoodCount{{Label: "happy", Count: 4}},
		NegativeRecords: 0,
		NegativeMorale:  0,
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Negative Morale: 0.0%")
	assert.Contains(t, output, "Morale is stable.")
}
