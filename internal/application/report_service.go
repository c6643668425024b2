package application

import (
	"context"
	"fmt"
	"sort"

	"github.com/amdox/moodtrack/internal/ports"
)

// CheckupThresholdPercent is the negative-morale percentage above which a
// team checkup is advised.
const CheckupThresholdPercent = 30.0

// ReportService aggregates the full history into team-level analytics. It is
// a downstream consumer of the history store only.
type ReportService struct {
	history ports.HistoryRepository
}

func NewReportService(history ports.HistoryRepository) *ReportService {
	return &ReportService{history: history}
}

type MoodCount struct {
	Label string
	Count int
}

type TeamReport struct {
	TotalRecords int
	// MoodCounts holds per-raw-label frequencies, most frequent first,
	// ties broken alphabetically.
	MoodCounts []MoodCount
	// NegativeRecords counts records whose raw label classifies into
	// Negative or Low-Energy.
	NegativeRecords int
	// NegativeMorale is NegativeRecords over TotalRecords as a percentage.
	NegativeMorale float64
	CheckupAdvised bool
}

// TeamReport computes mood frequencies and the negative-morale share over
// the whole history. An empty history yields a zero report without error.
func (s *ReportService) TeamReport(ctx context.Context) (TeamReport, error) {
	records, err := s.history.All(ctx)
	if err != nil {
		return TeamReport{}, fmt.Errorf("read mood history: %w", err)
	}
	if len(records) == 0 {
		return TeamReport{}, nil
	}

	counts := map[string]int{}
	negative := 0
	for _, record := range records {
		counts[record.Mood]++
		if record.Category().IsNegativeState() {
			negative++
		}
	}

	moodCounts := make([]MoodCount, 0, len(counts))
	for label, count := range counts {
		moodCounts = append(moodCounts, MoodCount{Label: label, Count: count})
	}
	sort.Slice(moodCounts, func(i, j int) bool {
		if moodCounts[i].Count != moodCounts[j].Count {
			return moodCounts[i].Count > moodCounts[j].Count
		}
		return moodCounts[i].Label < moodCounts[j].Label
	})

	morale := float64(negative) / float64(len(records)) * 100

	return TeamReport{
		TotalRecords:    len(records),
		MoodCounts:      moodCounts,
		NegativeRecords: negative,
		NegativeMorale:  morale,
		CheckupAdvised:  morale > CheckupThresholdPercent,
	}, nil
}
