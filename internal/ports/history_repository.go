package ports

import (
	"context"

	"github.com/amdox/moodtrack/internal/domain"
)

// HistoryRepository is the append-only per-user mood log. Append must be
// durable before it returns and records are never updated or deleted.
type HistoryRepository interface {
	Append(ctx context.Context, record domain.MoodRecord) error
	// RecentForUser returns the last n records for the user, oldest first,
	// fewer when the history is shorter and empty when there is none.
	// n <= 0 returns the user's full history.
	RecentForUser(ctx context.Context, userHash string, n int) ([]domain.MoodRecord, error)
	All(ctx context.Context) ([]domain.MoodRecord, error)
}
