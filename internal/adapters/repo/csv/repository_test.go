package csv

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/amdox/moodtrack/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*Repository, string) {
	t.Helper()

	historyPath := filepath.Join(t.TempDir(), "mood_history.csv")
	config := viper.New()
	config.Set("history.path", historyPath)

	repo, err := NewRepository(config)
	require.NoError(t, err)
	return repo, historyPath
}

func record(ts time.Time, hash, mood string) domain.MoodRecord {
	return domain.MoodRecord{Timestamp: ts, UserHash: hash, Mood: mood}
}

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	base := time.Date(2026, 8, 31, 9, 30, 0, 0, time.Local)

	first := record(base, "2bd806c97f0e", "stressed")
	second := record(base.Add(time.Minute), "2bd806c97f0e", "happy")

	require.NoError(t, repo.Append(context.Background(), first))
	require.NoError(t, repo.Append(context.Background(), second))

	got, err := repo.RecentForUser(context.Background(), "2bd806c97f0e", 0)
	require.NoError(t, err)
	assert.Equal(t, []domain.MoodRecord{first, second}, got)
}

func TestRepositoryHeaderWrittenOnFirstAppendOnly(t *testing.T) {
	t.Parallel()

	repo, historyPath := newTestRepository(t)
	base := time.Date(2026, 8, 31, 9, 30, 0, 0, time.Local)

	require.NoError(t, repo.Append(context.Background(), record(base, "2bd806c97f0e", "sad")))
	require.NoError(t, repo.Append(context.Background(), record(base.Add(time.Second), "2bd806c97f0e", "sad")))

	data, err := os.ReadFile(historyPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Timestamp,User_Hash,Mood", lines[0])
	assert.Equal(t, "2026-08-31 09:30:00,2bd806c97f0e,sad", lines[1])
}

func TestRepositoryAppendOnlyPreservesOrder(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	base := time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)

	moods := []string{"stressed", "tired", "happy", "neutral", "sad"}
	for i, mood := range moods {
		require.NoError(t, repo.Append(context.Background(), record(base.Add(time.Duration(i)*time.Minute), "2bd806c97f0e", mood)))
	}

	got, err := repo.RecentForUser(context.Background(), "2bd806c97f0e", 0)
	require.NoError(t, err)
	require.Len(t, got, len(moods))
	for i, mood := range moods {
		assert.Equal(t, mood, got[i].Mood)
	}
}

func TestRepositoryRecentForUserWindowAndFiltering(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	base := time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)

	require.NoError(t, repo.Append(context.Background(), record(base, "2bd806c97f0e", "stressed")))
	require.NoError(t, repo.Append(context.Background(), record(base.Add(time.Minute), "7e50351d7a4c", "happy")))
	require.NoError(t, repo.Append(context.Background(), record(base.Add(2*time.Minute), "2bd806c97f0e", "sad")))
	require.NoError(t, repo.Append(context.Background(), record(base.Add(3*time.Minute), "2bd806c97f0e", "tired")))

	got, err := repo.RecentForUser(context.Background(), "2bd806c97f0e", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Most recent two, oldest first.
	assert.Equal(t, "sad", got[0].Mood)
	assert.Equal(t, "tired", got[1].Mood)

	// Shorter history returns what exists.
	got, err = repo.RecentForUser(context.Background(), "7e50351d7a4c", 2)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "happy", got[0].Mood)

	// Unknown user has no history.
	got, err = repo.RecentForUser(context.Background(), "ffffffffffff", 2)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRepositoryReadIsIdempotent(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	base := time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)
	require.NoError(t, repo.Append(context.Background(), record(base, "2bd806c97f0e", "stressed")))

	first, err := repo.RecentForUser(context.Background(), "2bd806c97f0e", 2)
	require.NoError(t, err)
	second, err := repo.RecentForUser(context.Background(), "2bd806c97f0e", 2)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRepositoryMissingFileIsEmptyHistory(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	got, err := repo.RecentForUser(context.Background(), "2bd806c97f0e", 2)
	require.NoError(t, err)
	assert.Empty(t, got)

	all, err := repo.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRepositoryCorruptFileSurfacesHistoryUnreadable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "ragged rows", content: "Timestamp,User_Hash,Mood\ngarbage\n"},
		{name: "bad timestamp", content: "Timestamp,User_Hash,Mood\nnot-a-time,2bd806c97f0e,sad\n"},
		{name: "missing header", content: "2026-08-31 09:00:00,2bd806c97f0e,sad\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo, historyPath := newTestRepository(t)
			require.NoError(t, os.WriteFile(historyPath, []byte(tt.content), 0o600))

			_, err := repo.RecentForUser(context.Background(), "2bd806c97f0e", 2)
			require.ErrorIs(t, err, domain.ErrHistoryUnreadable)

			_, err = repo.All(context.Background())
			require.ErrorIs(t, err, domain.ErrHistoryUnreadable)
		})
	}
}

func TestRepositoryAppendStillWorksWhenFileCorrupt(t *testing.T) {
	t.Parallel()

	repo, historyPath := newTestRepository(t)
	require.NoError(t, os.WriteFile(historyPath, []byte("Timestamp,User_Hash,Mood\ngarbage\n"), 0o600))

	base := time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)
	require.NoError(t, repo.Append(context.Background(), record(base, "2bd806c97f0e", "sad")))
}

func TestRepositoryCancelledContext(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Append(ctx, record(time.Now(), "2bd806c97f0e", "sad"))
	require.ErrorIs(t, err, context.Canceled)

	_, err = repo.All(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRepositoryConcurrentAppendsDoNotInterleave(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	base := time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)

	const writers = 8
	done := make(chan error, writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			done <- repo.Append(context.Background(), record(base.Add(time.Duration(i)*time.Second), "2bd806c97f0e", "neutral"))
		}(i)
	}
	for i := 0; i < writers; i++ {
		require.NoError(t, <-done)
	}

	got, err := repo.RecentForUser(context.Background(), "2bd806c97f0e", 0)
	require.NoError(t, err)
	assert.Len(t, got, writers)
}
