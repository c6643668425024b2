package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amdox/moodtrack/internal/domain"
	"github.com/amdox/moodtrack/internal/ports"
	"github.com/google/uuid"
)

// SessionService runs one check-in session end to end: anonymize, read the
// mood label, classify, recommend, check the burnout streak, then append the
// record. The append is the session's only durable effect and happens last,
// after all decision logic, so an aborted session never pollutes history.
type SessionService struct {
	history     ports.HistoryRepository
	source      ports.MoodSource
	quotes      ports.QuoteLibrary
	recommender domain.Recommender
	clock       ports.Clock
}

func NewSessionService(
	history ports.HistoryRepository,
	source ports.MoodSource,
	quotes ports.QuoteLibrary,
	recommender domain.Recommender,
	clock ports.Clock,
) *SessionService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &SessionService{
		history:     history,
		source:      source,
		quotes:      quotes,
		recommender: recommender,
		clock:       clock,
	}
}

// SessionResult carries everything a session decided. Only the appended
// MoodRecord outlives it.
type SessionResult struct {
	SessionID      string
	UserHash       string
	Mood           string
	Category       domain.MoodCategory
	Recommendation domain.Task
	Quote          string
	AlertRaised    bool
	// MoodDefaulted is set when the mood source failed or produced nothing
	// and the default neutral label was substituted.
	MoodDefaulted bool
	// HistorySkipped is set when prior history was unreadable and the
	// burnout check ran against an empty window.
	HistorySkipped bool
}

// Run executes the session pipeline for one user. Steps are strictly
// sequential; any failure aborts the session before the final append, so no
// partial or duplicate records are ever written.
func (s *SessionService) Run(ctx context.Context, rawName string, workload domain.WorkloadLevel) (SessionResult, error) {
	if strings.TrimSpace(rawName) == "" {
		return SessionResult{}, domain.ErrEmptyName
	}
	if err := workload.Validate(); err != nil {
		return SessionResult{}, err
	}

	userHash := domain.AnonymizeID(rawName)

	mood, defaulted := s.readMood(ctx)
	category := domain.Classify(mood)
	task := s.recommender.Recommend(category, workload)

	prior, historySkipped, err := s.priorWindow(ctx, userHash)
	if err != nil {
		return SessionResult{}, err
	}
	alert := domain.CheckStreak(category, prior)

	quote, err := s.quotes.Pick(category)
	if err != nil {
		return SessionResult{}, fmt.Errorf("pick quote: %w", err)
	}

	record := domain.MoodRecord{
		Timestamp: s.clock.Now(),
		UserHash:  userHash,
		Mood:      mood,
	}
	if err := s.history.Append(ctx, record); err != nil {
		return SessionResult{}, fmt.Errorf("append mood record: %w", err)
	}

	return SessionResult{
		SessionID:      uuid.NewString(),
		UserHash:       userHash,
		Mood:           mood,
		Category:       category,
		Recommendation: task,
		Quote:          quote,
		AlertRaised:    alert,
		MoodDefaulted:  defaulted,
		HistorySkipped: historySkipped,
	}, nil
}

// readMood resolves a failed or empty read to the default neutral label so
// the session proceeds; the substitution stays observable in the result.
func (s *SessionService) readMood(ctx context.Context) (label string, defaulted bool) {
	label, err := s.source.Read(ctx)
	label = strings.ToLower(strings.TrimSpace(label))
	if err != nil || label == "" {
		return domain.DefaultMoodLabel, true
	}
	return label, false
}

// priorWindow fetches the user's last BurnoutWindow records. An unreadable
// history is recovered locally: the user is treated as having no prior
// history and the burnout check is effectively skipped.
func (s *SessionService) priorWindow(ctx context.Context, userHash string) ([]domain.MoodRecord, bool, error) {
	prior, err := s.history.RecentForUser(ctx, userHash, domain.BurnoutWindow)
	if err == nil {
		return prior, false, nil
	}
	if errors.Is(err, domain.ErrHistoryUnreadable) {
		return nil, true, nil
	}
	return nil, false, fmt.Errorf("read mood history: %w", err)
}

// UserHistory returns the stored records for a raw name, oldest first.
// last <= 0 returns the full history for that user.
func (s *SessionService) UserHistory(ctx context.Context, rawName string, last int) ([]domain.MoodRecord, error) {
	if strings.TrimSpace(rawName) == "" {
		return nil, domain.ErrEmptyName
	}

	records, err := s.history.RecentForUser(ctx, domain.AnonymizeID(rawName), last)
	if err != nil {
		return nil, fmt.Errorf("read mood history: %w", err)
	}
	return records, nil
}
