package csv

import (
	"context"
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/amdox/moodtrack/internal/domain"
	"github.com/amdox/moodtrack/internal/ports"
	"github.com/spf13/viper"
)

const (
	configName      = "config"
	configType      = "toml"
	historyPathKey  = "history.path"
	historyFileMode = 0o600
	historyDirMode  = 0o700
	historyDir      = ".moodtrack"
	historyFile     = "mood_history.csv"
)

// header describes the field names written when the file is first created.
var header = []string{"Timestamp", "User_Hash", "Mood"}

// Repository persists mood records as an append-only CSV file. Rows are only
// ever appended under a per-path write lock, never edited or reordered, so
// file order is chronological order.
type Repository struct {
	historyPath string
	mu          *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.HistoryRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, historyDir, historyFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, historyDir))
	cfg.SetDefault(historyPathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	historyPath := cfg.GetString(historyPathKey)
	if historyPath == "" {
		return nil, errors.New("history path is empty")
	}
	historyPath, err = normalizeHistoryPath(historyPath)
	if err != nil {
		return nil, err
	}

	return &Repository{historyPath: historyPath, mu: lockForPath(historyPath)}, nil
}

// Append writes one record as a single row, creating the file with its
// header on first use. The row is flushed and synced before returning.
func (r *Repository) Append(ctx context.Context, record domain.MoodRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(r.historyPath), historyDirMode); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}

	_, statErr := os.Stat(r.historyPath)
	writeHeader := errors.Is(statErr, os.ErrNotExist)

	file, err := os.OpenFile(r.historyPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, historyFileMode)
	if err != nil {
		return fmt.Errorf("open history file: %w", err)
	}

	writer := stdcsv.NewWriter(file)
	if writeHeader {
		if err := writer.Write(header); err != nil {
			_ = file.Close()
			return fmt.Errorf("write history header: %w", err)
		}
	}
	row := []string{
		record.Timestamp.Format(domain.TimestampLayout),
		record.UserHash,
		record.Mood,
	}
	if err := writer.Write(row); err != nil {
		_ = file.Close()
		return fmt.Errorf("write history row: %w", err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		_ = file.Close()
		return fmt.Errorf("flush history row: %w", err)
	}
	if err := file.Sync(); err != nil {
		_ = file.Close()
		return fmt.Errorf("sync history file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close history file: %w", err)
	}

	return nil
}

func (r *Repository) RecentForUser(ctx context.Context, userHash string, n int) ([]domain.MoodRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	records, err := r.readAll()
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.MoodRecord, 0, len(records))
	for _, record := range records {
		if record.UserHash == userHash {
			filtered = append(filtered, record)
		}
	}

	if n > 0 && len(filtered) > n {
		filtered = filtered[len(filtered)-n:]
	}

	return filtered, nil
}

func (r *Repository) All(ctx context.Context) ([]domain.MoodRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.readAll()
}

// readAll parses the whole file. A missing file is an empty history; an
// unparsable one surfaces domain.ErrHistoryUnreadable so callers can decide
// whether to recover.
func (r *Repository) readAll() ([]domain.MoodRecord, error) {
	file, err := os.Open(r.historyPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: open history file: %v", domain.ErrHistoryUnreadable, err)
	}
	defer func() {
		_ = file.Close()
	}()

	reader := stdcsv.NewReader(file)
	reader.FieldsPerRecord = len(header)

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: decode history file: %v", domain.ErrHistoryUnreadable, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	if rows[0][0] != header[0] {
		return nil, fmt.Errorf("%w: missing header row", domain.ErrHistoryUnreadable)
	}

	records := make([]domain.MoodRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		timestamp, err := time.ParseInLocation(domain.TimestampLayout, row[0], time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: bad timestamp %q", domain.ErrHistoryUnreadable, row[0])
		}
		records = append(records, domain.MoodRecord{
			Timestamp: timestamp,
			UserHash:  row[1],
			Mood:      row[2],
		})
	}

	return records, nil
}

func normalizeHistoryPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve history path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
