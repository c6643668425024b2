package quotes

import (
	_ "embed"
	"fmt"
	"math/rand"
	"time"

	"github.com/amdox/moodtrack/internal/domain"
	"github.com/amdox/moodtrack/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

//go:embed quotes.toml
var libraryTOML []byte

type categorySchema struct {
	Quotes []string `toml:"quotes"`
}

type librarySchema struct {
	Negative  categorySchema `toml:"negative"`
	Positive  categorySchema `toml:"positive"`
	LowEnergy categorySchema `toml:"low_energy"`
	Neutral   categorySchema `toml:"neutral"`
}

// Library picks supportive quotes from the embedded per-category library.
type Library struct {
	byCategory map[domain.MoodCategory][]string
	rng        *rand.Rand
}

var _ ports.QuoteLibrary = (*Library)(nil)

// NewLibrary decodes the embedded library. rng may be nil for a time-seeded
// source; tests inject a seeded one.
func NewLibrary(rng *rand.Rand) (*Library, error) {
	var schema librarySchema
	if err := toml.Unmarshal(libraryTOML, &schema); err != nil {
		return nil, fmt.Errorf("decode quote library: %w", err)
	}

	byCategory := map[domain.MoodCategory][]string{
		domain.CategoryNegative:  schema.Negative.Quotes,
		domain.CategoryPositive:  schema.Positive.Quotes,
		domain.CategoryLowEnergy: schema.LowEnergy.Quotes,
		domain.CategoryNeutral:   schema.Neutral.Quotes,
	}
	for category, entries := range byCategory {
		if len(entries) == 0 {
			return nil, fmt.Errorf("quote library has no entries for category %q", category)
		}
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Library{byCategory: byCategory, rng: rng}, nil
}

func (l *Library) Pick(category domain.MoodCategory) (string, error) {
	entries, ok := l.byCategory[category]
	if !ok || len(entries) == 0 {
		return "", fmt.Errorf("no quotes for category %q", category)
	}

	return entries[l.rng.Intn(len(entries))], nil
}
