package moodsource

import (
	"context"
	"strings"

	"github.com/amdox/moodtrack/internal/ports"
)

// Static always yields the same label, e.g. one supplied on the command
// line or captured upstream by the detection subsystem.
type Static struct {
	label string
}

var _ ports.MoodSource = Static{}

func NewStatic(label string) Static {
	return Static{label: strings.ToLower(strings.TrimSpace(label))}
}

func (s Static) Read(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	return s.label, nil
}
