package moodsource

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/amdox/moodtrack/internal/ports"
)

// Prompt asks an operator for the current mood label on a reader/writer
// pair, standing in for the live detection subsystem. A blank answer is
// returned as-is; the session layer resolves it to the neutral default.
type Prompt struct {
	in  *bufio.Reader
	out io.Writer
}

var _ ports.MoodSource = (*Prompt)(nil)

func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: bufio.NewReader(in), out: out}
}

func (p *Prompt) Read(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := fmt.Fprint(p.out, "Current mood (e.g. happy, stressed, tired, neutral): "); err != nil {
		return "", fmt.Errorf("prompt for mood label: %w", err)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read mood label: %w", err)
	}

	return strings.ToLower(strings.TrimSpace(line)), nil
}
