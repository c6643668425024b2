package moodsource

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticNormalizesLabel(t *testing.T) {
	label, err := NewStatic("  Stressed ").Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "stressed", label)
}

func TestStaticEmptyLabelPassesThrough(t *testing.T) {
	label, err := NewStatic("").Read(context.Background())
	require.NoError(t, err)
	assert.Empty(t, label, "the session layer resolves empty reads to neutral")
}

func TestStaticCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStatic("happy").Read(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestPromptReadsAndNormalizes(t *testing.T) {
	out := &bytes.Buffer{}
	prompt := NewPrompt(strings.NewReader("  Happy \n"), out)

	label, err := prompt.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "happy", label)
	assert.Contains(t, out.String(), "Current mood")
}

func TestPromptBlankLineReturnsEmpty(t *testing.T) {
	prompt := NewPrompt(strings.NewReader("\n"), &bytes.Buffer{})

	label, err := prompt.Read(context.Background())
	require.NoError(t, err)
	assert.Empty(t, label)
}

func TestPromptLastLineWithoutNewline(t *testing.T) {
	prompt := NewPrompt(strings.NewReader("tired"), &bytes.Buffer{})

	label, err := prompt.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tired", label)
}

func TestPromptEmptyInputFails(t *testing.T) {
	prompt := NewPrompt(strings.NewReader(""), &bytes.Buffer{})

	_, err := prompt.Read(context.Background())
	require.Error(t, err)
}
