package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// WorkloadLevel is a self-reported workload intensity in [WorkloadMin, WorkloadMax].
type WorkloadLevel int

const (
	WorkloadMin WorkloadLevel = 1
	WorkloadMax WorkloadLevel = 10
)

// ParseWorkload parses raw caller input into a validated WorkloadLevel.
// Non-integer input and out-of-range values are caller contract violations
// and reject before any session processing starts.
func ParseWorkload(raw string) (WorkloadLevel, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalidWorkload, raw)
	}

	level := WorkloadLevel(n)
	if err := level.Validate(); err != nil {
		return 0, err
	}

	return level, nil
}

// Validate reports whether the level is inside the accepted range.
func (w WorkloadLevel) Validate() error {
	if w < WorkloadMin || w > WorkloadMax {
		return fmt.Errorf("%w: %d is outside [%d, %d]", ErrInvalidWorkload, w, WorkloadMin, WorkloadMax)
	}
	return nil
}
