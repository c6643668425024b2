package ports

import "context"

// MoodSource supplies the instantaneous mood label for a session. The label
// is treated as opaque input; detection itself (camera, model, operator) is
// behind this boundary. A failed or empty read is resolved by the caller to
// the default neutral label.
type MoodSource interface {
	Read(ctx context.Context) (string, error)
}
