package thresholds

import (
	"context"
)

// System defines the threshold configuration operations. The single
// configuration row is read fresh on every admission decision rather than
// cached, so admin edits apply immediately.
type System interface {
	Handler() *Handler
	Get(ctx context.Context) (*Configuration, error)
	Update(ctx context.Context, cmd UpdateCommand) (*Configuration, error)
}
