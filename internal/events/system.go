package events

import (
	"context"

	"github.com/google/uuid"

	"github.com/losslocator/locator/pkg/pagination"
)

// System defines the public contract for loss event reads.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[LossEvent], error)

	Find(ctx context.Context, id uuid.UUID) (*LossEvent, error)
}
