package leads

import (
	"context"

	"github.com/google/uuid"

	"github.com/losslocator/locator/internal/classifier"
	"github.com/losslocator/locator/pkg/pagination"
)

// System defines the public contract for routing queue operations.
//
// Admit is idempotent per event: repeated calls return the existing lead
// without resetting its status. Assign and TransitionStatus use the lead's
// version counter for optimistic concurrency; a stale version surfaces
// ErrConcurrentModification and the caller reloads and retries.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Lead], error)

	Find(ctx context.Context, id uuid.UUID) (*Lead, error)
	Admit(ctx context.Context, cmd AdmitCommand) (*Lead, error)
	Sweep(ctx context.Context) (*SweepResult, error)
	Assign(ctx context.Context, id uuid.UUID, cmd AssignCommand) (*Lead, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, cmd TransitionCommand) (*Lead, error)
	Routable(ctx context.Context, id uuid.UUID) (*RoutableResult, error)
	Preview(ctx context.Context, eventID uuid.UUID) (*classifier.Decision, error)
}
