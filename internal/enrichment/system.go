package enrichment

import (
	"context"

	"github.com/google/uuid"
)

// System defines the public contract for enrichment lookups.
type System interface {
	Handler() *Handler

	// FindPropertyByEvent returns the property enrichment for an event,
	// or ErrPropertyNotFound when the event has no enrichment row.
	FindPropertyByEvent(ctx context.Context, eventID uuid.UUID) (*Property, error)

	// FindDemographicByZip returns the demographic row for a zip code,
	// or ErrDemographicNotFound when no row exists.
	FindDemographicByZip(ctx context.Context, zip string) (*ZipDemographic, error)
}
