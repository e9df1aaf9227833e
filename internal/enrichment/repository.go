package enrichment

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"

	"github.com/losslocator/locator/pkg/query"
	"github.com/losslocator/locator/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates an enrichment repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "enrichment"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) FindPropertyByEvent(ctx context.Context, eventID uuid.UUID) (*Property, error) {
	q, args := query.NewBuilder(propertyProjection).BuildSingle("EventID", eventID)

	p, err := repository.QueryOne(ctx, r.db, q, args, scanProperty)
	if err != nil {
		return nil, repository.MapError(err, ErrPropertyNotFound, ErrPropertyNotFound)
	}
	return &p, nil
}

func (r *repo) FindDemographicByZip(ctx context.Context, zip string) (*ZipDemographic, error) {
	q, args := query.NewBuilder(demographicProjection).BuildSingle("Zip", zip)

	z, err := repository.QueryOne(ctx, r.db, q, args, scanDemographic)
	if err != nil {
		return nil, repository.MapError(err, ErrDemographicNotFound, ErrDemographicNotFound)
	}
	return &z, nil
}
