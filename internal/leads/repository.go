package leads

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/losslocator/locator/internal/classifier"
	"github.com/losslocator/locator/internal/enrichment"
	"github.com/losslocator/locator/internal/events"
	"github.com/losslocator/locator/internal/thresholds"
	"github.com/losslocator/locator/pkg/pagination"
	"github.com/losslocator/locator/pkg/query"
	"github.com/losslocator/locator/pkg/repository"
)

// Bounds concurrent admissions during a sweep.
const sweepWorkers = 8

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
	events     events.System
	enrichment enrichment.System
	thresholds thresholds.System
}

// New creates a routing queue repository implementing the System interface.
func New(
	db *sql.DB,
	logger *slog.Logger,
	pagination pagination.Config,
	events events.System,
	enrichment enrichment.System,
	thresholds thresholds.System,
) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "leads"),
		pagination: pagination,
		events:     events,
		enrichment: enrichment,
		thresholds: thresholds,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Lead], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "AssignedTo", "Zip", "Notes")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count leads: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanLead)
	if err != nil {
		return nil, fmt.Errorf("query leads: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Lead, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	l, err := repository.QueryOne(ctx, r.db, q, args, scanLead)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &l, nil
}

func (r *repo) findByEvent(ctx context.Context, eventID uuid.UUID) (*Lead, error) {
	q, args := query.NewBuilder(projection).BuildSingle("EventID", eventID)

	l, err := repository.QueryOne(ctx, r.db, q, args, scanLead)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &l, nil
}

func (r *repo) Admit(ctx context.Context, cmd AdmitCommand) (*Lead, error) {
	l, created, err := r.admit(ctx, cmd)
	if err != nil {
		return nil, err
	}

	if created {
		r.logger.Info("lead admitted",
			"id", l.ID,
			"event_id", l.EventID,
			"priority", l.Priority,
			"manual", cmd.Manual,
		)
	}
	return l, nil
}

// admit performs the idempotent upsert. The insert races are resolved by the
// unique event_id constraint: whichever writer loses the conflict re-reads
// the winner's row, so callers always get the single entry for the event.
func (r *repo) admit(ctx context.Context, cmd AdmitCommand) (*Lead, bool, error) {
	existing, err := r.findByEvent(ctx, cmd.EventID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, false, err
	}

	ev, err := r.events.Find(ctx, cmd.EventID)
	if err != nil {
		if errors.Is(err, events.ErrNotFound) {
			return nil, false, fmt.Errorf("%w: unknown event %s", ErrValidation, cmd.EventID)
		}
		return nil, false, err
	}

	cfg, err := r.thresholds.Get(ctx)
	if err != nil {
		return nil, false, err
	}

	decision, err := DecideAdmission(existing, *ev, *cfg, cmd.Manual)
	if err != nil {
		return nil, false, err
	}
	if decision.Existing != nil {
		return decision.Existing, false, nil
	}

	insertQ := `
		INSERT INTO routing_queue (event_id, status, priority, version)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (event_id) DO NOTHING`

	res, err := r.db.ExecContext(ctx, insertQ, cmd.EventID, StatusUnassigned, decision.Priority)
	if err != nil {
		return nil, false, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return nil, false, fmt.Errorf("admit lead: %w", err)
	}

	l, err := r.findByEvent(ctx, cmd.EventID)
	if err != nil {
		return nil, false, err
	}
	return l, inserted == 1, nil
}

func (r *repo) Sweep(ctx context.Context) (*SweepResult, error) {
	cfg, err := r.thresholds.Get(ctx)
	if err != nil {
		return nil, err
	}

	if !cfg.AutoCreateLead {
		return &SweepResult{}, nil
	}

	candidatesQ := `
		SELECT e.id
		FROM public.loss_events e
		LEFT JOIN public.routing_queue q ON q.event_id = e.id
		WHERE q.id IS NULL AND e.severity >= $1 AND e.claim_probability >= $2`

	ids, err := repository.QueryMany(ctx, r.db, candidatesQ,
		[]any{cfg.MinSeverity, cfg.MinClaimProbability},
		func(s repository.Scanner) (uuid.UUID, error) {
			var id uuid.UUID
			err := s.Scan(&id)
			return id, err
		},
	)
	if err != nil {
		return nil, fmt.Errorf("sweep candidates: %w", err)
	}

	var admitted atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(sweepWorkers)

	for _, id := range ids {
		g.Go(func() error {
			_, created, err := r.admit(gctx, AdmitCommand{EventID: id})
			if err != nil {
				// A concurrent writer can admit the same event between the
				// candidate scan and our insert; that is not a sweep failure.
				if errors.Is(err, ErrDuplicate) {
					return nil
				}
				return err
			}
			if created {
				admitted.Add(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("sweep admissions: %w", err)
	}

	result := &SweepResult{
		Scanned:  len(ids),
		Admitted: int(admitted.Load()),
		Existing: len(ids) - int(admitted.Load()),
	}

	r.logger.Info("admission sweep complete",
		"scanned", result.Scanned,
		"admitted", result.Admitted,
	)
	return result, nil
}

func (r *repo) Assign(ctx context.Context, id uuid.UUID, cmd AssignCommand) (*Lead, error) {
	name, assigneeType, priority, err := cmd.Validate()
	if err != nil {
		return nil, err
	}

	assignQ := `
		UPDATE routing_queue
		SET assigned_to = $1, assignee_type = $2, priority = $3, notes = $4,
			status = CASE WHEN status = 'unassigned' THEN 'assigned' ELSE status END,
			version = version + 1, updated_at = NOW()
		WHERE id = $5 AND version = $6`

	_, err = repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		cur, err := r.findForUpdate(ctx, tx, id)
		if err != nil {
			return struct{}{}, err
		}

		// Version 0 skips the optimistic check for callers that just reloaded.
		if cmd.Version != 0 && cur.Version != cmd.Version {
			return struct{}{}, fmt.Errorf("%w: version %d is stale", ErrConcurrentModification, cmd.Version)
		}

		if err := repository.ExecExpectOne(
			ctx, tx, assignQ,
			name, assigneeType, priority, cmd.Notes, id, cur.Version,
		); err != nil {
			return struct{}{}, fmt.Errorf("%w: version %d is stale", ErrConcurrentModification, cur.Version)
		}

		return struct{}{}, nil
	})
	if err != nil {
		return nil, err
	}

	l, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	r.logger.Info("lead assigned",
		"id", l.ID,
		"assigned_to", name,
		"assignee_type", assigneeType,
		"status", l.Status,
	)
	return l, nil
}

func (r *repo) TransitionStatus(ctx context.Context, id uuid.UUID, cmd TransitionCommand) (*Lead, error) {
	next, err := ParseStatus(cmd.Status)
	if err != nil {
		return nil, err
	}

	transitionQ := `
		UPDATE routing_queue
		SET status = $1, version = version + 1, updated_at = NOW()
		WHERE id = $2 AND version = $3`

	noop := false

	_, err = repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		cur, err := r.findForUpdate(ctx, tx, id)
		if err != nil {
			return struct{}{}, err
		}

		if cmd.Version != 0 && cur.Version != cmd.Version {
			return struct{}{}, fmt.Errorf("%w: version %d is stale", ErrConcurrentModification, cmd.Version)
		}

		if !cur.Status.CanTransition(next) {
			return struct{}{}, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, cur.Status, next)
		}

		if cur.Status == next {
			noop = true
			return struct{}{}, nil
		}

		if err := repository.ExecExpectOne(ctx, tx, transitionQ, next, id, cur.Version); err != nil {
			return struct{}{}, fmt.Errorf("%w: version %d is stale", ErrConcurrentModification, cur.Version)
		}

		return struct{}{}, nil
	})
	if err != nil {
		return nil, err
	}

	l, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	if !noop {
		r.logger.Info("lead status advanced",
			"id", l.ID,
			"status", l.Status,
		)
	}
	return l, nil
}

func (r *repo) findForUpdate(ctx context.Context, tx *sql.Tx, id uuid.UUID) (*Lead, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	l, err := repository.QueryOne(ctx, tx, q, args, scanLead)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &l, nil
}

func (r *repo) Routable(ctx context.Context, id uuid.UUID) (*RoutableResult, error) {
	l, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	cfg, err := r.thresholds.Get(ctx)
	if err != nil {
		return nil, err
	}

	ev := events.LossEvent{
		ID:               l.EventID,
		EventType:        l.EventType,
		Severity:         l.Severity,
		Zip:              l.Zip,
		ClaimProbability: l.ClaimProbability,
		IsCommercial:     l.IsCommercial,
		PropertyType:     l.PropertyType,
	}

	property, err := r.enrichment.FindPropertyByEvent(ctx, l.EventID)
	if err != nil && !errors.Is(err, enrichment.ErrPropertyNotFound) {
		return nil, err
	}

	demographic, err := r.enrichment.FindDemographicByZip(ctx, l.Zip)
	if err != nil && !errors.Is(err, enrichment.ErrDemographicNotFound) {
		return nil, err
	}

	return &RoutableResult{
		LeadID:   l.ID,
		Routable: classifier.ForRouting(ev, property, demographic, *cfg),
	}, nil
}

func (r *repo) Preview(ctx context.Context, eventID uuid.UUID) (*classifier.Decision, error) {
	ev, err := r.events.Find(ctx, eventID)
	if err != nil {
		if errors.Is(err, events.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown event %s", ErrValidation, eventID)
		}
		return nil, err
	}

	cfg, err := r.thresholds.Get(ctx)
	if err != nil {
		return nil, err
	}

	d := classifier.ForAdmission(*ev, *cfg)
	return &d, nil
}
