package thresholds

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/losslocator/locator/pkg/repository"
)

const configColumns = `min_severity, min_claim_probability, min_income_percentile,
	min_phone_confidence, high_priority_severity_margin,
	high_priority_probability_margin, auto_create_lead,
	enable_residential_leads, commercial_only_routing,
	phone_required_routing, nightly_export, updated_at`

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a threshold configuration repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "thresholds"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Get(ctx context.Context) (*Configuration, error) {
	q := "SELECT " + configColumns + " FROM threshold_config WHERE id = 1"

	c, err := repository.QueryOne(ctx, r.db, q, nil, scanConfiguration)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrValidation)
	}
	return &c, nil
}

func (r *repo) Update(ctx context.Context, cmd UpdateCommand) (*Configuration, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	updateQ := `
		UPDATE threshold_config
		SET min_severity = $1, min_claim_probability = $2,
			min_income_percentile = $3, min_phone_confidence = $4,
			high_priority_severity_margin = $5,
			high_priority_probability_margin = $6, auto_create_lead = $7,
			enable_residential_leads = $8, commercial_only_routing = $9,
			phone_required_routing = $10, nightly_export = $11,
			updated_at = NOW()
		WHERE id = 1
		RETURNING ` + configColumns

	c, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Configuration, error) {
		cfg, err := repository.QueryOne(ctx, tx, updateQ,
			[]any{
				cmd.MinSeverity, cmd.MinClaimProbability,
				cmd.MinIncomePercentile, cmd.MinPhoneConfidence,
				cmd.HighPrioritySeverityMargin, cmd.HighPriorityProbabilityMargin,
				cmd.AutoCreateLead, cmd.EnableResidentialLeads,
				cmd.CommercialOnlyRouting, cmd.PhoneRequiredRouting,
				cmd.NightlyExport,
			},
			scanConfiguration,
		)
		if err != nil {
			return Configuration{}, repository.MapError(err, ErrNotFound, ErrValidation)
		}
		return cfg, nil
	})

	if err != nil {
		return nil, err
	}

	r.logger.Info("thresholds updated",
		"min_severity", c.MinSeverity,
		"min_claim_probability", c.MinClaimProbability,
		"auto_create_lead", c.AutoCreateLead,
	)
	return &c, nil
}
