// Package thresholds manages the admission and routing policy configuration.
// A single configuration row is read on every admission decision so admin
// edits take effect without a restart.
package thresholds

import (
	"fmt"
	"time"
)

// Configuration holds the admission thresholds, routing filter flags, and
// priority margins. Severity is an opaque ordinal; only ordering against
// MinSeverity is meaningful.
type Configuration struct {
	MinSeverity                   float64   `json:"min_severity"`
	MinClaimProbability           float64   `json:"min_claim_probability"`
	MinIncomePercentile           float64   `json:"min_income_percentile"`
	MinPhoneConfidence            float64   `json:"min_phone_confidence"`
	HighPrioritySeverityMargin    float64   `json:"high_priority_severity_margin"`
	HighPriorityProbabilityMargin float64   `json:"high_priority_probability_margin"`
	AutoCreateLead                bool      `json:"auto_create_lead"`
	EnableResidentialLeads        bool      `json:"enable_residential_leads"`
	CommercialOnlyRouting         bool      `json:"commercial_only_routing"`
	PhoneRequiredRouting          bool      `json:"phone_required_routing"`
	NightlyExport                 bool      `json:"nightly_export"`
	UpdatedAt                     time.Time `json:"updated_at"`
}

// UpdateCommand carries the full replacement configuration for an admin edit.
type UpdateCommand struct {
	MinSeverity                   float64 `json:"min_severity"`
	MinClaimProbability           float64 `json:"min_claim_probability"`
	MinIncomePercentile           float64 `json:"min_income_percentile"`
	MinPhoneConfidence            float64 `json:"min_phone_confidence"`
	HighPrioritySeverityMargin    float64 `json:"high_priority_severity_margin"`
	HighPriorityProbabilityMargin float64 `json:"high_priority_probability_margin"`
	AutoCreateLead                bool    `json:"auto_create_lead"`
	EnableResidentialLeads        bool    `json:"enable_residential_leads"`
	CommercialOnlyRouting         bool    `json:"commercial_only_routing"`
	PhoneRequiredRouting          bool    `json:"phone_required_routing"`
	NightlyExport                 bool    `json:"nightly_export"`
}

// Validate checks the command's numeric ranges. Probability fractions must
// fall in [0,1], the income percentile and phone confidence score in [0,100],
// and severity values must be non-negative.
func (c UpdateCommand) Validate() error {
	if c.MinSeverity < 0 {
		return fmt.Errorf("%w: min_severity must be non-negative", ErrValidation)
	}
	if c.MinClaimProbability < 0 || c.MinClaimProbability > 1 {
		return fmt.Errorf("%w: min_claim_probability must be in [0,1]", ErrValidation)
	}
	if c.MinIncomePercentile < 0 || c.MinIncomePercentile > 100 {
		return fmt.Errorf("%w: min_income_percentile must be in [0,100]", ErrValidation)
	}
	if c.MinPhoneConfidence < 0 || c.MinPhoneConfidence > 100 {
		return fmt.Errorf("%w: min_phone_confidence must be in [0,100]", ErrValidation)
	}
	if c.HighPrioritySeverityMargin < 0 {
		return fmt.Errorf("%w: high_priority_severity_margin must be non-negative", ErrValidation)
	}
	if c.HighPriorityProbabilityMargin < 0 || c.HighPriorityProbabilityMargin > 1 {
		return fmt.Errorf("%w: high_priority_probability_margin must be in [0,1]", ErrValidation)
	}
	return nil
}
