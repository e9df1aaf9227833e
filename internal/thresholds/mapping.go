package thresholds

import (
	"github.com/losslocator/locator/pkg/repository"
)

func scanConfiguration(row repository.Scanner) (Configuration, error) {
	var c Configuration
	err := row.Scan(
		&c.MinSeverity,
		&c.MinClaimProbability,
		&c.MinIncomePercentile,
		&c.MinPhoneConfidence,
		&c.HighPrioritySeverityMargin,
		&c.HighPriorityProbabilityMargin,
		&c.AutoCreateLead,
		&c.EnableResidentialLeads,
		&c.CommercialOnlyRouting,
		&c.PhoneRequiredRouting,
		&c.NightlyExport,
		&c.UpdatedAt,
	)
	return c, err
}
