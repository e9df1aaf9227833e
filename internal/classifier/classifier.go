// Package classifier implements the admission and routing policy decisions.
// Every function here is pure: the same inputs always produce the same
// result, and missing enrichment is handled as unknown rather than an error.
package classifier

import (
	"fmt"

	"github.com/losslocator/locator/internal/enrichment"
	"github.com/losslocator/locator/internal/events"
	"github.com/losslocator/locator/internal/thresholds"
)

// Decision is the outcome of an admission classification. Reason explains a
// non-qualifying result in operator-readable terms.
type Decision struct {
	Qualifies bool   `json:"qualifies"`
	Reason    string `json:"reason"`
}

// ForAdmission decides whether an event is a qualifying lead candidate.
// Qualifies iff severity and claim probability both meet their floors.
func ForAdmission(ev events.LossEvent, cfg thresholds.Configuration) Decision {
	if ev.Severity < cfg.MinSeverity {
		return Decision{
			Reason: fmt.Sprintf("severity %.2f below floor %.2f", ev.Severity, cfg.MinSeverity),
		}
	}
	if ev.ClaimProbability < cfg.MinClaimProbability {
		return Decision{
			Reason: fmt.Sprintf("claim probability %.2f below floor %.2f", ev.ClaimProbability, cfg.MinClaimProbability),
		}
	}
	return Decision{Qualifies: true, Reason: "meets admission thresholds"}
}

// ForRouting decides whether a lead is presentable under the current routing
// filters. It never mutates anything and never fails: a nil property or
// demographic means the enrichment is unknown.
//
// Unknown handling per filter: phone-required treats a missing property as no
// usable phone and excludes the lead; income treats a missing demographic as
// non-disqualifying and lets the lead through.
func ForRouting(
	ev events.LossEvent,
	property *enrichment.Property,
	demographic *enrichment.ZipDemographic,
	cfg thresholds.Configuration,
) bool {
	if cfg.CommercialOnlyRouting {
		if !ev.IsCommercial {
			return false
		}
	} else if !cfg.EnableResidentialLeads && ev.Residential() {
		return false
	}

	if cfg.PhoneRequiredRouting {
		if property == nil || !property.HasPhone(cfg.MinPhoneConfidence) {
			return false
		}
	}

	if cfg.MinIncomePercentile > 0 && demographic != nil {
		if demographic.IncomePercentile < cfg.MinIncomePercentile {
			return false
		}
	}

	return true
}

// HighPriority reports whether an event clears both admission floors by the
// configured margins, used to default priority at auto-admission.
func HighPriority(ev events.LossEvent, cfg thresholds.Configuration) bool {
	return ev.Severity >= cfg.MinSeverity+cfg.HighPrioritySeverityMargin &&
		ev.ClaimProbability >= cfg.MinClaimProbability+cfg.HighPriorityProbabilityMargin
}
