package leads

import (
	"fmt"

	"github.com/losslocator/locator/internal/classifier"
	"github.com/losslocator/locator/internal/events"
	"github.com/losslocator/locator/internal/thresholds"
)

// AdmissionDecision tells Admit how to treat an event. When Existing is set
// the event already holds its single queue entry and nothing new is created;
// otherwise Priority is the priority for the entry to insert.
type AdmissionDecision struct {
	Existing *Lead
	Priority Priority
}

// DecideAdmission applies the admission gate for one event. An existing entry
// short-circuits unchanged, keeping admission idempotent. Otherwise a manual
// request always admits, while an automatic one must clear the classifier
// thresholds and the auto-create toggle. New entries take high priority when
// the event clears both priority margins, medium otherwise.
func DecideAdmission(existing *Lead, ev events.LossEvent, cfg thresholds.Configuration, manual bool) (AdmissionDecision, error) {
	if existing != nil {
		return AdmissionDecision{Existing: existing}, nil
	}

	if !manual {
		if d := classifier.ForAdmission(ev, cfg); !d.Qualifies {
			return AdmissionDecision{}, fmt.Errorf("%w: %s", ErrNotQualified, d.Reason)
		}
		if !cfg.AutoCreateLead {
			return AdmissionDecision{}, fmt.Errorf("%w: automatic lead creation is disabled", ErrNotQualified)
		}
	}

	priority := PriorityMedium
	if classifier.HighPriority(ev, cfg) {
		priority = PriorityHigh
	}
	return AdmissionDecision{Priority: priority}, nil
}
