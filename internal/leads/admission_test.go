package leads_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/losslocator/locator/internal/events"
	"github.com/losslocator/locator/internal/leads"
	"github.com/losslocator/locator/internal/thresholds"
)

func admissionConfig() thresholds.Configuration {
	return thresholds.Configuration{
		MinSeverity:                   75,
		MinClaimProbability:           0.70,
		HighPrioritySeverityMargin:    10,
		HighPriorityProbabilityMargin: 0.10,
		AutoCreateLead:                true,
	}
}

func TestDecideAdmission(t *testing.T) {
	tests := []struct {
		name     string
		event    events.LossEvent
		mutate   func(*thresholds.Configuration)
		manual   bool
		wantErr  bool
		priority leads.Priority
	}{
		{
			name:     "qualifying event clears both margins",
			event:    events.LossEvent{Severity: 92, ClaimProbability: 0.83},
			priority: leads.PriorityHigh,
		},
		{
			name:     "qualifying event below margins",
			event:    events.LossEvent{Severity: 80, ClaimProbability: 0.72},
			priority: leads.PriorityMedium,
		},
		{
			name:    "severity below floor",
			event:   events.LossEvent{Severity: 40, ClaimProbability: 0.30},
			wantErr: true,
		},
		{
			name:    "probability below floor",
			event:   events.LossEvent{Severity: 90, ClaimProbability: 0.50},
			wantErr: true,
		},
		{
			name:    "auto-create disabled",
			event:   events.LossEvent{Severity: 92, ClaimProbability: 0.83},
			mutate:  func(c *thresholds.Configuration) { c.AutoCreateLead = false },
			wantErr: true,
		},
		{
			name:     "manual bypasses thresholds",
			event:    events.LossEvent{Severity: 40, ClaimProbability: 0.30},
			manual:   true,
			priority: leads.PriorityMedium,
		},
		{
			name:     "manual bypasses auto-create toggle",
			event:    events.LossEvent{Severity: 92, ClaimProbability: 0.83},
			mutate:   func(c *thresholds.Configuration) { c.AutoCreateLead = false },
			manual:   true,
			priority: leads.PriorityHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := admissionConfig()
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}

			decision, err := leads.DecideAdmission(nil, tt.event, cfg, tt.manual)
			if tt.wantErr {
				if !errors.Is(err, leads.ErrNotQualified) {
					t.Errorf("DecideAdmission() error = %v, expected ErrNotQualified", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecideAdmission() unexpected error: %v", err)
			}
			if decision.Existing != nil {
				t.Errorf("DecideAdmission() Existing = %v, expected nil", decision.Existing)
			}
			if decision.Priority != tt.priority {
				t.Errorf("DecideAdmission() priority = %q, expected %q", decision.Priority, tt.priority)
			}
		})
	}
}

func TestDecideAdmissionIdempotent(t *testing.T) {
	existing := &leads.Lead{
		ID:       uuid.New(),
		EventID:  uuid.New(),
		Status:   leads.StatusAssigned,
		Priority: leads.PriorityHigh,
		Version:  3,
	}
	// The event no longer qualifies, so the existing entry must win the
	// decision without the gate re-running.
	ev := events.LossEvent{Severity: 10, ClaimProbability: 0.05}

	for _, manual := range []bool{false, true} {
		decision, err := leads.DecideAdmission(existing, ev, admissionConfig(), manual)
		if err != nil {
			t.Fatalf("DecideAdmission(manual=%v) unexpected error: %v", manual, err)
		}
		if decision.Existing != existing {
			t.Errorf("DecideAdmission(manual=%v) Existing = %v, expected the prior entry", manual, decision.Existing)
		}
	}
}
