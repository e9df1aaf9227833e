package events_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/losslocator/locator/internal/events"
	"github.com/losslocator/locator/pkg/repository"
)

func TestParseEventType(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   events.EventType
		wantOK bool
	}{
		{"lowercase", "hail", events.EventHail, true},
		{"mixed case", "Wind", events.EventWind, true},
		{"padded", "  fire ", events.EventFire, true},
		{"unknown", "earthquake", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := events.ParseEventType(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseEventType(%q) = (%q, %v), want (%q, %v)",
					tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestResidential(t *testing.T) {
	tests := []struct {
		propertyType string
		want         bool
	}{
		{"residential", true},
		{"Residential", true},
		{"commercial", false},
		{"", false},
	}

	for _, tt := range tests {
		e := events.LossEvent{PropertyType: tt.propertyType}
		if got := e.Residential(); got != tt.want {
			t.Errorf("Residential() with %q = %v, want %v", tt.propertyType, got, tt.want)
		}
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", events.ErrNotFound, http.StatusNotFound},
		{"invalid id", events.ErrInvalidID, http.StatusBadRequest},
		{"store unavailable", repository.ErrUnavailable, http.StatusServiceUnavailable},
		{"wrapped not found", fmt.Errorf("find: %w", events.ErrNotFound), http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := events.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestFiltersFromQuery(t *testing.T) {
	t.Run("all params present", func(t *testing.T) {
		values := url.Values{
			"event_type":            {"hail"},
			"zip":                   {"78701"},
			"is_commercial":         {"true"},
			"property_type":         {"residential"},
			"min_severity":          {"75"},
			"min_claim_probability": {"0.7"},
		}

		f := events.FiltersFromQuery(values)

		if f.EventType == nil || *f.EventType != "hail" {
			t.Errorf("EventType = %v, want hail", f.EventType)
		}
		if f.Zip == nil || *f.Zip != "78701" {
			t.Errorf("Zip = %v, want 78701", f.Zip)
		}
		if f.IsCommercial == nil || !*f.IsCommercial {
			t.Errorf("IsCommercial = %v, want true", f.IsCommercial)
		}
		if f.MinSeverity == nil || *f.MinSeverity != 75 {
			t.Errorf("MinSeverity = %v, want 75", f.MinSeverity)
		}
		if f.MinClaimProbability == nil || *f.MinClaimProbability != 0.7 {
			t.Errorf("MinClaimProbability = %v, want 0.7", f.MinClaimProbability)
		}
	})

	t.Run("catalog rejects unknown event type", func(t *testing.T) {
		f := events.FiltersFromQuery(url.Values{"event_type": {"earthquake"}})
		if f.EventType != nil {
			t.Errorf("EventType = %v, want nil for unknown type", f.EventType)
		}
	})

	t.Run("empty params yield nil fields", func(t *testing.T) {
		f := events.FiltersFromQuery(url.Values{})
		if f.EventType != nil || f.Zip != nil || f.IsCommercial != nil ||
			f.MinSeverity != nil || f.MinClaimProbability != nil {
			t.Errorf("expected all nil filters, got %+v", f)
		}
	})
}
