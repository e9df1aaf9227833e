package events

import (
	"net/url"
	"strconv"

	"github.com/losslocator/locator/pkg/query"
	"github.com/losslocator/locator/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "loss_events", "e").
	Project("id", "ID").
	Project("event_type", "EventType").
	Project("severity", "Severity").
	Project("zip", "Zip").
	Project("lat", "Lat").
	Project("lng", "Lng").
	Project("claim_probability", "ClaimProbability").
	Project("is_commercial", "IsCommercial").
	Project("property_type", "PropertyType").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for loss event queries.
// Nil fields are ignored. MinSeverity and MinClaimProbability are floors,
// matching how the console's filter panel narrows the event table.
type Filters struct {
	EventType           *string  `json:"event_type,omitempty"`
	Zip                 *string  `json:"zip,omitempty"`
	IsCommercial        *bool    `json:"is_commercial,omitempty"`
	PropertyType        *string  `json:"property_type,omitempty"`
	MinSeverity         *float64 `json:"min_severity,omitempty"`
	MinClaimProbability *float64 `json:"min_claim_probability,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("EventType", f.EventType).
		WhereEquals("Zip", f.Zip).
		WhereEquals("IsCommercial", f.IsCommercial).
		WhereEquals("PropertyType", f.PropertyType).
		WhereGTE("Severity", f.MinSeverity).
		WhereGTE("ClaimProbability", f.MinClaimProbability)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if et := values.Get("event_type"); et != "" {
		if parsed, ok := ParseEventType(et); ok {
			s := string(parsed)
			f.EventType = &s
		}
	}

	if zip := values.Get("zip"); zip != "" {
		f.Zip = &zip
	}

	if ic := values.Get("is_commercial"); ic != "" {
		if v, err := strconv.ParseBool(ic); err == nil {
			f.IsCommercial = &v
		}
	}

	if pt := values.Get("property_type"); pt != "" {
		f.PropertyType = &pt
	}

	if ms := values.Get("min_severity"); ms != "" {
		if v, err := strconv.ParseFloat(ms, 64); err == nil {
			f.MinSeverity = &v
		}
	}

	if mp := values.Get("min_claim_probability"); mp != "" {
		if v, err := strconv.ParseFloat(mp, 64); err == nil {
			f.MinClaimProbability = &v
		}
	}

	return f
}

func scanLossEvent(s repository.Scanner) (LossEvent, error) {
	var e LossEvent
	err := s.Scan(
		&e.ID,
		&e.EventType,
		&e.Severity,
		&e.Zip,
		&e.Lat,
		&e.Lng,
		&e.ClaimProbability,
		&e.IsCommercial,
		&e.PropertyType,
		&e.CreatedAt,
	)
	return e, err
}
