package leads

import (
	"net/url"

	"github.com/losslocator/locator/internal/events"
	"github.com/losslocator/locator/pkg/query"
	"github.com/losslocator/locator/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "routing_queue", "q").
	Project("id", "ID").
	Project("event_id", "EventID").
	Project("status", "Status").
	Project("priority", "Priority").
	Project("assigned_to", "AssignedTo").
	Project("assignee_type", "AssigneeType").
	Project("notes", "Notes").
	Project("version", "Version").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt").
	Join("public", "loss_events", "e", "INNER JOIN", "e.id = q.event_id").
	Project("event_type", "EventType").
	Project("severity", "Severity").
	Project("claim_probability", "ClaimProbability").
	Project("zip", "Zip").
	Project("is_commercial", "IsCommercial").
	Project("property_type", "PropertyType")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for routing queue queries.
// Nil fields are ignored. Assigned filters on presence of an assignee.
type Filters struct {
	Status       *string `json:"status,omitempty"`
	Priority     *string `json:"priority,omitempty"`
	AssigneeType *string `json:"assignee_type,omitempty"`
	AssignedTo   *string `json:"assigned_to,omitempty"`
	EventType    *string `json:"event_type,omitempty"`
	Zip          *string `json:"zip,omitempty"`
	Assigned     *bool   `json:"assigned,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b.
		WhereEquals("Status", f.Status).
		WhereEquals("Priority", f.Priority).
		WhereEquals("AssigneeType", f.AssigneeType).
		WhereEquals("AssignedTo", f.AssignedTo).
		WhereEquals("EventType", f.EventType).
		WhereEquals("Zip", f.Zip)

	if f.Assigned != nil {
		b.WhereNotNull("AssignedTo", *f.Assigned)
	}

	return b
}

// FiltersFromQuery extracts filter values from URL query parameters.
// Enum parameters outside their catalogs are dropped rather than rejected.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if st := values.Get("status"); st != "" {
		if parsed, err := ParseStatus(st); err == nil {
			s := string(parsed)
			f.Status = &s
		}
	}

	if pr := values.Get("priority"); pr != "" {
		if parsed, err := ParsePriority(pr); err == nil {
			s := string(parsed)
			f.Priority = &s
		}
	}

	if at := values.Get("assignee_type"); at != "" {
		if parsed, err := ParseAssigneeType(at); err == nil {
			s := string(parsed)
			f.AssigneeType = &s
		}
	}

	if name := values.Get("assigned_to"); name != "" {
		f.AssignedTo = &name
	}

	if et := values.Get("event_type"); et != "" {
		if parsed, ok := events.ParseEventType(et); ok {
			s := string(parsed)
			f.EventType = &s
		}
	}

	if zip := values.Get("zip"); zip != "" {
		f.Zip = &zip
	}

	if a := values.Get("assigned"); a != "" {
		assigned := a == "true"
		f.Assigned = &assigned
	}

	return f
}

func scanLead(s repository.Scanner) (Lead, error) {
	var l Lead
	err := s.Scan(
		&l.ID,
		&l.EventID,
		&l.Status,
		&l.Priority,
		&l.AssignedTo,
		&l.AssigneeType,
		&l.Notes,
		&l.Version,
		&l.CreatedAt,
		&l.UpdatedAt,
		&l.EventType,
		&l.Severity,
		&l.ClaimProbability,
		&l.Zip,
		&l.IsCommercial,
		&l.PropertyType,
	)
	return l, err
}
