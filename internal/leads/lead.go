// Package leads implements the routing queue: admission of qualifying loss
// events into lead entries, assignment to handlers, and the forward-only
// status workflow. Entries are never deleted, only advanced.
package leads

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/losslocator/locator/internal/events"
)

// Status is a lead's position in the outreach workflow. Statuses are ordered
// and a lead only ever moves forward.
type Status string

const (
	StatusUnassigned Status = "unassigned"
	StatusAssigned   Status = "assigned"
	StatusContacted  Status = "contacted"
	StatusQualified  Status = "qualified"
	StatusConverted  Status = "converted"
)

// Statuses lists all workflow statuses in order.
var Statuses = []Status{
	StatusUnassigned,
	StatusAssigned,
	StatusContacted,
	StatusQualified,
	StatusConverted,
}

var statusRank = map[Status]int{
	StatusUnassigned: 0,
	StatusAssigned:   1,
	StatusContacted:  2,
	StatusQualified:  3,
	StatusConverted:  4,
}

// ParseStatus normalizes a string to a workflow status.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := statusRank[st]; !ok {
		return "", fmt.Errorf("%w: unknown status %q", ErrValidation, s)
	}
	return st, nil
}

// Rank returns the status's position in the workflow ordering.
func (s Status) Rank() int {
	return statusRank[s]
}

// CanTransition reports whether a move to next is allowed. Forward jumps may
// skip states; equal is a no-op; backward moves are rejected.
func (s Status) CanTransition(next Status) bool {
	return next.Rank() >= s.Rank()
}

// AssigneeType identifies the kind of handler a lead is routed to.
type AssigneeType string

const (
	AssigneeInternalOps       AssigneeType = "internal-ops"
	AssigneeAdjusterPartner   AssigneeType = "adjuster-partner"
	AssigneeContractorPartner AssigneeType = "contractor-partner"
)

// AssigneeTypes lists the valid handler kinds.
var AssigneeTypes = []AssigneeType{
	AssigneeInternalOps,
	AssigneeAdjusterPartner,
	AssigneeContractorPartner,
}

// ParseAssigneeType normalizes a string to a handler kind.
func ParseAssigneeType(s string) (AssigneeType, error) {
	at := AssigneeType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AssigneeTypes {
		if at == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: unknown assignee type %q", ErrValidation, s)
}

// Priority is a lead's outreach urgency.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priorities lists the valid priorities.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// ParsePriority normalizes a string to a priority.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Priorities {
		if p == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: unknown priority %q", ErrValidation, s)
}

// Lead is a routing queue entry joined with a summary of its originating
// loss event. Version is the optimistic concurrency counter; every mutation
// increments it and writers must present the version they last read.
type Lead struct {
	ID           uuid.UUID     `json:"id"`
	EventID      uuid.UUID     `json:"event_id"`
	Status       Status        `json:"status"`
	Priority     Priority      `json:"priority"`
	AssignedTo   *string       `json:"assigned_to"`
	AssigneeType *AssigneeType `json:"assignee_type"`
	Notes        *string       `json:"notes"`
	Version      int           `json:"version"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`

	EventType        events.EventType `json:"event_type"`
	Severity         float64          `json:"severity"`
	ClaimProbability float64          `json:"claim_probability"`
	Zip              string           `json:"zip"`
	IsCommercial     bool             `json:"is_commercial"`
	PropertyType     string           `json:"property_type"`
}

// AdmitCommand requests admission of a loss event into the routing queue.
// Manual creation bypasses the threshold check and the auto-create flag.
type AdmitCommand struct {
	EventID uuid.UUID `json:"event_id"`
	Manual  bool      `json:"manual"`
}

// AssignCommand carries the data for assigning a lead to a handler.
// Notes replace prior notes rather than appending. Version is the caller's
// last-read version counter; zero skips the optimistic check.
type AssignCommand struct {
	AssignedTo   string  `json:"assigned_to"`
	AssigneeType string  `json:"assignee_type"`
	Priority     string  `json:"priority"`
	Notes        *string `json:"notes"`
	Version      int     `json:"version"`
}

// Validate checks assignment preconditions and returns the parsed enums.
func (c AssignCommand) Validate() (string, AssigneeType, Priority, error) {
	name := strings.TrimSpace(c.AssignedTo)
	if name == "" {
		return "", "", "", fmt.Errorf("%w: assigned_to must be non-empty", ErrValidation)
	}

	at, err := ParseAssigneeType(c.AssigneeType)
	if err != nil {
		return "", "", "", err
	}

	p, err := ParsePriority(c.Priority)
	if err != nil {
		return "", "", "", err
	}

	return name, at, p, nil
}

// TransitionCommand requests a status advance. Version is the caller's
// last-read version counter; zero skips the optimistic check.
type TransitionCommand struct {
	Status  string `json:"status"`
	Version int    `json:"version"`
}

// SweepResult summarizes a bulk admission pass over qualifying events.
type SweepResult struct {
	Scanned  int `json:"scanned"`
	Admitted int `json:"admitted"`
	Existing int `json:"existing"`
}

// RoutableResult reports whether a lead passes the current routing filters.
type RoutableResult struct {
	LeadID   uuid.UUID `json:"lead_id"`
	Routable bool      `json:"routable"`
}
