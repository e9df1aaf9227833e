// Package events implements read access to ingested loss events.
// Events are produced by the upstream ingestion pipeline and are immutable
// here; this package only queries them for the console and for lead admission.
package events

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// EventType identifies the hazard catalog entry for a loss event.
type EventType string

const (
	EventHail   EventType = "hail"
	EventWind   EventType = "wind"
	EventFire   EventType = "fire"
	EventFreeze EventType = "freeze"
	EventFlood  EventType = "flood"
)

// EventTypes lists the full hazard catalog.
var EventTypes = []EventType{EventHail, EventWind, EventFire, EventFreeze, EventFlood}

// ParseEventType normalizes a string to a catalog entry.
// Returns false for values outside the catalog.
func ParseEventType(s string) (EventType, bool) {
	et := EventType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range EventTypes {
		if et == known {
			return known, true
		}
	}
	return "", false
}

// LossEvent represents an observed hazard occurrence.
// Severity is an opaque, event-type-specific score: hail severity is
// measured in inches while other types use a 0-100 scale, so it is only
// ever compared against a configured floor, never across types.
type LossEvent struct {
	ID               uuid.UUID `json:"id"`
	EventType        EventType `json:"event_type"`
	Severity         float64   `json:"severity"`
	Zip              string    `json:"zip"`
	Lat              *float64  `json:"lat"`
	Lng              *float64  `json:"lng"`
	ClaimProbability float64   `json:"claim_probability"`
	IsCommercial     bool      `json:"is_commercial"`
	PropertyType     string    `json:"property_type"`
	CreatedAt        time.Time `json:"created_at"`
}

// Residential reports whether the event's property-type tag is residential.
func (e LossEvent) Residential() bool {
	return strings.EqualFold(e.PropertyType, "residential")
}
