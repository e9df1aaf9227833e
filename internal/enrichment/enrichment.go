// Package enrichment implements read access to property and demographic
// enrichment records. Both are produced by external enrichment jobs and may
// be missing for any given event or zip; callers treat absence as unknown.
package enrichment

import (
	"github.com/google/uuid"
)

// Property is owner and contact enrichment attached to a loss event by address.
// PhonePrimary and PhoneConfidence are nullable: the phone append vendor does
// not resolve every address, and confidence is only meaningful with a number.
type Property struct {
	ID              uuid.UUID `json:"id"`
	EventID         uuid.UUID `json:"event_id"`
	OwnerName       string    `json:"owner_name"`
	PhonePrimary    *string   `json:"phone_primary"`
	PhoneConfidence *float64  `json:"phone_confidence"`
	PropertyClass   string    `json:"property_class"`
}

// HasPhone reports whether the property carries a usable phone number at or
// above the given confidence floor.
func (p Property) HasPhone(minConfidence float64) bool {
	if p.PhonePrimary == nil || *p.PhonePrimary == "" {
		return false
	}
	if p.PhoneConfidence == nil {
		return false
	}
	return *p.PhoneConfidence >= minConfidence
}

// ZipDemographic is income enrichment keyed by zip code.
type ZipDemographic struct {
	Zip              string  `json:"zip"`
	IncomePercentile float64 `json:"income_percentile"`
}
