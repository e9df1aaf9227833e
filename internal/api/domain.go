package api

import (
	"github.com/losslocator/locator/internal/enrichment"
	"github.com/losslocator/locator/internal/events"
	"github.com/losslocator/locator/internal/leads"
	"github.com/losslocator/locator/internal/thresholds"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Events     events.System
	Enrichment enrichment.System
	Thresholds thresholds.System
	Leads      leads.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	eventsSystem := events.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	enrichmentSystem := enrichment.New(
		runtime.Database.Connection(),
		runtime.Logger,
	)

	thresholdsSystem := thresholds.New(
		runtime.Database.Connection(),
		runtime.Logger,
	)

	leadsSystem := leads.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
		eventsSystem,
		enrichmentSystem,
		thresholdsSystem,
	)

	return &Domain{
		Events:     eventsSystem,
		Enrichment: enrichmentSystem,
		Thresholds: thresholdsSystem,
		Leads:      leadsSystem,
	}
}
