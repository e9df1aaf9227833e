package api

import (
	"net/http"

	"github.com/losslocator/locator/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, domain *Domain) {
	routes.Register(
		mux,
		domain.Events.Handler().Routes(),
		domain.Enrichment.Handler().Routes(),
		domain.Thresholds.Handler().Routes(),
		domain.Leads.Handler().Routes(),
	)
}
