package enrichment

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/losslocator/locator/pkg/handlers"
	"github.com/losslocator/locator/pkg/routes"
)

// Handler provides HTTP endpoints for enrichment lookups backing the
// console's property detail panel.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "enrichment"),
	}
}

// Routes returns the route group definition for enrichment endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/enrichment",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/property/event/{id}", Handler: h.FindPropertyByEvent},
			{Method: "GET", Pattern: "/demographic/{zip}", Handler: h.FindDemographicByZip},
		},
	}
}

// FindPropertyByEvent returns the property enrichment for a loss event UUID path parameter.
func (h *Handler) FindPropertyByEvent(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	p, err := h.sys.FindPropertyByEvent(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, p)
}

// FindDemographicByZip returns the demographic record for a zip code path parameter.
func (h *Handler) FindDemographicByZip(w http.ResponseWriter, r *http.Request) {
	zip := strings.TrimSpace(r.PathValue("zip"))
	if zip == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	z, err := h.sys.FindDemographicByZip(r.Context(), zip)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, z)
}
