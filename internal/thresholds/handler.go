package thresholds

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/losslocator/locator/pkg/handlers"
	"github.com/losslocator/locator/pkg/routes"
)

// Handler provides HTTP endpoints for threshold configuration.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "thresholds"),
	}
}

// Routes returns the route group definition for threshold endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/thresholds",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Get},
			{Method: "PUT", Pattern: "", Handler: h.Update},
		},
	}
}

// Get returns the current threshold configuration.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.sys.Get(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, cfg)
}

// Update replaces the threshold configuration with the request body.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var cmd UpdateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	cfg, err := h.sys.Update(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, cfg)
}
