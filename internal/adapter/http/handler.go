package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"log/slog"

	"desk-pacing/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP, exposing on-demand evaluation and the manual pause operation on top
// of the pacing engine.
type Handler struct {
	svc    port.PacingUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. The returned
// Handler registers handlers for each endpoint on a new chi.Router.
func NewHandler(svc port.PacingUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/pacing/campaigns/{campaignID}/evaluate", h.handleEvaluateCampaign)
		r.Post("/pacing/owners/{ownerID}/evaluate", h.handleEvaluateOwner)
		r.Post("/pacing/campaigns/{campaignID}/pause", h.handlePauseCampaign)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
