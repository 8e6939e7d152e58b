package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"desk-pacing/internal/core/domain"
)

// handleEvaluateCampaign recomputes budget state for a single campaign and
// returns the snapshot, derived alerts and any pause decision taken. An
// unparseable id results in HTTP 400, an unknown campaign in 404 and a
// campaign in a non-evaluable state (draft, completed, not yet started) in
// 422. Store failures never leak details to the client.
func (h *Handler) handleEvaluateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "campaignID"))
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	ev, err := h.svc.EvaluateCampaign(r.Context(), id)
	if err != nil {
		h.respondEvaluationError(w, err)
		return
	}
	h.writeJSON(w, ev)
}

// handleEvaluateOwner evaluates all active and paused campaigns of one
// owner. The response is the list of per-campaign evaluations; campaigns
// skipped because of local errors are simply absent from the list.
func (h *Handler) handleEvaluateOwner(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, "ownerID")
	if ownerID == "" {
		http.Error(w, "missing owner id", http.StatusBadRequest)
		return
	}
	results, err := h.svc.EvaluateAllForOwner(r.Context(), ownerID)
	if err != nil {
		h.respondEvaluationError(w, err)
		return
	}
	h.writeJSON(w, results)
}

func (h *Handler) respondEvaluationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrCampaignNotFound):
		http.Error(w, "campaign not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidCampaignState), errors.Is(err, domain.ErrCampaignNotStarted):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		h.logger.Error("evaluation error", slog.Any("error", err))
		http.Error(w, "pacing data temporarily unavailable", http.StatusInternalServerError)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; log and give up on the response
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
