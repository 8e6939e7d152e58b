package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// handlePauseCampaign applies the guarded active → paused transition on
// operator request. Pausing an already paused campaign returns a no-op
// outcome rather than an error, matching the idempotency of the automatic
// path.
func (h *Handler) handlePauseCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "campaignID"))
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	outcome, err := h.svc.PauseCampaign(r.Context(), id)
	if err != nil {
		h.respondEvaluationError(w, err)
		return
	}
	h.writeJSON(w, outcome)
}
