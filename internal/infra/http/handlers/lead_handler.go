package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/growthdesk/crm-backend/internal/entity"
	"github.com/growthdesk/crm-backend/internal/infra/http/middleware"
	"github.com/growthdesk/crm-backend/internal/usecase"
)

// LeadUnifier is what the handler needs from the unification usecase.
type LeadUnifier interface {
	Execute(ctx context.Context) ([]entity.Lead, error)
}

type LeadHandler struct {
	Unifier     LeadUnifier
	OverlayRepo entity.LeadOverlayRepositoryInterface
}

func NewLeadHandler(unifier LeadUnifier, overlayRepo entity.LeadOverlayRepositoryInterface) *LeadHandler {
	return &LeadHandler{
		Unifier:     unifier,
		OverlayRepo: overlayRepo,
	}
}

// HandleList serves the unified lead list the dashboard renders. It
// either returns the complete, fully-linked list or an error, never a
// partially-linked one.
func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Unifier.Execute(r.Context())
	if err != nil {
		middleware.RecordUnification("error")
		writeSourceError(w, err)
		return
	}
	middleware.RecordUnification("ok")

	writeJSON(w, http.StatusOK, leads)
}

// HandleUpdate applies a staff edit (pipeline status, last contacted)
// to the lead overlay. The derived lead itself is untouched.
func (h *LeadHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "id")

	var input usecase.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if errs := usecase.ValidateUpdateLeadInput(input); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	overlay := &entity.LeadOverlay{
		LeadID:          leadID,
		Status:          input.Status,
		LastContactedAt: input.LastContactedAt,
	}
	if input.Status == entity.LeadStatusContacted && input.LastContactedAt == nil {
		now := time.Now()
		overlay.LastContactedAt = &now
	}

	if err := h.OverlayRepo.Upsert(r.Context(), overlay); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save lead edit")
		return
	}

	writeJSON(w, http.StatusOK, overlay)
}
