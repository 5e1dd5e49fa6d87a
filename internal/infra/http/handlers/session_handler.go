package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/growthdesk/crm-backend/internal/entity"
	"github.com/growthdesk/crm-backend/internal/usecase"
)

// SessionSlotHandler manages instructor session windows for the
// coaching calendar screen.
type SessionSlotHandler struct {
	Repo entity.SessionSlotRepositoryInterface
}

func NewSessionSlotHandler(repo entity.SessionSlotRepositoryInterface) *SessionSlotHandler {
	return &SessionSlotHandler{Repo: repo}
}

func (h *SessionSlotHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	slots, err := h.Repo.ListSessionSlots(r.Context())
	if err != nil {
		writeSourceError(w, err)
		return
	}
	if slots == nil {
		slots = []entity.SessionSlot{}
	}

	writeJSON(w, http.StatusOK, slots)
}

func (h *SessionSlotHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateSessionSlotInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if errs := usecase.ValidateCreateSessionSlotInput(input); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	slot, err := entity.NewSessionSlot(input.InstructorName, input.StartsAt, input.EndsAt, input.Capacity)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Repo.CreateSessionSlot(r.Context(), slot); err != nil {
		writeSourceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, slot)
}

func (h *SessionSlotHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.DeleteSessionSlot(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeSourceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
