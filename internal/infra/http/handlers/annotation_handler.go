package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/growthdesk/crm-backend/internal/entity"
	"github.com/growthdesk/crm-backend/internal/usecase"
)

// AnnotationHandler serves the notes/tasks staff attach to leads. Rows
// live in the data store like everything else; this service owns the
// lead_notes and lead_tasks collections.
type AnnotationHandler struct {
	Repo entity.AnnotationRepositoryInterface
}

func NewAnnotationHandler(repo entity.AnnotationRepositoryInterface) *AnnotationHandler {
	return &AnnotationHandler{Repo: repo}
}

func (h *AnnotationHandler) HandleListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.Repo.ListNotes(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeSourceError(w, err)
		return
	}
	if notes == nil {
		notes = []entity.Note{}
	}

	writeJSON(w, http.StatusOK, notes)
}

func (h *AnnotationHandler) HandleCreateNote(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateNoteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if errs := usecase.ValidateCreateNoteInput(input); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	note, err := entity.NewNote(chi.URLParam(r, "id"), input.Author, input.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Repo.CreateNote(r.Context(), note); err != nil {
		writeSourceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, note)
}

func (h *AnnotationHandler) HandleDeleteNote(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.DeleteNote(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeSourceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AnnotationHandler) HandleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.Repo.ListTasks(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeSourceError(w, err)
		return
	}
	if tasks == nil {
		tasks = []entity.Task{}
	}

	writeJSON(w, http.StatusOK, tasks)
}

func (h *AnnotationHandler) HandleCreateTask(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateTaskInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if errs := usecase.ValidateCreateTaskInput(input); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	task, err := entity.NewTask(chi.URLParam(r, "id"), input.Title, input.DueDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Repo.CreateTask(r.Context(), task); err != nil {
		writeSourceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

type updateTaskRequest struct {
	Done *bool `json:"done"`
}

func (h *AnnotationHandler) HandleUpdateTask(w http.ResponseWriter, r *http.Request) {
	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Done == nil {
		writeError(w, http.StatusBadRequest, "done is required")
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.Repo.SetTaskDone(r.Context(), id, *req.Done); err != nil {
		writeSourceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"id": id, "done": *req.Done})
}
