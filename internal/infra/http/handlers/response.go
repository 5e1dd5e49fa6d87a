package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/growthdesk/crm-backend/internal/infra/http/middleware"
	"github.com/growthdesk/crm-backend/internal/usecase"
)

type errorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeValidationErrors(w http.ResponseWriter, errs []usecase.ValidationError) {
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Error())
	}
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Error:  "validation failed",
		Fields: fields,
	})
}

// writeSourceError maps data-API failures to 502 so the dashboard can
// show its retry affordance, and anything else to 500.
func writeSourceError(w http.ResponseWriter, err error) {
	switch {
	case usecase.IsDataSourceError(err):
		middleware.RecordDataAPIError("unavailable")
		writeError(w, http.StatusBadGateway, err.Error())
	case usecase.IsShapeError(err):
		middleware.RecordDataAPIError("shape")
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
