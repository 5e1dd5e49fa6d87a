package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/growthdesk/crm-backend/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// UpdateLeadInput is a staff edit applied to the lead overlay.
type UpdateLeadInput struct {
	Status          string     `json:"status,omitempty"`
	LastContactedAt *time.Time `json:"last_contacted_at,omitempty"`
}

func ValidateUpdateLeadInput(input UpdateLeadInput) []ValidationError {
	var errors []ValidationError

	if input.Status == "" && input.LastContactedAt == nil {
		errors = append(errors, ValidationError{"status", "nothing to update"})
	}
	if input.Status != "" && !entity.ValidLeadStatus(input.Status) {
		errors = append(errors, ValidationError{"status", "is not a valid pipeline status"})
	}

	return errors
}

// CreateNoteInput is the annotation form payload.
type CreateNoteInput struct {
	Author string `json:"author,omitempty"`
	Body   string `json:"body"`
}

func ValidateCreateNoteInput(input CreateNoteInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Body) == "" {
		errors = append(errors, ValidationError{"body", "is required"})
	} else if len(input.Body) > 4000 {
		errors = append(errors, ValidationError{"body", "must not exceed 4000 characters"})
	}

	return errors
}

// CreateTaskInput is the follow-up task form payload.
type CreateTaskInput struct {
	Title   string     `json:"title"`
	DueDate *time.Time `json:"due_date,omitempty"`
}

func ValidateCreateTaskInput(input CreateTaskInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Title) == "" {
		errors = append(errors, ValidationError{"title", "is required"})
	} else if len(input.Title) > 300 {
		errors = append(errors, ValidationError{"title", "must not exceed 300 characters"})
	}

	return errors
}

// CreateSessionSlotInput is the instructor slot form payload.
type CreateSessionSlotInput struct {
	InstructorName string    `json:"instructor_name"`
	StartsAt       time.Time `json:"starts_at"`
	EndsAt         time.Time `json:"ends_at"`
	Capacity       int       `json:"capacity"`
}

func ValidateCreateSessionSlotInput(input CreateSessionSlotInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.InstructorName) == "" {
		errors = append(errors, ValidationError{"instructor_name", "is required"})
	}
	if input.StartsAt.IsZero() {
		errors = append(errors, ValidationError{"starts_at", "is required"})
	}
	if input.EndsAt.IsZero() {
		errors = append(errors, ValidationError{"ends_at", "is required"})
	} else if !input.EndsAt.After(input.StartsAt) {
		errors = append(errors, ValidationError{"ends_at", "must be after starts_at"})
	}
	if input.Capacity < 1 {
		errors = append(errors, ValidationError{"capacity", "must be at least 1"})
	}

	return errors
}
