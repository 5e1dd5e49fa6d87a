package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Note is a free-text annotation staff attach to a lead.
type Note struct {
	ID        string    `json:"id"`
	LeadID    string    `json:"lead_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// NewNote creates a note with validations
func NewNote(leadID, author, body string) (*Note, error) {
	if leadID == "" {
		return nil, errors.New("lead_id is required")
	}
	if body == "" {
		return nil, errors.New("body is required")
	}

	return &Note{
		ID:        uuid.New().String(),
		LeadID:    leadID,
		Author:    author,
		Body:      body,
		CreatedAt: time.Now(),
	}, nil
}

// Task is a follow-up item on a lead (call back, send invoice, etc).
type Task struct {
	ID        string     `json:"id"`
	LeadID    string     `json:"lead_id"`
	Title     string     `json:"title"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	Done      bool       `json:"done"`
	CreatedAt time.Time  `json:"created_at"`
}

// NewTask creates a task with validations
func NewTask(leadID, title string, dueDate *time.Time) (*Task, error) {
	if leadID == "" {
		return nil, errors.New("lead_id is required")
	}
	if title == "" {
		return nil, errors.New("title is required")
	}

	return &Task{
		ID:        uuid.New().String(),
		LeadID:    leadID,
		Title:     title,
		DueDate:   dueDate,
		CreatedAt: time.Now(),
	}, nil
}

// AnnotationRepositoryInterface is the contract the annotation handlers
// use to persist notes and tasks through the data API.
type AnnotationRepositoryInterface interface {
	CreateNote(ctx context.Context, note *Note) error
	ListNotes(ctx context.Context, leadID string) ([]Note, error)
	DeleteNote(ctx context.Context, id string) error

	CreateTask(ctx context.Context, task *Task) error
	ListTasks(ctx context.Context, leadID string) ([]Task, error)
	SetTaskDone(ctx context.Context, id string, done bool) error
}
