package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// SessionSlot is a bookable coaching/session window for an instructor.
type SessionSlot struct {
	ID             string    `json:"id"`
	InstructorName string    `json:"instructor_name"`
	StartsAt       time.Time `json:"starts_at"`
	EndsAt         time.Time `json:"ends_at"`
	Capacity       int       `json:"capacity"`
	Booked         int       `json:"booked"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewSessionSlot creates a slot with validations
func NewSessionSlot(instructorName string, startsAt, endsAt time.Time, capacity int) (*SessionSlot, error) {
	if instructorName == "" {
		return nil, errors.New("instructor_name is required")
	}
	if !endsAt.After(startsAt) {
		return nil, errors.New("ends_at must be after starts_at")
	}
	if capacity < 1 {
		return nil, errors.New("capacity must be at least 1")
	}

	return &SessionSlot{
		ID:             uuid.New().String(),
		InstructorName: instructorName,
		StartsAt:       startsAt,
		EndsAt:         endsAt,
		Capacity:       capacity,
		CreatedAt:      time.Now(),
	}, nil
}

type SessionSlotRepositoryInterface interface {
	CreateSessionSlot(ctx context.Context, slot *SessionSlot) error
	ListSessionSlots(ctx context.Context) ([]SessionSlot, error)
	DeleteSessionSlot(ctx context.Context, id string) error
}
