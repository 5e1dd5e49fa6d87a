package supabase

import (
	"context"
	"net/http"
	"net/url"

	"github.com/growthdesk/crm-backend/internal/entity"
)

// Notes, tasks and session slots are regular store rows owned by this
// service, written through the same PostgREST surface the core reads
// from. Lists for a lead are filtered server side; everything else is
// the plain id=eq.<id> dialect.

func (c *Client) CreateNote(ctx context.Context, note *entity.Note) error {
	return c.write(ctx, http.MethodPost, CollectionLeadNotes, "", note)
}

func (c *Client) ListNotes(ctx context.Context, leadID string) ([]entity.Note, error) {
	query := "select=*&order=created_at.desc&lead_id=eq." + url.QueryEscape(leadID)

	var notes []entity.Note
	if err := c.list(ctx, CollectionLeadNotes, query, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *Client) DeleteNote(ctx context.Context, id string) error {
	return c.write(ctx, http.MethodDelete, CollectionLeadNotes, eqID(id), nil)
}

func (c *Client) CreateTask(ctx context.Context, task *entity.Task) error {
	return c.write(ctx, http.MethodPost, CollectionLeadTasks, "", task)
}

func (c *Client) ListTasks(ctx context.Context, leadID string) ([]entity.Task, error) {
	query := "select=*&order=created_at.desc&lead_id=eq." + url.QueryEscape(leadID)

	var tasks []entity.Task
	if err := c.list(ctx, CollectionLeadTasks, query, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) SetTaskDone(ctx context.Context, id string, done bool) error {
	return c.write(ctx, http.MethodPatch, CollectionLeadTasks, eqID(id), map[string]bool{"done": done})
}

func (c *Client) CreateSessionSlot(ctx context.Context, slot *entity.SessionSlot) error {
	return c.write(ctx, http.MethodPost, CollectionSessionSlots, "", slot)
}

func (c *Client) ListSessionSlots(ctx context.Context) ([]entity.SessionSlot, error) {
	var slots []entity.SessionSlot
	if err := c.list(ctx, CollectionSessionSlots, "select=*&order=starts_at.asc", &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func (c *Client) DeleteSessionSlot(ctx context.Context, id string) error {
	return c.write(ctx, http.MethodDelete, CollectionSessionSlots, eqID(id), nil)
}
