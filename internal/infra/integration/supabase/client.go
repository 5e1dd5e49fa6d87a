package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/growthdesk/crm-backend/internal/entity"
	"github.com/growthdesk/crm-backend/internal/usecase"
)

// Collections the dashboard reads and writes through the data API.
const (
	CollectionPayments            = "payments"
	CollectionTelegramSubs        = "telegram_subscriptions"
	CollectionTelegramSubsExpired = "telegram_subscriptions_expired"
	CollectionEbookAccess         = "ebook_access"
	CollectionLeadNotes           = "lead_notes"
	CollectionLeadTasks           = "lead_tasks"
	CollectionSessionSlots        = "session_slots"
)

// Client talks to the PostgREST-dialect data API. Reads always fetch
// full collections; filtering and joining happen in the usecase layer.
type Client struct {
	baseURL    string
	serviceKey string
	http       *http.Client
}

func NewClient(baseURL, serviceKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		http:       &http.Client{Timeout: 10 * time.Second},
	}
}

// ListPayments fetches the full payments collection.
func (c *Client) ListPayments(ctx context.Context) ([]entity.Payment, error) {
	var rows []paymentRow
	if err := c.list(ctx, CollectionPayments, "select=*", &rows); err != nil {
		return nil, err
	}

	payments := make([]entity.Payment, 0, len(rows))
	for _, row := range rows {
		payments = append(payments, row.toEntity())
	}
	return payments, nil
}

// ListActiveSubscriptions fetches the active Telegram subscription collection.
func (c *Client) ListActiveSubscriptions(ctx context.Context) ([]entity.TelegramSubscription, error) {
	return c.listSubscriptions(ctx, CollectionTelegramSubs)
}

// ListExpiredSubscriptions fetches the expired Telegram subscription collection.
func (c *Client) ListExpiredSubscriptions(ctx context.Context) ([]entity.TelegramSubscription, error) {
	return c.listSubscriptions(ctx, CollectionTelegramSubsExpired)
}

func (c *Client) listSubscriptions(ctx context.Context, collection string) ([]entity.TelegramSubscription, error) {
	var rows []telegramSubscriptionRow
	if err := c.list(ctx, collection, "select=*", &rows); err != nil {
		return nil, err
	}

	subs := make([]entity.TelegramSubscription, 0, len(rows))
	for _, row := range rows {
		subs = append(subs, row.toEntity())
	}
	return subs, nil
}

// ListEbookAccess fetches the full ebook_access collection.
func (c *Client) ListEbookAccess(ctx context.Context) ([]entity.EbookAccess, error) {
	var rows []ebookAccessRow
	if err := c.list(ctx, CollectionEbookAccess, "select=*", &rows); err != nil {
		return nil, err
	}

	access := make([]entity.EbookAccess, 0, len(rows))
	for _, row := range rows {
		access = append(access, row.toEntity())
	}
	return access, nil
}

// list performs GET /rest/v1/<collection>?<query> and decodes the JSON
// array into out. A non-array body (PostgREST answers errors with an
// object) becomes a ShapeError instead of a zero-row success.
func (c *Client) list(ctx context.Context, collection, query string, out any) error {
	endpoint := fmt.Sprintf("%s/rest/v1/%s?%s", c.baseURL, collection, query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &usecase.DataSourceError{Collection: collection, Err: err}
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return &usecase.DataSourceError{Collection: collection, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &usecase.DataSourceError{Collection: collection, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &usecase.DataSourceError{
			Collection: collection,
			Status:     resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return &usecase.ShapeError{Collection: collection, Detail: "expected a JSON array"}
	}

	if err := json.Unmarshal(trimmed, out); err != nil {
		return &usecase.ShapeError{Collection: collection, Detail: err.Error()}
	}
	return nil
}

// write performs a mutating request against /rest/v1/<collection>.
func (c *Client) write(ctx context.Context, method, collection, query string, payload any) error {
	endpoint := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, collection)
	if query != "" {
		endpoint += "?" + query
	}

	var reader io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal %s payload: %w", collection, err)
		}
		reader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return &usecase.DataSourceError{Collection: collection, Err: err}
	}
	c.setHeaders(req)
	req.Header.Set("Prefer", "return=minimal")

	resp, err := c.http.Do(req)
	if err != nil {
		return &usecase.DataSourceError{Collection: collection, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return &usecase.DataSourceError{
			Collection: collection,
			Status:     resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}
	return nil
}

func eqID(id string) string {
	return "id=eq." + url.QueryEscape(id)
}

// setHeaders centralizes the mandatory PostgREST headers.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}
