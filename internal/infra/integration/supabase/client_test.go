package supabase

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/growthdesk/crm-backend/internal/usecase"
)

func TestListPaymentsDecodesLooseShapes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/payments", r.URL.Path)
		assert.Equal(t, "*", r.URL.Query().Get("select"))
		assert.Equal(t, "test-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		// phone as number, amount as float, timestamp without zone:
		// everything the store actually serves.
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"order_id": "o1", "email": "jane.doe@x.com", "phone": 919876543210, "amount": 49900, "product": "ebook_growth", "status": "SUCCESS", "created_at": "2026-08-01T10:30:00"},
			{"order_id": "o2", "email": "raj@x.com", "phone": "+91 98123 45678", "amount": 999.0, "product": "telegram_premium", "status": "FAILED"}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	payments, err := client.ListPayments(context.Background())

	assert.NoError(t, err)
	assert.Len(t, payments, 2)

	assert.Equal(t, "o1", payments[0].OrderID)
	assert.Equal(t, "919876543210", payments[0].Phone)
	assert.Equal(t, int64(49900), payments[0].AmountPaise)
	assert.NotNil(t, payments[0].CreatedAt)

	assert.Equal(t, "+91 98123 45678", payments[1].Phone)
	assert.Equal(t, int64(999), payments[1].AmountPaise)
	assert.Nil(t, payments[1].CreatedAt)
}

func TestListSubscriptionsParsesDates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/telegram_subscriptions", r.URL.Path)
		w.Write([]byte(`[
			{"id": 17, "customer_name": "Jane Doe", "telegram_username": "@janed", "telegram_user_id": 100200300, "phone_number": "9876543210", "plan_name": "Premium", "plan_duration": "3 months", "start_date": "2026-06-01", "expiry_date": "2026-09-01", "email": "jane@x.com"}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	subs, err := client.ListActiveSubscriptions(context.Background())

	assert.NoError(t, err)
	assert.Len(t, subs, 1)
	assert.Equal(t, "17", subs[0].ID)
	assert.Equal(t, "100200300", subs[0].TelegramUserID)
	assert.Equal(t, 2026, subs[0].ExpiryDate.Year())
	assert.Equal(t, 9, int(subs[0].ExpiryDate.Month()))
}

func TestListReturnsDataSourceErrorOnBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"message": "upstream down"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	payments, err := client.ListPayments(context.Background())

	assert.Nil(t, payments)
	assert.True(t, usecase.IsDataSourceError(err))
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "upstream down")
}

func TestListReturnsShapeErrorOnNonArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// PostgREST answers errors with an object, status 200 behind
		// some proxies.
		w.Write([]byte(`{"hint": null, "message": "relation does not exist"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	access, err := client.ListEbookAccess(context.Background())

	assert.Nil(t, access)
	assert.True(t, usecase.IsShapeError(err))
}

func TestListNotesFiltersByLead(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/lead_notes", r.URL.Path)
		assert.Equal(t, "eq.order_99", r.URL.Query().Get("lead_id"))
		w.Write([]byte(`[{"id": "n1", "lead_id": "order_99", "author": "riya", "body": "asked for GST invoice"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	notes, err := client.ListNotes(context.Background(), "order_99")

	assert.NoError(t, err)
	assert.Len(t, notes, 1)
	assert.Equal(t, "asked for GST invoice", notes[0].Body)
}

func TestSetTaskDoneSendsPartialPatch(t *testing.T) {
	var gotMethod, gotQuery, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotQuery = r.URL.RawQuery
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	err := client.SetTaskDone(context.Background(), "t1", true)

	assert.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "id=eq.t1", gotQuery)
	assert.JSONEq(t, `{"done": true}`, gotBody)
}
