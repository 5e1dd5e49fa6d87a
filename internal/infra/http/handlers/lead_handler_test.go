package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/growthdesk/crm-backend/internal/entity"
	"github.com/growthdesk/crm-backend/internal/usecase"
)

// MockUnifier
type MockUnifier struct {
	mock.Mock
}

func (m *MockUnifier) Execute(ctx context.Context) ([]entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

// MockOverlayRepo
type MockOverlayRepo struct {
	mock.Mock
}

func (m *MockOverlayRepo) Upsert(ctx context.Context, overlay *entity.LeadOverlay) error {
	args := m.Called(ctx, overlay)
	return args.Error(0)
}

func (m *MockOverlayRepo) FindAll(ctx context.Context) (map[string]*entity.LeadOverlay, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]*entity.LeadOverlay), args.Error(1)
}

func TestHandleListReturnsLeads(t *testing.T) {
	unifier := new(MockUnifier)
	unifier.On("Execute", mock.Anything).Return([]entity.Lead{
		{ID: "o1", Name: "Jane Doe", Status: entity.LeadStatusNew},
	}, nil)

	h := NewLeadHandler(unifier, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Jane Doe"`)
}

func TestHandleListMapsSourceFailureTo502(t *testing.T) {
	unifier := new(MockUnifier)
	unifier.On("Execute", mock.Anything).Return(nil, &usecase.DataSourceError{
		Collection: "payments", Status: 500, Body: "boom",
	})

	h := NewLeadHandler(unifier, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandleUpdateUpsertsOverlay(t *testing.T) {
	overlayRepo := new(MockOverlayRepo)
	overlayRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(o *entity.LeadOverlay) bool {
		return o.LeadID == "o1" && o.Status == entity.LeadStatusQualified
	})).Return(nil)

	h := NewLeadHandler(nil, overlayRepo)

	r := chi.NewRouter()
	r.Patch("/api/leads/{id}", h.HandleUpdate)

	req := httptest.NewRequest(http.MethodPatch, "/api/leads/o1", strings.NewReader(`{"status": "qualified"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	overlayRepo.AssertExpectations(t)
}

func TestHandleUpdateRejectsUnknownStatus(t *testing.T) {
	h := NewLeadHandler(nil, new(MockOverlayRepo))

	r := chi.NewRouter()
	r.Patch("/api/leads/{id}", h.HandleUpdate)

	req := httptest.NewRequest(http.MethodPatch, "/api/leads/o1", strings.NewReader(`{"status": "SUCCESS"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation failed")
}

func TestHandleUpdateRejectsEmptyEdit(t *testing.T) {
	h := NewLeadHandler(nil, new(MockOverlayRepo))

	r := chi.NewRouter()
	r.Patch("/api/leads/{id}", h.HandleUpdate)

	req := httptest.NewRequest(http.MethodPatch, "/api/leads/o1", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
