package handlers

import (
	"context"
	"net/http"

	"github.com/growthdesk/crm-backend/internal/entity"
	"github.com/growthdesk/crm-backend/internal/infra/http/middleware"
)

// AnalyticsProvider is what the handler needs from the aggregator.
type AnalyticsProvider interface {
	ComputeSummary(ctx context.Context) (*entity.AnalyticsSummary, error)
	EnhancedSubscriptions(ctx context.Context) ([]entity.EnhancedTelegramSubscription, error)
}

type AnalyticsHandler struct {
	Analytics AnalyticsProvider
}

func NewAnalyticsHandler(analytics AnalyticsProvider) *AnalyticsHandler {
	return &AnalyticsHandler{Analytics: analytics}
}

func (h *AnalyticsHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Analytics.ComputeSummary(r.Context())
	if err != nil {
		middleware.RecordSummary("error")
		writeSourceError(w, err)
		return
	}
	middleware.RecordSummary("ok")

	writeJSON(w, http.StatusOK, summary)
}

func (h *AnalyticsHandler) HandleSubscriptions(w http.ResponseWriter, r *http.Request) {
	subs, err := h.Analytics.EnhancedSubscriptions(r.Context())
	if err != nil {
		writeSourceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, subs)
}
