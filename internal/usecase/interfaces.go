package usecase

import (
	"context"

	"github.com/growthdesk/crm-backend/internal/entity"
)

// DataSource is the read contract of the external data API. Each call
// fetches a full collection; filtering and joining happen here, client
// side. Two reads milliseconds apart may observe different store states,
// which the design accepts.
type DataSource interface {
	ListPayments(ctx context.Context) ([]entity.Payment, error)
	ListActiveSubscriptions(ctx context.Context) ([]entity.TelegramSubscription, error)
	ListExpiredSubscriptions(ctx context.Context) ([]entity.TelegramSubscription, error)
	ListEbookAccess(ctx context.Context) ([]entity.EbookAccess, error)
}
