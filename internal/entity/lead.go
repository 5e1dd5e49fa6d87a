package entity

import (
	"context"
	"time"
)

// Lead pipeline statuses. Only "new" and "contacted" are derived from
// payments; the rest are reachable through staff edits via the overlay.
const (
	LeadStatusNew         = "new"
	LeadStatusContacted   = "contacted"
	LeadStatusQualified   = "qualified"
	LeadStatusNegotiation = "negotiation"
	LeadStatusClosedWon   = "closed-won"
	LeadStatusClosedLost  = "closed-lost"
)

// ValidLeadStatus reports whether s is one of the pipeline statuses.
func ValidLeadStatus(s string) bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified,
		LeadStatusNegotiation, LeadStatusClosedWon, LeadStatusClosedLost:
		return true
	}
	return false
}

// Lead is a sales-pipeline entity synthesized from a payment record.
// There is no durable lead row: the ID is the payment's order id and
// everything except overlay edits is re-derived on every read.
type Lead struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Company         string     `json:"company"` // product slug, not a real company
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	Status          string     `json:"status"`
	ValuePaise      int64      `json:"value"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
	LastContactedAt *time.Time `json:"last_contacted_at,omitempty"`

	TelegramSubscriptionID  string `json:"telegram_subscription_id,omitempty"`
	EbookAccessID           int64  `json:"ebook_access_id,omitempty"`
	HasTelegramSubscription bool   `json:"has_telegram_subscription"`
	HasEbookAccess          bool   `json:"has_ebook_access"`
}

// LeadOverlay holds the staff-editable fields of a lead. Leads are
// re-derived from payments on every fetch, so edits live in their own
// table keyed by the payment order id and are merged in on read.
type LeadOverlay struct {
	LeadID          string     `json:"lead_id"`
	Status          string     `json:"status"`
	LastContactedAt *time.Time `json:"last_contacted_at,omitempty"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type LeadOverlayRepositoryInterface interface {
	Upsert(ctx context.Context, overlay *LeadOverlay) error
	FindAll(ctx context.Context) (map[string]*LeadOverlay, error)
}

// ApplyOverlay copies staff edits onto a derived lead.
func (l *Lead) ApplyOverlay(o *LeadOverlay) {
	if o == nil {
		return
	}
	if o.Status != "" {
		l.Status = o.Status
	}
	if o.LastContactedAt != nil {
		l.LastContactedAt = o.LastContactedAt
	}
}
