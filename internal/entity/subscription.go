package entity

import "time"

// Derived subscription statuses. Collection membership decides the base
// label: rows from telegram_subscriptions are active, rows from
// telegram_subscriptions_expired are expired. Pending entries are
// synthesized from payments with no subscription row at all.
const (
	SubscriptionStatusActive  = "active"
	SubscriptionStatusExpired = "expired"
	SubscriptionStatusPending = "pending"
)

// TelegramSubscription is a channel membership row from the data API.
// The same logical subscriber can appear in both the active and the
// expired collection after a renewal; there is no single canonical store.
type TelegramSubscription struct {
	ID               string    `json:"id"`
	CustomerName     string    `json:"customer_name"`
	TelegramUsername string    `json:"telegram_username"`
	TelegramUserID   string    `json:"telegram_user_id"`
	PhoneNumber      string    `json:"phone_number,omitempty"`
	PlanName         string    `json:"plan_name"`
	PlanDuration     string    `json:"plan_duration"`
	StartDate        time.Time `json:"start_date"`
	ExpiryDate       time.Time `json:"expiry_date"`
	Email            string    `json:"email,omitempty"`
}

// EnhancedTelegramSubscription is a subscription augmented with the
// computed status and a payment cross-reference. Pending entries carry
// the payment order id as a surrogate ID and must never be written back
// as real subscription rows.
type EnhancedTelegramSubscription struct {
	TelegramSubscription

	Status        string `json:"status"`
	DaysRemaining int    `json:"days_remaining"`
	HasPayment    bool   `json:"has_payment"`
	PaymentID     string `json:"payment_id,omitempty"`
}
