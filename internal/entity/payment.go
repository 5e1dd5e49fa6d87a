package entity

import (
	"strings"
	"time"
)

// PaymentStatusSuccess is the gateway's marker for a captured payment.
// Every other status (FAILED, PENDING, REFUNDED, ...) is passed through
// untouched.
const PaymentStatusSuccess = "SUCCESS"

// Payment is one row from the payments collection. Amounts are paise.
type Payment struct {
	OrderID     string     `json:"order_id"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	AmountPaise int64      `json:"amount_paise"`
	Product     string     `json:"product"`
	Status      string     `json:"status"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// IsTelegramProduct reports whether the purchase grants Telegram access.
// Classification is by product-name substring; "intimate_talks" is a
// legacy Telegram plan that predates the naming convention.
func (p Payment) IsTelegramProduct() bool {
	product := strings.ToLower(p.Product)
	return strings.Contains(product, "telegram") || strings.Contains(product, "intimate_talks")
}

// IsEbookProduct reports whether the purchase grants eBook access.
func (p Payment) IsEbookProduct() bool {
	return strings.Contains(strings.ToLower(p.Product), "ebook")
}
