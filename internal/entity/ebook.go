package entity

import "time"

// EbookAccess is a delivered-eBook row from the data API.
type EbookAccess struct {
	ID          int64      `json:"id"`
	UserEmail   string     `json:"user_email"`
	UserName    string     `json:"user_name"`
	PaymentID   string     `json:"payment_id"`
	AmountPaise int64      `json:"amount"`
	PhoneNumber string     `json:"phone_number,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}
