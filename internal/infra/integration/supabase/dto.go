package supabase

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/growthdesk/crm-backend/internal/entity"
)

// flexString absorbs fields the store serves inconsistently as string
// or number (phone numbers and legacy ids, mostly). Everything becomes
// a string at this boundary so the rest of the service never sees the
// ambiguity.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == "" {
		*f = ""
		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// flexTime parses the store's timestamp flavours: RFC3339 with or
// without zone, and bare dates.
type flexTime struct {
	t  time.Time
	ok bool
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (f *flexTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil || s == "" {
		*f = flexTime{}
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*f = flexTime{t: t, ok: true}
			return nil
		}
	}
	*f = flexTime{}
	return nil
}

func (f flexTime) ptr() *time.Time {
	if !f.ok {
		return nil
	}
	t := f.t
	return &t
}

type paymentRow struct {
	OrderID   flexString  `json:"order_id"`
	Email     string      `json:"email"`
	Phone     flexString  `json:"phone"`
	Amount    json.Number `json:"amount"`
	Product   string      `json:"product"`
	Status    string      `json:"status"`
	CreatedAt flexTime    `json:"created_at"`
}

func (r paymentRow) toEntity() entity.Payment {
	return entity.Payment{
		OrderID:     string(r.OrderID),
		Email:       r.Email,
		Phone:       string(r.Phone),
		AmountPaise: paiseFromNumber(r.Amount),
		Product:     r.Product,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt.ptr(),
	}
}

type telegramSubscriptionRow struct {
	ID               flexString `json:"id"`
	CustomerName     string     `json:"customer_name"`
	TelegramUsername string     `json:"telegram_username"`
	TelegramUserID   flexString `json:"telegram_user_id"`
	PhoneNumber      flexString `json:"phone_number"`
	PlanName         string     `json:"plan_name"`
	PlanDuration     string     `json:"plan_duration"`
	StartDate        flexTime   `json:"start_date"`
	ExpiryDate       flexTime   `json:"expiry_date"`
	Email            string     `json:"email"`
}

func (r telegramSubscriptionRow) toEntity() entity.TelegramSubscription {
	return entity.TelegramSubscription{
		ID:               string(r.ID),
		CustomerName:     r.CustomerName,
		TelegramUsername: r.TelegramUsername,
		TelegramUserID:   string(r.TelegramUserID),
		PhoneNumber:      string(r.PhoneNumber),
		PlanName:         r.PlanName,
		PlanDuration:     r.PlanDuration,
		StartDate:        r.StartDate.t,
		ExpiryDate:       r.ExpiryDate.t,
		Email:            r.Email,
	}
}

type ebookAccessRow struct {
	ID          json.Number `json:"id"`
	UserEmail   string      `json:"user_email"`
	UserName    string      `json:"user_name"`
	PaymentID   flexString  `json:"payment_id"`
	Amount      json.Number `json:"amount"`
	PhoneNumber flexString  `json:"phone_number"`
	CreatedAt   flexTime    `json:"created_at"`
}

func (r ebookAccessRow) toEntity() entity.EbookAccess {
	id, _ := r.ID.Int64()
	return entity.EbookAccess{
		ID:          id,
		UserEmail:   r.UserEmail,
		UserName:    r.UserName,
		PaymentID:   string(r.PaymentID),
		AmountPaise: paiseFromNumber(r.Amount),
		PhoneNumber: string(r.PhoneNumber),
		CreatedAt:   r.CreatedAt.ptr(),
	}
}

// paiseFromNumber converts the store's amount to paise. The canonical
// unit is paise from here onward; a fractional amount slipped in as
// rupees is rounded to the nearest paise-representable integer.
func paiseFromNumber(n json.Number) int64 {
	if n == "" {
		return 0
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return int64(f + 0.5)
	}
	if i, err := strconv.ParseInt(strings.TrimSpace(n.String()), 10, 64); err == nil {
		return i
	}
	return 0
}
