package usecase

import (
	"strings"

	"github.com/growthdesk/crm-backend/internal/entity"
)

// SynthesizeLeads maps each payment to exactly one lead, in input order.
// Pure: same payments in, same leads out.
func SynthesizeLeads(payments []entity.Payment) []entity.Lead {
	leads := make([]entity.Lead, 0, len(payments))
	for _, p := range payments {
		leads = append(leads, entity.Lead{
			ID:         p.OrderID,
			Name:       nameFromEmail(p.Email),
			Company:    p.Product,
			Email:      p.Email,
			Phone:      p.Phone,
			Status:     leadStatusFromPayment(p.Status),
			ValuePaise: p.AmountPaise,
			CreatedAt:  p.CreatedAt,
		})
	}
	return leads
}

// nameFromEmail derives a display name from the email local part:
// "jane.doe@x.com" -> "Jane Doe". The name is cosmetic, never
// authoritative.
func nameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		return ""
	}

	parts := strings.Split(local, ".")
	for i, part := range parts {
		parts[i] = capitalize(part)
	}
	return strings.Join(parts, " ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// leadStatusFromPayment is a coarse, intentionally lossy mapping: a
// successful payment is a fresh lead, anything else means someone
// already had to chase it.
func leadStatusFromPayment(paymentStatus string) string {
	if paymentStatus == entity.PaymentStatusSuccess {
		return entity.LeadStatusNew
	}
	return entity.LeadStatusContacted
}
