package usecase

import (
	"context"
	"math"
	"time"

	"github.com/growthdesk/crm-backend/internal/entity"
	"github.com/growthdesk/crm-backend/internal/identity"
)

// AnalyticsUseCase computes read-only summary analytics and the
// per-subscription status view. Nothing is cached and no source data is
// mutated; every call works on fresh snapshots and aborts on the first
// source failure.
type AnalyticsUseCase struct {
	Source DataSource
	Now    func() time.Time
}

func NewAnalyticsUseCase(source DataSource) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		Source: source,
		Now:    time.Now,
	}
}

// EnhancedSubscriptions returns every subscription with its computed
// status plus synthesized pending entries for Telegram-flagged payments
// that never produced a subscription row. Collection membership decides
// the base label, so a renewed subscriber appears twice: once active,
// once expired.
func (uc *AnalyticsUseCase) EnhancedSubscriptions(ctx context.Context) ([]entity.EnhancedTelegramSubscription, error) {
	active, err := uc.Source.ListActiveSubscriptions(ctx)
	if err != nil {
		return nil, err
	}
	expired, err := uc.Source.ListExpiredSubscriptions(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := uc.Source.ListPayments(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.Now()
	out := make([]entity.EnhancedTelegramSubscription, 0, len(active)+len(expired))

	for _, sub := range active {
		enhanced := entity.EnhancedTelegramSubscription{
			TelegramSubscription: sub,
			Status:               entity.SubscriptionStatusActive,
			DaysRemaining:        daysRemaining(sub.ExpiryDate, now),
		}
		// Cross-reference against ALL payments, not just Telegram-flagged
		// ones: an unrelated purchase with the same email/phone counts.
		// Accepted approximation, kept from the original dashboard.
		crossReferencePayment(&enhanced, payments)
		out = append(out, enhanced)
	}

	for _, sub := range expired {
		enhanced := entity.EnhancedTelegramSubscription{
			TelegramSubscription: sub,
			Status:               entity.SubscriptionStatusExpired,
		}
		crossReferencePayment(&enhanced, payments)
		out = append(out, enhanced)
	}

	// Pending: a Telegram purchase the bot never provisioned. The payment
	// order id stands in as the key; these are not real subscription rows
	// and must never be written back as such.
	for _, p := range payments {
		if !p.IsTelegramProduct() {
			continue
		}
		if hasSubscriptionFor(p, active) || hasSubscriptionFor(p, expired) {
			continue
		}
		out = append(out, entity.EnhancedTelegramSubscription{
			TelegramSubscription: entity.TelegramSubscription{
				ID:           p.OrderID,
				CustomerName: nameFromEmail(p.Email),
				PhoneNumber:  p.Phone,
				PlanName:     p.Product,
				Email:        p.Email,
			},
			Status:     entity.SubscriptionStatusPending,
			HasPayment: true,
			PaymentID:  p.OrderID,
		})
	}

	return out, nil
}

// ComputeSummary derives the dashboard's headline metrics. Every rate
// denominator is guarded: zero denominator yields 0, never NaN or Inf.
func (uc *AnalyticsUseCase) ComputeSummary(ctx context.Context) (*entity.AnalyticsSummary, error) {
	payments, err := uc.Source.ListPayments(ctx)
	if err != nil {
		return nil, err
	}
	active, err := uc.Source.ListActiveSubscriptions(ctx)
	if err != nil {
		return nil, err
	}
	expired, err := uc.Source.ListExpiredSubscriptions(ctx)
	if err != nil {
		return nil, err
	}
	access, err := uc.Source.ListEbookAccess(ctx)
	if err != nil {
		return nil, err
	}

	summary := &entity.AnalyticsSummary{
		ActiveSubscriptions:  len(active),
		ExpiredSubscriptions: len(expired),
	}

	var telegramPayments int64
	for _, p := range payments {
		summary.TotalRevenuePaise += p.AmountPaise
		// A product naming both "telegram" and "ebook" double-counts.
		// Known edge case, kept.
		if p.IsTelegramProduct() {
			summary.SubscriptionRevenuePaise += p.AmountPaise
			telegramPayments++
			if !hasSubscriptionFor(p, active) && !hasSubscriptionFor(p, expired) {
				summary.PendingTelegramAccesses++
			}
		}
		if p.IsEbookProduct() {
			summary.EbookRevenuePaise += p.AmountPaise
			if !hasAccessFor(p, access) {
				summary.PendingEbookAccesses++
			}
		}
	}

	summary.ConversionRate = rate(int64(len(active)+len(expired)), telegramPayments)
	summary.RenewalRate = rate(int64(countRenewals(active, expired)), int64(len(expired)))
	if telegramPayments > 0 {
		summary.AverageSubscriptionPaise = summary.SubscriptionRevenuePaise / telegramPayments
	}

	now := uc.Now()
	for _, sub := range active {
		if d := daysRemaining(sub.ExpiryDate, now); d <= 7 {
			summary.ExpiringWithin7Days++
		}
	}

	return summary, nil
}

// ExpiringSoon returns the active subscriptions whose remaining days
// fall inside the follow-up window. Feeds the reminder worker.
func (uc *AnalyticsUseCase) ExpiringSoon(ctx context.Context, windowDays int) ([]entity.EnhancedTelegramSubscription, error) {
	active, err := uc.Source.ListActiveSubscriptions(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.Now()
	var out []entity.EnhancedTelegramSubscription
	for _, sub := range active {
		d := daysRemaining(sub.ExpiryDate, now)
		if d <= windowDays && now.Before(sub.ExpiryDate) {
			out = append(out, entity.EnhancedTelegramSubscription{
				TelegramSubscription: sub,
				Status:               entity.SubscriptionStatusActive,
				DaysRemaining:        d,
			})
		}
	}
	return out, nil
}

// daysRemaining is ceil((expiry - now) / 24h), floored at 0.
func daysRemaining(expiry, now time.Time) int {
	days := int(math.Ceil(expiry.Sub(now).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// rate returns numerator/denominator as a percentage clamped to [0,100];
// a zero denominator yields 0.
func rate(numerator, denominator int64) float64 {
	if denominator == 0 {
		return 0
	}
	pct := float64(numerator) / float64(denominator) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

func hasSubscriptionFor(p entity.Payment, subs []entity.TelegramSubscription) bool {
	paymentID := identity.NewIdentity(p.Phone, p.Email)
	for _, sub := range subs {
		if identity.Match(paymentID, identity.NewIdentity(sub.PhoneNumber, sub.Email)) {
			return true
		}
	}
	return false
}

func hasAccessFor(p entity.Payment, access []entity.EbookAccess) bool {
	paymentID := identity.NewIdentity(p.Phone, p.Email)
	for _, acc := range access {
		if identity.Match(paymentID, identity.NewIdentity(acc.PhoneNumber, acc.UserEmail)) {
			return true
		}
	}
	return false
}

func crossReferencePayment(sub *entity.EnhancedTelegramSubscription, payments []entity.Payment) {
	subID := identity.NewIdentity(sub.PhoneNumber, sub.Email)
	for _, p := range payments {
		if identity.Match(subID, identity.NewIdentity(p.Phone, p.Email)) {
			sub.HasPayment = true
			sub.PaymentID = p.OrderID
			return
		}
	}
}

// countRenewals counts active subscriptions whose identity also appears
// in the expired collection, meaning the subscriber came back.
func countRenewals(active, expired []entity.TelegramSubscription) int {
	count := 0
	for _, a := range active {
		activeID := identity.NewIdentity(a.PhoneNumber, a.Email)
		for _, e := range expired {
			if identity.Match(activeID, identity.NewIdentity(e.PhoneNumber, e.Email)) {
				count++
				break
			}
		}
	}
	return count
}
