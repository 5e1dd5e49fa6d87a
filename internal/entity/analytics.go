package entity

// AnalyticsSummary is the dashboard's headline numbers. It is recomputed
// from scratch on every request; there is no cache and no identity.
// All monetary totals are in paise, all rates are percentages in [0,100].
type AnalyticsSummary struct {
	TotalRevenuePaise        int64   `json:"total_revenue"`
	SubscriptionRevenuePaise int64   `json:"subscription_revenue"`
	EbookRevenuePaise        int64   `json:"ebook_revenue"`
	ConversionRate           float64 `json:"conversion_rate"`
	RenewalRate              float64 `json:"renewal_rate"`
	AverageSubscriptionPaise int64   `json:"average_subscription_value"`

	ActiveSubscriptions  int `json:"active_subscriptions"`
	ExpiredSubscriptions int `json:"expired_subscriptions"`
	ExpiringWithin7Days  int `json:"expiring_within_7_days"`

	// Payments with no matching access/subscription row at all.
	PendingTelegramAccesses int `json:"pending_telegram_accesses"`
	PendingEbookAccesses    int `json:"pending_ebook_accesses"`
}
