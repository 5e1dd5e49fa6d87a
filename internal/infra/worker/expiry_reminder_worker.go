package worker

import (
	"context"
	"log"
	"time"

	"github.com/growthdesk/crm-backend/internal/entity"
	"github.com/growthdesk/crm-backend/internal/infra/http/middleware"
	"github.com/growthdesk/crm-backend/internal/infra/queue"
)

// ExpiringSoonProvider is what the worker needs from the analytics
// aggregator.
type ExpiringSoonProvider interface {
	ExpiringSoon(ctx context.Context, windowDays int) ([]entity.EnhancedTelegramSubscription, error)
}

// ExpiryReminderWorker periodically finds subscriptions inside the
// follow-up window and publishes one reminder per subscriber. The sent
// set keys on (subscription id, expiry date) so a renewal with a new
// expiry gets nudged again but nobody is spammed within one cycle.
type ExpiryReminderWorker struct {
	analytics    ExpiringSoonProvider
	producer     queue.ReminderProducerInterface
	windowDays   int
	tickInterval time.Duration

	sent map[string]bool
}

func NewExpiryReminderWorker(analytics ExpiringSoonProvider, producer queue.ReminderProducerInterface) *ExpiryReminderWorker {
	return &ExpiryReminderWorker{
		analytics:    analytics,
		producer:     producer,
		windowDays:   7,
		tickInterval: 6 * time.Hour,
		sent:         make(map[string]bool),
	}
}

func (w *ExpiryReminderWorker) Start(ctx context.Context) {
	log.Printf("[REMINDER] worker started (%d day window, every %s)", w.windowDays, w.tickInterval)

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.publishReminders(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("[REMINDER] worker stopped")
			return
		case <-ticker.C:
			w.publishReminders(ctx)
		}
	}
}

func (w *ExpiryReminderWorker) publishReminders(ctx context.Context) {
	expiring, err := w.analytics.ExpiringSoon(ctx, w.windowDays)
	if err != nil {
		log.Printf("[REMINDER] failed to compute expiring subscriptions: %v", err)
		return
	}

	published := 0
	for _, sub := range expiring {
		if sub.Email == "" {
			continue
		}

		key := sub.ID + "|" + sub.ExpiryDate.Format("2006-01-02")
		if w.sent[key] {
			continue
		}

		payload := queue.ReminderPayload{
			SubscriptionID: sub.ID,
			CustomerName:   sub.CustomerName,
			Email:          sub.Email,
			PlanName:       sub.PlanName,
			ExpiryDate:     sub.ExpiryDate.Format("2006-01-02"),
			DaysRemaining:  sub.DaysRemaining,
		}
		if err := w.producer.PublishReminder(ctx, payload); err != nil {
			log.Printf("[REMINDER] publish failed for %s: %v", sub.ID, err)
			continue
		}

		w.sent[key] = true
		middleware.RecordReminderPublished()
		published++
	}

	if published > 0 {
		log.Printf("[REMINDER] published %d reminder(s)", published)
	}
}
