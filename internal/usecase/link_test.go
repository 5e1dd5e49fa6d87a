package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/growthdesk/crm-backend/internal/entity"
)

func TestLinkTelegramAttachesAtMostOne(t *testing.T) {
	leads := []entity.Lead{
		{ID: "o1", Email: "jane.doe@x.com", Phone: "+91 98765 43210"},
	}
	// Both candidates match the lead; only the first may stick.
	subs := []entity.TelegramSubscription{
		{ID: "sub-1", PhoneNumber: "9876543210"},
		{ID: "sub-2", Email: "jane.doe@x.com"},
	}

	linked := LinkTelegram(leads, subs)

	assert.True(t, linked[0].HasTelegramSubscription)
	assert.Equal(t, "sub-1", linked[0].TelegramSubscriptionID)
}

func TestLinkTelegramPhoneBeforeEmail(t *testing.T) {
	leads := []entity.Lead{
		{ID: "o1", Email: "jane.doe@x.com", Phone: "9876543210"},
	}
	// The email-only candidate comes first in the collection, but the
	// phone pass runs before the email pass.
	subs := []entity.TelegramSubscription{
		{ID: "by-email", Email: "jane.doe@x.com"},
		{ID: "by-phone", PhoneNumber: "+91 98765 43210"},
	}

	linked := LinkTelegram(leads, subs)

	assert.Equal(t, "by-phone", linked[0].TelegramSubscriptionID)
}

func TestLinkTelegramFirstMatchWinsByOrder(t *testing.T) {
	leads := []entity.Lead{
		{ID: "o1", Phone: "9876543210"},
	}
	subs := []entity.TelegramSubscription{
		{ID: "first", PhoneNumber: "9876543210"},
		{ID: "second", PhoneNumber: "9876543210"},
	}

	linked := LinkTelegram(leads, subs)

	assert.Equal(t, "first", linked[0].TelegramSubscriptionID)
}

func TestLinkTelegramUnmatchedPassThrough(t *testing.T) {
	leads := []entity.Lead{
		{ID: "o1", Email: "nobody@x.com"},
	}

	linked := LinkTelegram(leads, []entity.TelegramSubscription{{ID: "s1", Email: "other@x.com"}})

	assert.False(t, linked[0].HasTelegramSubscription)
	assert.Empty(t, linked[0].TelegramSubscriptionID)
}

func TestLinkTelegramDoesNotMutateInput(t *testing.T) {
	leads := []entity.Lead{
		{ID: "o1", Email: "jane@x.com"},
	}

	LinkTelegram(leads, []entity.TelegramSubscription{{ID: "s1", Email: "jane@x.com"}})

	assert.False(t, leads[0].HasTelegramSubscription)
}

func TestLinkEbookAttachesAtMostOne(t *testing.T) {
	leads := []entity.Lead{
		{ID: "o1", Email: "raj.kumar@x.com", Phone: "9812345678"},
		{ID: "o2", Email: "lone@x.com"},
	}
	access := []entity.EbookAccess{
		{ID: 11, UserEmail: "raj.kumar@x.com"},
		{ID: 12, PhoneNumber: "+91 98123 45678"},
	}

	linked := LinkEbook(leads, access)

	assert.True(t, linked[0].HasEbookAccess)
	// Phone rule runs first, so the phone-bearing row wins despite its
	// position in the collection.
	assert.Equal(t, int64(12), linked[0].EbookAccessID)
	assert.False(t, linked[1].HasEbookAccess)
}

func TestMergeTelegramLinkageByID(t *testing.T) {
	base := []entity.Lead{
		{ID: "o1", HasEbookAccess: true, EbookAccessID: 7},
		{ID: "o2"},
	}
	telegramLinked := []entity.Lead{
		{ID: "o1", HasTelegramSubscription: true, TelegramSubscriptionID: "sub-9"},
		{ID: "o2"},
	}

	merged := MergeTelegramLinkage(base, telegramLinked)

	// Independently-correct linkage on both axes.
	assert.True(t, merged[0].HasEbookAccess)
	assert.Equal(t, int64(7), merged[0].EbookAccessID)
	assert.True(t, merged[0].HasTelegramSubscription)
	assert.Equal(t, "sub-9", merged[0].TelegramSubscriptionID)
	assert.False(t, merged[1].HasTelegramSubscription)
}
