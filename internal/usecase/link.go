package usecase

import (
	"github.com/growthdesk/crm-backend/internal/entity"
	"github.com/growthdesk/crm-backend/internal/identity"
)

// Linking is first-match-wins, not best-match: a lead is tried against
// the candidate list in order, phone rule before email rule, and once a
// candidate sticks the lead is never reconsidered. The matched set
// guarantees at most one link per lead even when several candidates
// would match.

// LinkTelegram attaches at most one Telegram subscription to each lead.
// Leads with no match pass through unchanged. Input order is preserved.
func LinkTelegram(leads []entity.Lead, subs []entity.TelegramSubscription) []entity.Lead {
	out := make([]entity.Lead, len(leads))
	copy(out, leads)

	matched := make(map[string]bool, len(leads))
	for i := range out {
		if matched[out[i].ID] {
			continue
		}
		leadID := identity.NewIdentity(out[i].Phone, out[i].Email)

		if sub, ok := findSubscription(leadID, subs, identity.MatchPhone); ok {
			attachTelegram(&out[i], sub, matched)
			continue
		}
		if sub, ok := findSubscription(leadID, subs, identity.MatchEmail); ok {
			attachTelegram(&out[i], sub, matched)
		}
	}
	return out
}

// LinkEbook attaches at most one eBook access row to each lead, same
// contract as LinkTelegram.
func LinkEbook(leads []entity.Lead, access []entity.EbookAccess) []entity.Lead {
	out := make([]entity.Lead, len(leads))
	copy(out, leads)

	matched := make(map[string]bool, len(leads))
	for i := range out {
		if matched[out[i].ID] {
			continue
		}
		leadID := identity.NewIdentity(out[i].Phone, out[i].Email)

		if acc, ok := findAccess(leadID, access, identity.MatchPhone); ok {
			attachEbook(&out[i], acc, matched)
			continue
		}
		if acc, ok := findAccess(leadID, access, identity.MatchEmail); ok {
			attachEbook(&out[i], acc, matched)
		}
	}
	return out
}

func findSubscription(leadID identity.Identity, subs []entity.TelegramSubscription, rule func(a, b identity.Identity) bool) (entity.TelegramSubscription, bool) {
	for _, sub := range subs {
		if rule(leadID, identity.NewIdentity(sub.PhoneNumber, sub.Email)) {
			return sub, true
		}
	}
	return entity.TelegramSubscription{}, false
}

func findAccess(leadID identity.Identity, access []entity.EbookAccess, rule func(a, b identity.Identity) bool) (entity.EbookAccess, bool) {
	for _, acc := range access {
		if rule(leadID, identity.NewIdentity(acc.PhoneNumber, acc.UserEmail)) {
			return acc, true
		}
	}
	return entity.EbookAccess{}, false
}

func attachTelegram(lead *entity.Lead, sub entity.TelegramSubscription, matched map[string]bool) {
	lead.TelegramSubscriptionID = sub.ID
	lead.HasTelegramSubscription = true
	matched[lead.ID] = true
}

func attachEbook(lead *entity.Lead, acc entity.EbookAccess, matched map[string]bool) {
	lead.EbookAccessID = acc.ID
	lead.HasEbookAccess = true
	matched[lead.ID] = true
}
