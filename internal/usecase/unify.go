package usecase

import (
	"context"
	"log"

	"github.com/growthdesk/crm-backend/internal/entity"
)

// UnifyLeadsUseCase composes the synthesizer and the two linking passes
// into the lead list the dashboard renders. Each invocation fetches
// fresh snapshots; any source failure aborts the whole unification so
// the caller never sees a partially-linked list.
type UnifyLeadsUseCase struct {
	Source      DataSource
	OverlayRepo entity.LeadOverlayRepositoryInterface // optional
}

func NewUnifyLeadsUseCase(source DataSource, overlayRepo entity.LeadOverlayRepositoryInterface) *UnifyLeadsUseCase {
	return &UnifyLeadsUseCase{
		Source:      source,
		OverlayRepo: overlayRepo,
	}
}

func (uc *UnifyLeadsUseCase) Execute(ctx context.Context) ([]entity.Lead, error) {
	// Telegram pass: fetch, synthesize, link.
	payments, err := uc.Source.ListPayments(ctx)
	if err != nil {
		return nil, err
	}

	subs, err := uc.allSubscriptions(ctx)
	if err != nil {
		return nil, err
	}
	telegramLinked := LinkTelegram(SynthesizeLeads(payments), subs)

	// Ebook pass: the original dashboard re-fetched and re-synthesized
	// here instead of reusing the first pass. Lead ids are deterministic
	// from payment order ids, so the by-id re-merge below stays sound.
	payments, err = uc.Source.ListPayments(ctx)
	if err != nil {
		return nil, err
	}

	access, err := uc.Source.ListEbookAccess(ctx)
	if err != nil {
		return nil, err
	}
	merged := MergeTelegramLinkage(LinkEbook(SynthesizeLeads(payments), access), telegramLinked)

	if uc.OverlayRepo != nil {
		overlays, err := uc.OverlayRepo.FindAll(ctx)
		if err != nil {
			// Overlay edits are a convenience layer, not a data source;
			// losing them should not blank the whole dashboard.
			log.Printf("[LEADS] overlay fetch failed, serving derived leads only: %v", err)
		} else {
			for i := range merged {
				merged[i].ApplyOverlay(overlays[merged[i].ID])
			}
		}
	}

	return merged, nil
}

func (uc *UnifyLeadsUseCase) allSubscriptions(ctx context.Context) ([]entity.TelegramSubscription, error) {
	active, err := uc.Source.ListActiveSubscriptions(ctx)
	if err != nil {
		return nil, err
	}
	expired, err := uc.Source.ListExpiredSubscriptions(ctx)
	if err != nil {
		return nil, err
	}
	return append(active, expired...), nil
}

// MergeTelegramLinkage copies Telegram linkage from the telegram-linked
// pass onto the ebook-linked base list by lead id.
func MergeTelegramLinkage(base, telegramLinked []entity.Lead) []entity.Lead {
	byID := make(map[string]entity.Lead, len(telegramLinked))
	for _, lead := range telegramLinked {
		if lead.HasTelegramSubscription {
			byID[lead.ID] = lead
		}
	}

	for i := range base {
		if linked, ok := byID[base[i].ID]; ok {
			base[i].TelegramSubscriptionID = linked.TelegramSubscriptionID
			base[i].HasTelegramSubscription = true
		}
	}
	return base
}
