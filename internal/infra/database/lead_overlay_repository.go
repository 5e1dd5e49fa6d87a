package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/growthdesk/crm-backend/internal/entity"
)

// LeadOverlayRepository persists staff edits to derived leads. Leads
// themselves have no table (they are rebuilt from payments on every
// read), so edits live here keyed by the payment order id.
type LeadOverlayRepository struct {
	DB *sql.DB
}

func NewLeadOverlayRepository(db *sql.DB) *LeadOverlayRepository {
	return &LeadOverlayRepository{DB: db}
}

func (r *LeadOverlayRepository) Upsert(ctx context.Context, overlay *entity.LeadOverlay) error {
	query := `
		INSERT INTO lead_overlays (lead_id, status, last_contacted_at, updated_at)
		VALUES ($1, NULLIF($2, ''), $3, NOW())
		ON CONFLICT (lead_id)
		DO UPDATE SET
			status = COALESCE(NULLIF(EXCLUDED.status, ''), lead_overlays.status),
			last_contacted_at = COALESCE(EXCLUDED.last_contacted_at, lead_overlays.last_contacted_at),
			updated_at = NOW()
		RETURNING COALESCE(status, ''), last_contacted_at, updated_at
	`

	err := r.DB.QueryRowContext(
		ctx,
		query,
		overlay.LeadID,
		overlay.Status,
		overlay.LastContactedAt,
	).Scan(
		&overlay.Status,
		&overlay.LastContactedAt,
		&overlay.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert lead overlay: %w", err)
	}

	return nil
}

func (r *LeadOverlayRepository) FindAll(ctx context.Context) (map[string]*entity.LeadOverlay, error) {
	query := `
		SELECT lead_id, COALESCE(status, ''), last_contacted_at, updated_at
		FROM lead_overlays
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list lead overlays: %w", err)
	}
	defer rows.Close()

	overlays := make(map[string]*entity.LeadOverlay)
	for rows.Next() {
		var o entity.LeadOverlay
		if err := rows.Scan(&o.LeadID, &o.Status, &o.LastContactedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan lead overlay: %w", err)
		}
		overlays[o.LeadID] = &o
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return overlays, nil
}
