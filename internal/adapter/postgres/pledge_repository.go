package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"groupbuy/internal/core/domain"
)

// PledgeRepository implements port.PledgeRepository. Pledges are written by
// the pledge-management service; this side only reads them.
type PledgeRepository struct {
	pool *pgxpool.Pool
}

// NewPledgeRepository returns a new repository instance.
func NewPledgeRepository(pool *pgxpool.Pool) *PledgeRepository {
	return &PledgeRepository{pool: pool}
}

// ListPledgesByCampaignAndStatus returns pledges of a campaign in the given status.
func (r *PledgeRepository) ListPledgesByCampaignAndStatus(ctx context.Context, campaignID uuid.UUID, status domain.PledgeStatus) ([]domain.Pledge, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `SELECT id, campaign_id, buyer_organization_id, quantity, status, created_at
		FROM pledges WHERE campaign_id = $1 AND status = $2 ORDER BY created_at, id`, campaignID, status)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Pledge, error) {
		var p domain.Pledge
		err := row.Scan(&p.ID, &p.CampaignID, &p.BuyerOrganizationID, &p.Quantity, &p.Status, &p.CreatedAt)
		return p, err
	})
}
