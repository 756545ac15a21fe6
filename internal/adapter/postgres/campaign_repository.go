package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"groupbuy/internal/core/domain"
	"groupbuy/internal/core/port"
)

const campaignColumns = `id, supplier_organization_id, title, description, target_quantity, start_date,
	end_date, status, locked_bracket_id, locked_at, created_at, updated_at`

const bracketColumns = `id, campaign_id, min_quantity, max_quantity, unit_price, bracket_order, created_at, updated_at`

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.SupplierOrganizationID, &c.Title, &c.Description, &c.TargetQuantity,
		&c.StartDate, &c.EndDate, &c.Status, &c.LockedBracketID, &c.LockedAt, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanBracket(row pgx.Row) (*domain.DiscountBracket, error) {
	var b domain.DiscountBracket
	err := row.Scan(&b.ID, &b.CampaignID, &b.MinQuantity, &b.MaxQuantity, &b.UnitPrice, &b.BracketOrder, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateCampaign inserts a new campaign.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `INSERT INTO campaigns (`+campaignColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		c.ID, c.SupplierOrganizationID, c.Title, c.Description, c.TargetQuantity, c.StartDate,
		c.EndDate, c.Status, c.LockedBracketID, c.LockedAt, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

// UpdateCampaign overwrites the mutable columns of a campaign.
func (r *CampaignRepository) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, `UPDATE campaigns SET
		title = $2, description = $3, target_quantity = $4, start_date = $5, end_date = $6,
		status = $7, locked_bracket_id = $8, locked_at = $9, updated_at = $10
		WHERE id = $1`,
		c.ID, c.Title, c.Description, c.TargetQuantity, c.StartDate, c.EndDate,
		c.Status, c.LockedBracketID, c.LockedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update campaign: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("campaign", c.ID)
	}
	return nil
}

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	return scanCampaign(conn(ctx, r.pool).QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
}

// GetCampaignForUpdate returns a campaign by id and locks its row.
func (r *CampaignRepository) GetCampaignForUpdate(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	return scanCampaign(conn(ctx, r.pool).QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, id))
}

// ListCampaigns returns campaigns matching the filter, newest first.
func (r *CampaignRepository) ListCampaigns(ctx context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	var (
		where []string
		args  []interface{}
	)
	if filter.SupplierOrganizationID != nil {
		args = append(args, *filter.SupplierOrganizationID)
		where = append(where, fmt.Sprintf("supplier_organization_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	query := `SELECT ` + campaignColumns + ` FROM campaigns`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := conn(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
}

// DeleteCampaign removes a campaign; brackets go with it through ON DELETE CASCADE.
func (r *CampaignRepository) DeleteCampaign(ctx context.Context, id uuid.UUID) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("campaign", id)
	}
	return nil
}

// ListBrackets returns the ladder of a campaign ordered by bracket order.
func (r *CampaignRepository) ListBrackets(ctx context.Context, campaignID uuid.UUID) ([]domain.DiscountBracket, error) {
	rows, err := conn(ctx, r.pool).Query(ctx,
		`SELECT `+bracketColumns+` FROM discount_brackets WHERE campaign_id = $1 ORDER BY bracket_order`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DiscountBracket, error) {
		b, err := scanBracket(row)
		if err != nil {
			return domain.DiscountBracket{}, err
		}
		return *b, nil
	})
}

// GetBracket returns a bracket by id.
func (r *CampaignRepository) GetBracket(ctx context.Context, id uuid.UUID) (*domain.DiscountBracket, error) {
	return scanBracket(conn(ctx, r.pool).QueryRow(ctx, `SELECT `+bracketColumns+` FROM discount_brackets WHERE id = $1`, id))
}

// CreateBracket inserts a bracket.
func (r *CampaignRepository) CreateBracket(ctx context.Context, b *domain.DiscountBracket) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `INSERT INTO discount_brackets (`+bracketColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		b.ID, b.CampaignID, b.MinQuantity, b.MaxQuantity, b.UnitPrice, b.BracketOrder, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert bracket: %w", err)
	}
	return nil
}

// UpdateBracket overwrites a bracket's range, price and order.
func (r *CampaignRepository) UpdateBracket(ctx context.Context, b *domain.DiscountBracket) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, `UPDATE discount_brackets SET
		min_quantity = $2, max_quantity = $3, unit_price = $4, bracket_order = $5, updated_at = $6
		WHERE id = $1`,
		b.ID, b.MinQuantity, b.MaxQuantity, b.UnitPrice, b.BracketOrder, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update bracket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("bracket", b.ID)
	}
	return nil
}

// DeleteBracket removes a bracket.
func (r *CampaignRepository) DeleteBracket(ctx context.Context, id uuid.UUID) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM discount_brackets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bracket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("bracket", id)
	}
	return nil
}
