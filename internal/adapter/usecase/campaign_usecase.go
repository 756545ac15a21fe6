package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"groupbuy/internal/core/domain"
	"groupbuy/internal/core/port"
)

// CampaignUseCase manages campaigns, their bracket ladders and pricing.
// It implements port.CampaignUseCase.
type CampaignUseCase struct {
	tx        port.Transactor
	campaigns port.CampaignRepository
	pledges   port.PledgeRepository
	invoices  port.InvoiceGenerator
	logger    *slog.Logger

	now func() time.Time
}

// NewCampaignUseCase creates a new usecase. invoices is invoked when a
// campaign locks.
func NewCampaignUseCase(
	tx port.Transactor,
	campaigns port.CampaignRepository,
	pledges port.PledgeRepository,
	invoices port.InvoiceGenerator,
	logger *slog.Logger,
) *CampaignUseCase {
	return &CampaignUseCase{
		tx:        tx,
		campaigns: campaigns,
		pledges:   pledges,
		invoices:  invoices,
		logger:    logger,
		now:       utcNow,
	}
}

// CreateCampaign stores a new DRAFT campaign.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, req port.CampaignReq) (*domain.Campaign, error) {
	now := u.now()
	c := &domain.Campaign{
		ID:        uuid.New(),
		Status:    domain.CampaignStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyCampaignReq(c, req)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := u.campaigns.CreateCampaign(ctx, c); err != nil {
		return nil, err
	}
	u.logger.Info("campaign created", slog.String("campaign_id", c.ID.String()))
	return c, nil
}

// UpdateCampaign replaces the core fields of a DRAFT campaign.
func (u *CampaignUseCase) UpdateCampaign(ctx context.Context, id uuid.UUID, req port.CampaignReq) (*domain.Campaign, error) {
	var out *domain.Campaign
	err := u.tx.WithinTx(ctx, func(ctx context.Context) error {
		c, err := u.lockCampaign(ctx, id)
		if err != nil {
			return err
		}
		if err = c.EnsureDraft("campaign fields"); err != nil {
			return err
		}
		applyCampaignReq(c, req)
		if err = c.Validate(); err != nil {
			return err
		}
		c.UpdatedAt = u.now()
		if err = u.campaigns.UpdateCampaign(ctx, c); err != nil {
			return err
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func applyCampaignReq(c *domain.Campaign, req port.CampaignReq) {
	c.SupplierOrganizationID = req.SupplierOrganizationID
	c.Title = req.Title
	c.Description = req.Description
	c.TargetQuantity = req.TargetQuantity
	c.StartDate = req.StartDate
	c.EndDate = req.EndDate
}

// GetCampaign returns a campaign by id.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := u.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NewNotFound("campaign", id)
	}
	return c, nil
}

// ListCampaigns returns campaigns filtered by supplier and/or status.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, domain.NewValidation("status", "unknown campaign status "+string(*filter.Status))
	}
	return u.campaigns.ListCampaigns(ctx, filter)
}

// DeleteCampaign removes a DRAFT campaign and its brackets.
func (u *CampaignUseCase) DeleteCampaign(ctx context.Context, id uuid.UUID) error {
	return u.tx.WithinTx(ctx, func(ctx context.Context) error {
		c, err := u.lockCampaign(ctx, id)
		if err != nil {
			return err
		}
		if c.Status != domain.CampaignStatusDraft {
			return domain.NewValidation("status", "only DRAFT campaigns can be deleted")
		}
		if err = u.campaigns.DeleteCampaign(ctx, id); err != nil {
			return err
		}
		u.logger.Info("campaign deleted", slog.String("campaign_id", id.String()))
		return nil
	})
}

// PublishCampaign moves a DRAFT campaign to ACTIVE. The ladder must be
// non-empty and contiguous so that every committed total has one price.
func (u *CampaignUseCase) PublishCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	return u.changeStatus(ctx, id, domain.CampaignStatusActive, func(ctx context.Context, c *domain.Campaign) error {
		brackets, err := u.campaigns.ListBrackets(ctx, id)
		if err != nil {
			return err
		}
		if len(brackets) == 0 {
			return domain.NewValidation("brackets", "at least one discount bracket is required to publish")
		}
		if err = domain.ValidateLadderCoverage(brackets); err != nil {
			return err
		}
		return c.Validate()
	})
}

// CancelCampaign cancels a DRAFT or ACTIVE campaign.
func (u *CampaignUseCase) CancelCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	return u.changeStatus(ctx, id, domain.CampaignStatusCancelled, nil)
}

// CompleteCampaign moves a LOCKED campaign to COMPLETED.
func (u *CampaignUseCase) CompleteCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	return u.changeStatus(ctx, id, domain.CampaignStatusCompleted, nil)
}

func (u *CampaignUseCase) changeStatus(ctx context.Context, id uuid.UUID, next domain.CampaignStatus, check func(context.Context, *domain.Campaign) error) (*domain.Campaign, error) {
	var out *domain.Campaign
	err := u.tx.WithinTx(ctx, func(ctx context.Context) error {
		c, err := u.lockCampaign(ctx, id)
		if err != nil {
			return err
		}
		from := c.Status
		if !from.CanTransitionTo(next) {
			return &domain.TransitionError{Entity: "campaign", From: string(from), To: string(next)}
		}
		if check != nil {
			if err = check(ctx, c); err != nil {
				return err
			}
		}
		if err = c.Transition(next); err != nil {
			return err
		}
		c.UpdatedAt = u.now()
		if err = u.campaigns.UpdateCampaign(ctx, c); err != nil {
			return err
		}
		u.logger.Info("campaign status changed",
			slog.String("campaign_id", id.String()),
			slog.String("from", string(from)),
			slog.String("to", string(next)))
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LockCampaign closes an ACTIVE campaign. The bracket resolved from the
// committed pledges at this point is final; invoices are generated with it
// in the same transaction.
func (u *CampaignUseCase) LockCampaign(ctx context.Context, id uuid.UUID) (*port.LockResult, error) {
	var out *port.LockResult
	err := u.tx.WithinTx(ctx, func(ctx context.Context) error {
		c, err := u.lockCampaign(ctx, id)
		if err != nil {
			return err
		}
		from := c.Status
		if !from.CanTransitionTo(domain.CampaignStatusLocked) {
			return &domain.TransitionError{Entity: "campaign", From: string(from), To: string(domain.CampaignStatusLocked)}
		}

		res, _, err := u.resolve(ctx, id)
		if err != nil {
			return err
		}
		if res.CurrentBracket == nil {
			return domain.NewValidation("pledges",
				fmt.Sprintf("committed quantity %d is below the first discount bracket", res.TotalQuantity))
		}
		bracket := *res.CurrentBracket

		now := u.now()
		if err = c.Transition(domain.CampaignStatusLocked); err != nil {
			return err
		}
		c.LockedBracketID = &bracket.ID
		c.LockedAt = &now
		c.UpdatedAt = now
		if err = u.campaigns.UpdateCampaign(ctx, c); err != nil {
			return err
		}

		invoices, err := u.invoices.GenerateInvoicesForCampaign(ctx, id, bracket)
		if err != nil {
			return err
		}
		u.logger.Info("campaign locked",
			slog.String("campaign_id", id.String()),
			slog.Int64("total_quantity", res.TotalQuantity),
			slog.String("bracket_id", bracket.ID.String()),
			slog.String("unit_price", bracket.UnitPrice.String()))
		out = &port.LockResult{Campaign: *c, Bracket: bracket, Invoices: invoices}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetPricing aggregates committed pledges and resolves the current bracket.
func (u *CampaignUseCase) GetPricing(ctx context.Context, id uuid.UUID) (*port.PricingSnapshot, error) {
	c, err := u.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	res, pledgeCount, err := u.resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	return &port.PricingSnapshot{
		CampaignID:        c.ID,
		Status:            c.Status,
		TargetQuantity:    c.TargetQuantity,
		PledgeCount:       pledgeCount,
		TargetReached:     res.TotalQuantity >= c.TargetQuantity,
		BracketResolution: res,
	}, nil
}

func (u *CampaignUseCase) resolve(ctx context.Context, id uuid.UUID) (domain.BracketResolution, int, error) {
	brackets, err := u.campaigns.ListBrackets(ctx, id)
	if err != nil {
		return domain.BracketResolution{}, 0, err
	}
	pledges, err := u.pledges.ListPledgesByCampaignAndStatus(ctx, id, domain.PledgeStatusCommitted)
	if err != nil {
		return domain.BracketResolution{}, 0, err
	}
	return domain.ResolveBracket(brackets, domain.TotalQuantity(pledges)), len(pledges), nil
}

// ListBrackets returns the ladder of a campaign.
func (u *CampaignUseCase) ListBrackets(ctx context.Context, campaignID uuid.UUID) ([]domain.DiscountBracket, error) {
	if _, err := u.GetCampaign(ctx, campaignID); err != nil {
		return nil, err
	}
	return u.campaigns.ListBrackets(ctx, campaignID)
}

// AddBracket appends a bracket to the ladder of a DRAFT campaign. The
// campaign row is locked so concurrent ladder writes are checked one at a time.
func (u *CampaignUseCase) AddBracket(ctx context.Context, campaignID uuid.UUID, req port.BracketReq) (*domain.DiscountBracket, error) {
	var out *domain.DiscountBracket
	err := u.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := u.draftLadder(ctx, campaignID)
		if err != nil {
			return err
		}
		now := u.now()
		b := &domain.DiscountBracket{
			ID:         uuid.New(),
			CampaignID: campaignID,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		applyBracketReq(b, req)
		if err = domain.ValidateLadder(existing, b); err != nil {
			return err
		}
		if err = u.campaigns.CreateBracket(ctx, b); err != nil {
			return err
		}
		out = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateBracket rewrites a bracket of a DRAFT campaign.
func (u *CampaignUseCase) UpdateBracket(ctx context.Context, campaignID, bracketID uuid.UUID, req port.BracketReq) (*domain.DiscountBracket, error) {
	var out *domain.DiscountBracket
	err := u.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := u.draftLadder(ctx, campaignID)
		if err != nil {
			return err
		}
		b, err := u.campaignBracket(ctx, campaignID, bracketID)
		if err != nil {
			return err
		}
		applyBracketReq(b, req)
		if err = domain.ValidateLadder(existing, b); err != nil {
			return err
		}
		b.UpdatedAt = u.now()
		if err = u.campaigns.UpdateBracket(ctx, b); err != nil {
			return err
		}
		out = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteBracket removes a bracket from a DRAFT campaign.
func (u *CampaignUseCase) DeleteBracket(ctx context.Context, campaignID, bracketID uuid.UUID) error {
	return u.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := u.draftLadder(ctx, campaignID); err != nil {
			return err
		}
		if _, err := u.campaignBracket(ctx, campaignID, bracketID); err != nil {
			return err
		}
		return u.campaigns.DeleteBracket(ctx, bracketID)
	})
}

func applyBracketReq(b *domain.DiscountBracket, req port.BracketReq) {
	b.MinQuantity = req.MinQuantity
	b.MaxQuantity = req.MaxQuantity
	b.UnitPrice = req.UnitPrice
	b.BracketOrder = req.BracketOrder
}

// draftLadder locks a DRAFT campaign and returns its current brackets.
func (u *CampaignUseCase) draftLadder(ctx context.Context, campaignID uuid.UUID) ([]domain.DiscountBracket, error) {
	c, err := u.lockCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if err = c.EnsureDraft("brackets"); err != nil {
		return nil, err
	}
	return u.campaigns.ListBrackets(ctx, campaignID)
}

func (u *CampaignUseCase) campaignBracket(ctx context.Context, campaignID, bracketID uuid.UUID) (*domain.DiscountBracket, error) {
	b, err := u.campaigns.GetBracket(ctx, bracketID)
	if err != nil {
		return nil, err
	}
	if b == nil || b.CampaignID != campaignID {
		return nil, domain.NewNotFound("bracket", bracketID)
	}
	return b, nil
}

func (u *CampaignUseCase) lockCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := u.campaigns.GetCampaignForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NewNotFound("campaign", id)
	}
	return c, nil
}
