package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"groupbuy/internal/core/domain"
	"groupbuy/internal/core/port"
	"groupbuy/internal/core/port/mocks"
)

type generatorFunc func(ctx context.Context, campaignID uuid.UUID, bracket domain.DiscountBracket) ([]domain.Invoice, error)

func (f generatorFunc) GenerateInvoicesForCampaign(ctx context.Context, campaignID uuid.UUID, bracket domain.DiscountBracket) ([]domain.Invoice, error) {
	return f(ctx, campaignID, bracket)
}

func noGeneration(t *testing.T) generatorFunc {
	return func(context.Context, uuid.UUID, domain.DiscountBracket) ([]domain.Invoice, error) {
		t.Fatal("invoice generation must not run")
		return nil, nil
	}
}

type campaignFixture struct {
	campaigns *mocks.MockCampaignRepository
	pledges   *mocks.MockPledgeRepository
	uc        *CampaignUseCase
}

func newCampaignFixture(t *testing.T, gen port.InvoiceGenerator) *campaignFixture {
	f := &campaignFixture{
		campaigns: mocks.NewMockCampaignRepository(t),
		pledges:   mocks.NewMockPledgeRepository(t),
	}
	f.uc = NewCampaignUseCase(&serialTx{}, f.campaigns, f.pledges, gen, discardLogger())
	f.uc.now = fixedNow
	return f
}

func campaignWithStatus(status domain.CampaignStatus) *domain.Campaign {
	return &domain.Campaign{
		ID:                     uuid.New(),
		SupplierOrganizationID: uuid.New(),
		Title:                  "Laser toner cartridges",
		TargetQuantity:         100,
		StartDate:              testNow.AddDate(0, 0, -10),
		EndDate:                testNow.AddDate(0, 0, 20),
		Status:                 status,
	}
}

func TestCreateCampaign(t *testing.T) {
	f := newCampaignFixture(t, noGeneration(t))
	req := port.CampaignReq{
		SupplierOrganizationID: uuid.New(),
		Title:                  "Office chairs",
		TargetQuantity:         40,
		StartDate:              testNow,
		EndDate:                testNow.Add(14 * 24 * time.Hour),
	}
	f.campaigns.EXPECT().CreateCampaign(mock.Anything, mock.MatchedBy(func(c *domain.Campaign) bool {
		return c.Status == domain.CampaignStatusDraft && c.Title == req.Title
	})).Return(nil)

	c, err := f.uc.CreateCampaign(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignStatusDraft, c.Status)
	assert.Equal(t, testNow, c.CreatedAt)

	req.EndDate = req.StartDate
	_, err = f.uc.CreateCampaign(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestGetPricingResolvesBracket(t *testing.T) {
	f := newCampaignFixture(t, noGeneration(t))
	c := campaignWithStatus(domain.CampaignStatusActive)
	ladder := ladderFor(c.ID)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)
	f.campaigns.EXPECT().ListBrackets(mock.Anything, c.ID).Return(ladder, nil)
	f.pledges.EXPECT().ListPledgesByCampaignAndStatus(mock.Anything, c.ID, domain.PledgeStatusCommitted).
		Return([]domain.Pledge{committedPledge(c.ID, 20), committedPledge(c.ID, 15)}, nil)

	snap, err := f.uc.GetPricing(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(35), snap.TotalQuantity)
	assert.Equal(t, 2, snap.PledgeCount)
	assert.False(t, snap.TargetReached)
	require.NotNil(t, snap.CurrentBracket)
	assert.Equal(t, ladder[1].ID, snap.CurrentBracket.ID)
	require.NotNil(t, snap.NextBracket)
	assert.Equal(t, ladder[2].ID, snap.NextBracket.ID)
	assert.Equal(t, int64(15), *snap.UnitsToNextBracket)
}

func TestLockCampaignGeneratesInvoices(t *testing.T) {
	c := campaignWithStatus(domain.CampaignStatusActive)
	ladder := ladderFor(c.ID)
	pledges := []domain.Pledge{committedPledge(c.ID, 30), committedPledge(c.ID, 25)}

	var generatedWith domain.DiscountBracket
	gen := generatorFunc(func(_ context.Context, campaignID uuid.UUID, b domain.DiscountBracket) ([]domain.Invoice, error) {
		generatedWith = b
		return []domain.Invoice{{CampaignID: campaignID}, {CampaignID: campaignID}}, nil
	})
	f := newCampaignFixture(t, gen)
	f.campaigns.EXPECT().GetCampaignForUpdate(mock.Anything, c.ID).Return(c, nil)
	f.campaigns.EXPECT().ListBrackets(mock.Anything, c.ID).Return(ladder, nil)
	f.pledges.EXPECT().ListPledgesByCampaignAndStatus(mock.Anything, c.ID, domain.PledgeStatusCommitted).Return(pledges, nil)
	f.campaigns.EXPECT().UpdateCampaign(mock.Anything, mock.MatchedBy(func(u *domain.Campaign) bool {
		return u.Status == domain.CampaignStatusLocked && *u.LockedBracketID == ladder[2].ID
	})).Return(nil)

	res, err := f.uc.LockCampaign(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignStatusLocked, res.Campaign.Status)
	assert.Equal(t, ladder[2].ID, res.Bracket.ID)
	assert.Equal(t, ladder[2].ID, generatedWith.ID)
	assert.Len(t, res.Invoices, 2)
	require.NotNil(t, res.Campaign.LockedAt)
	assert.Equal(t, testNow, *res.Campaign.LockedAt)
}

func TestLockCampaignFailures(t *testing.T) {
	t.Run("below first bracket", func(t *testing.T) {
		f := newCampaignFixture(t, noGeneration(t))
		c := campaignWithStatus(domain.CampaignStatusActive)
		ladder := ladderFor(c.ID)[1:]
		f.campaigns.EXPECT().GetCampaignForUpdate(mock.Anything, c.ID).Return(c, nil)
		f.campaigns.EXPECT().ListBrackets(mock.Anything, c.ID).Return(ladder, nil)
		f.pledges.EXPECT().ListPledgesByCampaignAndStatus(mock.Anything, c.ID, domain.PledgeStatusCommitted).
			Return([]domain.Pledge{committedPledge(c.ID, 4)}, nil)

		_, err := f.uc.LockCampaign(context.Background(), c.ID)
		require.ErrorIs(t, err, domain.ErrValidation)
		assert.Equal(t, domain.CampaignStatusActive, c.Status)
	})
	t.Run("not active", func(t *testing.T) {
		f := newCampaignFixture(t, noGeneration(t))
		c := campaignWithStatus(domain.CampaignStatusDraft)
		f.campaigns.EXPECT().GetCampaignForUpdate(mock.Anything, c.ID).Return(c, nil)

		_, err := f.uc.LockCampaign(context.Background(), c.ID)
		require.ErrorIs(t, err, domain.ErrInvalidTransition)
	})
	t.Run("generation fails", func(t *testing.T) {
		boom := errors.New("connection reset")
		f := newCampaignFixture(t, generatorFunc(func(context.Context, uuid.UUID, domain.DiscountBracket) ([]domain.Invoice, error) {
			return nil, boom
		}))
		c := campaignWithStatus(domain.CampaignStatusActive)
		f.campaigns.EXPECT().GetCampaignForUpdate(mock.Anything, c.ID).Return(c, nil)
		f.campaigns.EXPECT().ListBrackets(mock.Anything, c.ID).Return(ladderFor(c.ID), nil)
		f.pledges.EXPECT().ListPledgesByCampaignAndStatus(mock.Anything, c.ID, domain.PledgeStatusCommitted).
			Return([]domain.Pledge{committedPledge(c.ID, 12)}, nil)
		f.campaigns.EXPECT().UpdateCampaign(mock.Anything, c).Return(nil)

		_, err := f.uc.LockCampaign(context.Background(), c.ID)
		require.ErrorIs(t, err, boom)
	})
}

func TestPublishCampaign(t *testing.T) {
	t.Run("empty ladder", func(t *testing.T) {
		f := newCampaignFixture(t, noGeneration(t))
		c := campaignWithStatus(domain.CampaignStatusDraft)
		f.campaigns.EXPECT().GetCampaignForUpdate(mock.Anything, c.ID).Return(c, nil)
		f.campaigns.EXPECT().ListBrackets(mock.Anything, c.ID).Return(nil, nil)

		_, err := f.uc.PublishCampaign(context.Background(), c.ID)
		require.ErrorIs(t, err, domain.ErrValidation)
		assert.Equal(t, domain.CampaignStatusDraft, c.Status)
	})
	t.Run("gap in ladder", func(t *testing.T) {
		f := newCampaignFixture(t, noGeneration(t))
		c := campaignWithStatus(domain.CampaignStatusDraft)
		ladder := ladderFor(c.ID)
		ladder[1].MinQuantity = 20
		f.campaigns.EXPECT().GetCampaignForUpdate(mock.Anything, c.ID).Return(c, nil)
		f.campaigns.EXPECT().ListBrackets(mock.Anything, c.ID).Return(ladder, nil)

		_, err := f.uc.PublishCampaign(context.Background(), c.ID)
		require.ErrorIs(t, err, domain.ErrValidation)
		assert.Contains(t, err.Error(), "must start at 10")
		assert.Equal(t, domain.CampaignStatusDraft, c.Status)
	})
	t.Run("published", func(t *testing.T) {
		f := newCampaignFixture(t, noGeneration(t))
		c := campaignWithStatus(domain.CampaignStatusDraft)
		f.campaigns.EXPECT().GetCampaignForUpdate(mock.Anything, c.ID).Return(c, nil)
		f.campaigns.EXPECT().ListBrackets(mock.Anything, c.ID).Return(ladderFor(c.ID), nil)
		f.campaigns.EXPECT().UpdateCampaign(mock.Anything, c).Return(nil)

		got, err := f.uc.PublishCampaign(context.Background(), c.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.CampaignStatusActive, got.Status)
	})
}

func TestCancelCampaign(t *testing.T) {
	f := newCampaignFixture(t, noGeneration(t))
	active := campaignWithStatus(domain.CampaignStatusActive)
	locked := campaignWithStatus(domain.CampaignStatusLocked)
	f.campaigns.EXPECT().GetCampaignForUpdate(mock.Anything, active.ID).Return(active, nil)
	f.campaigns.EXPECT().GetCampaignForUpdate(mock.Anything, locked.ID).Return(locked, nil)
	f.campaigns.EXPECT().UpdateCampaign(mock.Anything, active).Return(nil)

	got, err := f.uc.CancelCampaign(context.Background(), active.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignStatusCancelled, got.Status)

	_, err = f.uc.CancelCampaign(context.Background(), locked.ID)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestCompleteCampaign(t *testing.T) {
	f := newCampaignFixture(t, noGeneration(t))
	locked := campaignWithStatus(domain.CampaignStatusLocked)
	active := campaignWithStatus(domain.CampaignStatusActive)
	f.campaigns.EXPECT().GetCampaignForUpdate(mock.Anything, locked.ID).Return(locked, nil)
	f.campaigns.EXPECT().GetCampaignForUpdate(mock.Anything, active.ID).Return(active, nil)
	f.campaigns.EXPECT().UpdateCampaign(mock.Anything, locked).Return(nil)

	got, err := f.uc.CompleteCampaign(context.Background(), locked.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignStatusCompleted, got.Status)

	_, err = f.uc.CompleteCampaign(context.Background(), active.ID)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBracketMutationsRequireDraft(t *testing.T) {
	f := newCampaignFixture(t, noGeneration(t))
	c := campaignWithStatus(domain.CampaignStatusActive)
	f.campaigns.EXPECT().GetCampaignForUpdate(mock.Anything, c.ID).Return(c, nil)
	req := port.BracketReq{MinQuantity: 100, UnitPrice: dec("25.00"), BracketOrder: 3}

	_, err := f.uc.AddBracket(context.Background(), c.ID, req)
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "DRAFT")

	_, err = f.uc.UpdateBracket(context.Background(), c.ID, uuid.New(), req)
	require.ErrorIs(t, err, domain.ErrValidation)

	err = f.uc.DeleteBracket(context.Background(), c.ID, uuid.New())
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestAddBracket(t *testing.T) {
	f := newCampaignFixture(t, noGeneration(t))
	c := campaignWithStatus(domain.CampaignStatusDraft)
	ladder := ladderFor(c.ID)[:2]
	f.campaigns.EXPECT().GetCampaignForUpdate(mock.Anything, c.ID).Return(c, nil)
	f.campaigns.EXPECT().ListBrackets(mock.Anything, c.ID).Return(ladder, nil)
	f.campaigns.EXPECT().CreateBracket(mock.Anything, mock.MatchedBy(func(b *domain.DiscountBracket) bool {
		return b.CampaignID == c.ID && b.MinQuantity == 50 && b.MaxQuantity == nil
	})).Return(nil).Once()

	b, err := f.uc.AddBracket(context.Background(), c.ID, port.BracketReq{MinQuantity: 50, UnitPrice: dec("30.00"), BracketOrder: 2})
	require.NoError(t, err)
	assert.Equal(t, c.ID, b.CampaignID)

	_, err = f.uc.AddBracket(context.Background(), c.ID, port.BracketReq{MinQuantity: 45, UnitPrice: dec("31.00"), BracketOrder: 5})
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.uc.AddBracket(context.Background(), c.ID, port.BracketReq{MinQuantity: 60, UnitPrice: dec("0"), BracketOrder: 6})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateBracket(t *testing.T) {
	f := newCampaignFixture(t, noGeneration(t))
	c := campaignWithStatus(domain.CampaignStatusDraft)
	ladder := ladderFor(c.ID)
	foreign := ladderFor(uuid.New())[0]
	target := ladder[2]
	f.campaigns.EXPECT().GetCampaignForUpdate(mock.Anything, c.ID).Return(c, nil)
	f.campaigns.EXPECT().ListBrackets(mock.Anything, c.ID).Return(ladder, nil)
	f.campaigns.EXPECT().GetBracket(mock.Anything, target.ID).Return(&target, nil)
	f.campaigns.EXPECT().GetBracket(mock.Anything, foreign.ID).Return(&foreign, nil)
	f.campaigns.EXPECT().UpdateBracket(mock.Anything, mock.Anything).Return(nil).Once()

	got, err := f.uc.UpdateBracket(context.Background(), c.ID, target.ID, port.BracketReq{
		MinQuantity: 50, UnitPrice: dec("28.50"), BracketOrder: 2,
	})
	require.NoError(t, err)
	assert.True(t, got.UnitPrice.Equal(dec("28.50")))

	_, err = f.uc.UpdateBracket(context.Background(), c.ID, foreign.ID, port.BracketReq{
		MinQuantity: 500, UnitPrice: dec("1"), BracketOrder: 9,
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteCampaign(t *testing.T) {
	f := newCampaignFixture(t, noGeneration(t))
	draft := campaignWithStatus(domain.CampaignStatusDraft)
	active := campaignWithStatus(domain.CampaignStatusActive)
	f.campaigns.EXPECT().GetCampaignForUpdate(mock.Anything, draft.ID).Return(draft, nil)
	f.campaigns.EXPECT().GetCampaignForUpdate(mock.Anything, active.ID).Return(active, nil)
	f.campaigns.EXPECT().DeleteCampaign(mock.Anything, draft.ID).Return(nil).Once()

	require.NoError(t, f.uc.DeleteCampaign(context.Background(), draft.ID))
	require.ErrorIs(t, f.uc.DeleteCampaign(context.Background(), active.ID), domain.ErrValidation)
}

func TestListCampaignsRejectsUnknownStatus(t *testing.T) {
	f := newCampaignFixture(t, noGeneration(t))
	bogus := domain.CampaignStatus("ARCHIVED")
	_, err := f.uc.ListCampaigns(context.Background(), port.CampaignFilter{Status: &bogus})
	require.ErrorIs(t, err, domain.ErrValidation)
}
