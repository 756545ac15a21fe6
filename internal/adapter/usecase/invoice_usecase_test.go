package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
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

type invoiceFixture struct {
	invoices  *mocks.MockInvoiceRepository
	campaigns *mocks.MockCampaignRepository
	pledges   *mocks.MockPledgeRepository
	intents   *mocks.MockPaymentIntentRepository
	uc        *InvoiceUseCase
}

func newInvoiceFixture(t *testing.T) *invoiceFixture {
	f := &invoiceFixture{
		invoices:  mocks.NewMockInvoiceRepository(t),
		campaigns: mocks.NewMockCampaignRepository(t),
		pledges:   mocks.NewMockPledgeRepository(t),
		intents:   mocks.NewMockPaymentIntentRepository(t),
	}
	tx := &serialTx{}
	payments := NewPaymentIntentUseCase(tx, f.intents, discardLogger())
	payments.now = fixedNow
	f.uc = NewInvoiceUseCase(tx, f.invoices, f.campaigns, f.pledges, f.intents, payments, testSettings(), discardLogger())
	f.uc.now = fixedNow
	return f
}

func lockedCampaign(id uuid.UUID) *domain.Campaign {
	return &domain.Campaign{ID: id, Title: "Nitrile gloves", TargetQuantity: 50, Status: domain.CampaignStatusLocked}
}

// invoiceStore is an in-memory invoice table shared by the mocked
// repository methods that generation touches.
type invoiceStore struct {
	mu        sync.Mutex
	invoices  []domain.Invoice
	sequences map[string]int64
}

func (s *invoiceStore) wire(t *testing.T, m *mocks.MockInvoiceRepository) {
	m.EXPECT().ListInvoicedPledgeIDs(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, campaignID uuid.UUID) ([]uuid.UUID, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			var ids []uuid.UUID
			for _, inv := range s.invoices {
				if inv.CampaignID == campaignID {
					ids = append(ids, inv.PledgeID)
				}
			}
			return ids, nil
		}).Maybe()
	m.EXPECT().LockInvoiceSequence(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, monthPrefix string) (int64, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			return s.sequences[monthPrefix], nil
		}).Maybe()
	m.EXPECT().SaveInvoiceSequence(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, monthPrefix string, last int64) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.sequences == nil {
				s.sequences = map[string]int64{}
			}
			if last <= s.sequences[monthPrefix] {
				t.Errorf("sequence %s moved backwards to %d", monthPrefix, last)
			}
			s.sequences[monthPrefix] = last
			return nil
		}).Maybe()
	m.EXPECT().CreateInvoice(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, inv *domain.Invoice) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			for _, existing := range s.invoices {
				if existing.InvoiceNumber == inv.InvoiceNumber {
					t.Errorf("duplicate invoice number %s", inv.InvoiceNumber)
					return errors.New("unique violation")
				}
			}
			s.invoices = append(s.invoices, *inv)
			return nil
		}).Maybe()
}

func (s *invoiceStore) numbers() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.invoices))
	for _, inv := range s.invoices {
		out = append(out, inv.InvoiceNumber)
	}
	return out
}

func TestGenerateInvoicesPricesPledgesAtBracket(t *testing.T) {
	f := newInvoiceFixture(t)
	campaignID := uuid.New()
	bracket := domain.DiscountBracket{ID: uuid.New(), CampaignID: campaignID, MinQuantity: 10, UnitPrice: dec("100.00"), BracketOrder: 1}
	pledge := committedPledge(campaignID, 10)
	intent := pendingIntent(pledge)

	f.campaigns.EXPECT().GetCampaign(mock.Anything, campaignID).Return(lockedCampaign(campaignID), nil)
	f.pledges.EXPECT().ListPledgesByCampaignAndStatus(mock.Anything, campaignID, domain.PledgeStatusCommitted).
		Return([]domain.Pledge{pledge}, nil)
	f.invoices.EXPECT().ListInvoicedPledgeIDs(mock.Anything, campaignID).Return(nil, nil)
	f.intents.EXPECT().FindPaymentIntentByPledge(mock.Anything, pledge.ID).Return(intent, nil)
	f.invoices.EXPECT().LockInvoiceSequence(mock.Anything, "INV-202501").Return(0, nil).Once()
	f.invoices.EXPECT().SaveInvoiceSequence(mock.Anything, "INV-202501", int64(1)).Return(nil).Once()
	f.invoices.EXPECT().CreateInvoice(mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)
	f.intents.EXPECT().UpdatePaymentIntent(mock.Anything, mock.MatchedBy(func(pi *domain.PaymentIntent) bool {
		return pi.ID == intent.ID && pi.Amount.Equal(dec("1150.00"))
	})).Return(nil)

	got, err := f.uc.GenerateInvoicesForCampaign(context.Background(), campaignID, bracket)
	require.NoError(t, err)
	require.Len(t, got, 1)

	inv := got[0]
	assert.Equal(t, "INV-202501-0001", inv.InvoiceNumber)
	assert.Equal(t, domain.InvoiceStatusDraft, inv.Status)
	assert.Equal(t, intent.ID, inv.PaymentIntentID)
	assert.Equal(t, pledge.BuyerOrganizationID, inv.BuyerOrganizationID)
	assert.Equal(t, int64(10), inv.Quantity)
	assert.True(t, inv.Subtotal.Equal(dec("1000.00")), inv.Subtotal.String())
	assert.True(t, inv.TaxAmount.Equal(dec("150.00")), inv.TaxAmount.String())
	assert.True(t, inv.TotalAmount.Equal(dec("1150.00")), inv.TotalAmount.String())
	assert.Equal(t, time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), inv.IssueDate)
	assert.Equal(t, time.Date(2025, time.February, 14, 0, 0, 0, 0, time.UTC), inv.DueDate)
}

func TestGenerateInvoicesContinuesMonthSequence(t *testing.T) {
	f := newInvoiceFixture(t)
	campaignID := uuid.New()
	bracket := ladderFor(campaignID)[1]
	invoicedPledge := committedPledge(campaignID, 12)
	fresh := []domain.Pledge{committedPledge(campaignID, 5), committedPledge(campaignID, 8)}

	f.campaigns.EXPECT().GetCampaign(mock.Anything, campaignID).Return(lockedCampaign(campaignID), nil)
	f.pledges.EXPECT().ListPledgesByCampaignAndStatus(mock.Anything, campaignID, domain.PledgeStatusCommitted).
		Return(append([]domain.Pledge{invoicedPledge}, fresh...), nil)
	f.invoices.EXPECT().ListInvoicedPledgeIDs(mock.Anything, campaignID).Return([]uuid.UUID{invoicedPledge.ID}, nil)
	for _, p := range fresh {
		f.intents.EXPECT().FindPaymentIntentByPledge(mock.Anything, p.ID).Return(pendingIntent(p), nil)
	}
	f.invoices.EXPECT().LockInvoiceSequence(mock.Anything, "INV-202501").Return(42, nil).Once()
	f.invoices.EXPECT().SaveInvoiceSequence(mock.Anything, "INV-202501", int64(44)).Return(nil).Once()
	f.invoices.EXPECT().CreateInvoice(mock.Anything, mock.Anything).Return(nil).Times(2)
	f.intents.EXPECT().UpdatePaymentIntent(mock.Anything, mock.Anything).Return(nil).Times(2)

	got, err := f.uc.GenerateInvoicesForCampaign(context.Background(), campaignID, bracket)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "INV-202501-0043", got[0].InvoiceNumber)
	assert.Equal(t, "INV-202501-0044", got[1].InvoiceNumber)
	assert.Equal(t, fresh[0].ID, got[0].PledgeID)
	assert.True(t, got[1].Subtotal.Equal(dec("320.00")))
}

func TestGenerateInvoicesRollsPastFourDigits(t *testing.T) {
	f := newInvoiceFixture(t)
	campaignID := uuid.New()
	pledge := committedPledge(campaignID, 3)

	f.campaigns.EXPECT().GetCampaign(mock.Anything, campaignID).Return(lockedCampaign(campaignID), nil)
	f.pledges.EXPECT().ListPledgesByCampaignAndStatus(mock.Anything, campaignID, domain.PledgeStatusCommitted).
		Return([]domain.Pledge{pledge}, nil)
	f.invoices.EXPECT().ListInvoicedPledgeIDs(mock.Anything, campaignID).Return(nil, nil)
	f.intents.EXPECT().FindPaymentIntentByPledge(mock.Anything, pledge.ID).Return(pendingIntent(pledge), nil)
	f.invoices.EXPECT().LockInvoiceSequence(mock.Anything, "INV-202501").Return(9999, nil)
	f.invoices.EXPECT().SaveInvoiceSequence(mock.Anything, "INV-202501", int64(10000)).Return(nil)
	f.invoices.EXPECT().CreateInvoice(mock.Anything, mock.Anything).Return(nil)
	f.intents.EXPECT().UpdatePaymentIntent(mock.Anything, mock.Anything).Return(nil)

	got, err := f.uc.GenerateInvoicesForCampaign(context.Background(), campaignID, ladderFor(campaignID)[0])
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "INV-202501-10000", got[0].InvoiceNumber)
}

func TestGenerateInvoicesIsIdempotent(t *testing.T) {
	f := newInvoiceFixture(t)
	campaignID := uuid.New()
	pledges := []domain.Pledge{committedPledge(campaignID, 20), committedPledge(campaignID, 30)}
	intents := map[uuid.UUID]*domain.PaymentIntent{}
	for _, p := range pledges {
		intents[p.ID] = pendingIntent(p)
	}

	store := &invoiceStore{}
	store.wire(t, f.invoices)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, campaignID).Return(lockedCampaign(campaignID), nil)
	f.pledges.EXPECT().ListPledgesByCampaignAndStatus(mock.Anything, campaignID, domain.PledgeStatusCommitted).Return(pledges, nil)
	f.intents.EXPECT().FindPaymentIntentByPledge(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, pledgeID uuid.UUID) (*domain.PaymentIntent, error) {
			return intents[pledgeID], nil
		})
	f.intents.EXPECT().UpdatePaymentIntent(mock.Anything, mock.Anything).Return(nil)

	bracket := ladderFor(campaignID)[2]
	first, err := f.uc.GenerateInvoicesForCampaign(context.Background(), campaignID, bracket)
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := f.uc.GenerateInvoicesForCampaign(context.Background(), campaignID, bracket)
	require.NoError(t, err)
	assert.Empty(t, second)
	assert.Equal(t, []string{"INV-202501-0001", "INV-202501-0002"}, store.numbers())
}

func TestGenerateInvoicesWithoutPledges(t *testing.T) {
	f := newInvoiceFixture(t)
	campaignID := uuid.New()

	f.campaigns.EXPECT().GetCampaign(mock.Anything, campaignID).Return(lockedCampaign(campaignID), nil)
	f.pledges.EXPECT().ListPledgesByCampaignAndStatus(mock.Anything, campaignID, domain.PledgeStatusCommitted).Return(nil, nil)

	got, err := f.uc.GenerateInvoicesForCampaign(context.Background(), campaignID, ladderFor(campaignID)[0])
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGenerateInvoicesMissingPaymentIntent(t *testing.T) {
	f := newInvoiceFixture(t)
	campaignID := uuid.New()
	pledge := committedPledge(campaignID, 4)

	f.campaigns.EXPECT().GetCampaign(mock.Anything, campaignID).Return(lockedCampaign(campaignID), nil)
	f.pledges.EXPECT().ListPledgesByCampaignAndStatus(mock.Anything, campaignID, domain.PledgeStatusCommitted).
		Return([]domain.Pledge{pledge}, nil)
	f.invoices.EXPECT().ListInvoicedPledgeIDs(mock.Anything, campaignID).Return(nil, nil)
	f.intents.EXPECT().FindPaymentIntentByPledge(mock.Anything, pledge.ID).Return(nil, nil)

	_, err := f.uc.GenerateInvoicesForCampaign(context.Background(), campaignID, ladderFor(campaignID)[0])
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGenerateInvoicesRejectsInvalidInput(t *testing.T) {
	t.Run("campaign not locked", func(t *testing.T) {
		f := newInvoiceFixture(t)
		campaignID := uuid.New()
		active := lockedCampaign(campaignID)
		active.Status = domain.CampaignStatusActive
		f.campaigns.EXPECT().GetCampaign(mock.Anything, campaignID).Return(active, nil)

		_, err := f.uc.GenerateInvoicesForCampaign(context.Background(), campaignID, ladderFor(campaignID)[0])
		require.ErrorIs(t, err, domain.ErrValidation)
	})
	t.Run("bracket of another campaign", func(t *testing.T) {
		f := newInvoiceFixture(t)
		_, err := f.uc.GenerateInvoicesForCampaign(context.Background(), uuid.New(), ladderFor(uuid.New())[0])
		require.ErrorIs(t, err, domain.ErrValidation)
	})
	t.Run("sub-cent unit price", func(t *testing.T) {
		f := newInvoiceFixture(t)
		campaignID := uuid.New()
		bracket := ladderFor(campaignID)[0]
		bracket.UnitPrice = dec("0.0040")

		_, err := f.uc.GenerateInvoicesForCampaign(context.Background(), campaignID, bracket)
		require.ErrorIs(t, err, domain.ErrValidation)
	})
	t.Run("unknown campaign", func(t *testing.T) {
		f := newInvoiceFixture(t)
		campaignID := uuid.New()
		f.campaigns.EXPECT().GetCampaign(mock.Anything, campaignID).Return(nil, nil)

		_, err := f.uc.GenerateInvoicesForCampaign(context.Background(), campaignID, ladderFor(campaignID)[0])
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

// TestConcurrentGenerationNumbersAreUnique runs generation for several
// campaigns at once and checks that the month sequence has no gaps or
// duplicates.
func TestConcurrentGenerationNumbersAreUnique(t *testing.T) {
	f := newInvoiceFixture(t)
	const campaignsN, pledgesPer = 6, 4

	var (
		campaignIDs []uuid.UUID
		pledges     = map[uuid.UUID][]domain.Pledge{}
		intents     = map[uuid.UUID]*domain.PaymentIntent{}
	)
	for i := 0; i < campaignsN; i++ {
		id := uuid.New()
		campaignIDs = append(campaignIDs, id)
		for j := 0; j < pledgesPer; j++ {
			p := committedPledge(id, int64(10+j))
			pledges[id] = append(pledges[id], p)
			intents[p.ID] = pendingIntent(p)
		}
	}

	store := &invoiceStore{}
	store.wire(t, f.invoices)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id uuid.UUID) (*domain.Campaign, error) {
			return lockedCampaign(id), nil
		})
	f.pledges.EXPECT().ListPledgesByCampaignAndStatus(mock.Anything, mock.Anything, domain.PledgeStatusCommitted).
		RunAndReturn(func(_ context.Context, id uuid.UUID, _ domain.PledgeStatus) ([]domain.Pledge, error) {
			return pledges[id], nil
		})
	f.intents.EXPECT().FindPaymentIntentByPledge(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, pledgeID uuid.UUID) (*domain.PaymentIntent, error) {
			pi := *intents[pledgeID]
			return &pi, nil
		})
	f.intents.EXPECT().UpdatePaymentIntent(mock.Anything, mock.Anything).Return(nil)

	var wg sync.WaitGroup
	errs := make(chan error, campaignsN)
	for _, id := range campaignIDs {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			_, err := f.uc.GenerateInvoicesForCampaign(context.Background(), id, ladderFor(id)[1])
			errs <- err
		}(id)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got := store.numbers()
	sort.Strings(got)
	want := make([]string, 0, campaignsN*pledgesPer)
	for i := 1; i <= campaignsN*pledgesPer; i++ {
		want = append(want, fmt.Sprintf("INV-202501-%04d", i))
	}
	assert.Equal(t, want, got)
}

func TestRegenerateInvoicesUsesLockedBracket(t *testing.T) {
	f := newInvoiceFixture(t)
	campaignID := uuid.New()
	bracket := ladderFor(campaignID)[1]
	camp := lockedCampaign(campaignID)
	camp.LockedBracketID = &bracket.ID

	f.campaigns.EXPECT().GetCampaign(mock.Anything, campaignID).Return(camp, nil)
	f.campaigns.EXPECT().GetBracket(mock.Anything, bracket.ID).Return(&bracket, nil)
	f.pledges.EXPECT().ListPledgesByCampaignAndStatus(mock.Anything, campaignID, domain.PledgeStatusCommitted).Return(nil, nil)

	got, err := f.uc.RegenerateInvoices(context.Background(), campaignID)
	require.NoError(t, err)
	assert.Empty(t, got)

	draft := &domain.Campaign{ID: uuid.New(), Status: domain.CampaignStatusDraft}
	f.campaigns.EXPECT().GetCampaign(mock.Anything, draft.ID).Return(draft, nil)
	_, err = f.uc.RegenerateInvoices(context.Background(), draft.ID)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func sentInvoice(intentID uuid.UUID) *domain.Invoice {
	return &domain.Invoice{
		ID:              uuid.New(),
		InvoiceNumber:   "INV-202501-0007",
		PaymentIntentID: intentID,
		Quantity:        10,
		UnitPrice:       dec("100.00"),
		Subtotal:        dec("1000.00"),
		TaxAmount:       dec("150.00"),
		TotalAmount:     dec("1150.00"),
		Status:          domain.InvoiceStatusSent,
	}
}

func TestMarkAsPaidSettlesPaymentIntent(t *testing.T) {
	tests := []struct {
		name    string
		invoice domain.InvoiceStatus
		from    domain.PaymentIntentStatus
		want    domain.PaymentIntentStatus
	}{
		{"pending intent", domain.InvoiceStatusSent, domain.PaymentIntentPending, domain.PaymentIntentSucceeded},
		{"retrying intent", domain.InvoiceStatusOverdue, domain.PaymentIntentFailedRetry2, domain.PaymentIntentSucceeded},
		{"escalated intent", domain.InvoiceStatusOverdue, domain.PaymentIntentSentToAR, domain.PaymentIntentCollectedViaAR},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newInvoiceFixture(t)
			intent := &domain.PaymentIntent{ID: uuid.New(), Status: tt.from}
			if stage, ok := tt.from.RetryStage(); ok {
				intent.RetryCount = stage
			}
			if tt.from == domain.PaymentIntentSentToAR {
				intent.RetryCount = domain.MaxPaymentRetries
			}
			inv := sentInvoice(intent.ID)
			inv.Status = tt.invoice
			note := "wire ref 88172"

			f.invoices.EXPECT().GetInvoiceForUpdate(mock.Anything, inv.ID).Return(inv, nil)
			f.intents.EXPECT().GetPaymentIntentForUpdate(mock.Anything, intent.ID).Return(intent, nil)
			f.intents.EXPECT().UpdatePaymentIntent(mock.Anything, mock.MatchedBy(func(pi *domain.PaymentIntent) bool {
				return pi.Status == tt.want
			})).Return(nil).Once()
			f.invoices.EXPECT().UpdateInvoiceStatus(mock.Anything, mock.MatchedBy(func(i *domain.Invoice) bool {
				return i.Status == domain.InvoiceStatusPaid && i.PaidAt != nil
			})).Return(nil)
			f.invoices.EXPECT().CreateInvoicePayment(mock.Anything, mock.MatchedBy(func(p *domain.InvoicePayment) bool {
				return p.InvoiceID == inv.ID && p.Amount.Equal(dec("1150")) &&
					p.RecordedBy == "user-17" && p.PaymentDate.Equal(testNow) && *p.Note == note
			})).Return(nil)

			got, err := f.uc.MarkAsPaid(context.Background(), inv.ID, port.MarkPaidReq{
				Amount:        dec("1150.00"),
				PaymentMethod: "bank_transfer",
				Note:          &note,
				RecordedBy:    "user-17",
			})
			require.NoError(t, err)
			assert.Equal(t, domain.InvoiceStatusPaid, got.Status)
			assert.Equal(t, tt.want, intent.Status)
		})
	}
}

func TestMarkAsPaidLeavesSettledIntentAlone(t *testing.T) {
	f := newInvoiceFixture(t)
	intent := &domain.PaymentIntent{ID: uuid.New(), Status: domain.PaymentIntentSucceeded}
	inv := sentInvoice(intent.ID)

	f.invoices.EXPECT().GetInvoiceForUpdate(mock.Anything, inv.ID).Return(inv, nil)
	f.intents.EXPECT().GetPaymentIntentForUpdate(mock.Anything, intent.ID).Return(intent, nil)
	f.invoices.EXPECT().UpdateInvoiceStatus(mock.Anything, inv).Return(nil)
	f.invoices.EXPECT().CreateInvoicePayment(mock.Anything, mock.Anything).Return(nil)

	_, err := f.uc.MarkAsPaid(context.Background(), inv.ID, port.MarkPaidReq{Amount: dec("1150"), PaymentMethod: "card"})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentIntentSucceeded, intent.Status)
}

func TestMarkAsPaidRejections(t *testing.T) {
	t.Run("amount mismatch", func(t *testing.T) {
		f := newInvoiceFixture(t)
		inv := sentInvoice(uuid.New())
		f.invoices.EXPECT().GetInvoiceForUpdate(mock.Anything, inv.ID).Return(inv, nil)

		_, err := f.uc.MarkAsPaid(context.Background(), inv.ID, port.MarkPaidReq{Amount: dec("1149.99"), PaymentMethod: "card"})
		require.ErrorIs(t, err, domain.ErrValidation)
		assert.Contains(t, err.Error(), "paid amount does not match invoice total")
		assert.Equal(t, domain.InvoiceStatusSent, inv.Status)
		assert.Nil(t, inv.PaidAt)
	})
	t.Run("draft invoice", func(t *testing.T) {
		f := newInvoiceFixture(t)
		inv := sentInvoice(uuid.New())
		inv.Status = domain.InvoiceStatusDraft
		f.invoices.EXPECT().GetInvoiceForUpdate(mock.Anything, inv.ID).Return(inv, nil)

		_, err := f.uc.MarkAsPaid(context.Background(), inv.ID, port.MarkPaidReq{Amount: dec("1150"), PaymentMethod: "card"})
		require.ErrorIs(t, err, domain.ErrInvalidTransition)
	})
	t.Run("already paid", func(t *testing.T) {
		f := newInvoiceFixture(t)
		inv := sentInvoice(uuid.New())
		inv.Status = domain.InvoiceStatusPaid
		f.invoices.EXPECT().GetInvoiceForUpdate(mock.Anything, inv.ID).Return(inv, nil)

		_, err := f.uc.MarkAsPaid(context.Background(), inv.ID, port.MarkPaidReq{Amount: dec("1150"), PaymentMethod: "card"})
		require.ErrorIs(t, err, domain.ErrInvalidTransition)
	})
	t.Run("written off intent", func(t *testing.T) {
		f := newInvoiceFixture(t)
		intent := &domain.PaymentIntent{ID: uuid.New(), Status: domain.PaymentIntentWrittenOff, RetryCount: 3}
		inv := sentInvoice(intent.ID)
		f.invoices.EXPECT().GetInvoiceForUpdate(mock.Anything, inv.ID).Return(inv, nil)
		f.intents.EXPECT().GetPaymentIntentForUpdate(mock.Anything, intent.ID).Return(intent, nil)

		_, err := f.uc.MarkAsPaid(context.Background(), inv.ID, port.MarkPaidReq{Amount: dec("1150"), PaymentMethod: "card"})
		require.ErrorIs(t, err, domain.ErrInvalidTransition)
		assert.Equal(t, domain.InvoiceStatusSent, inv.Status)
	})
	t.Run("missing payment method", func(t *testing.T) {
		f := newInvoiceFixture(t)
		_, err := f.uc.MarkAsPaid(context.Background(), uuid.New(), port.MarkPaidReq{Amount: dec("1")})
		require.ErrorIs(t, err, domain.ErrValidation)
	})
	t.Run("unknown invoice", func(t *testing.T) {
		f := newInvoiceFixture(t)
		id := uuid.New()
		f.invoices.EXPECT().GetInvoiceForUpdate(mock.Anything, id).Return(nil, nil)

		_, err := f.uc.MarkAsPaid(context.Background(), id, port.MarkPaidReq{Amount: dec("1"), PaymentMethod: "card"})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestInvoiceLifecycleTransitions(t *testing.T) {
	tests := []struct {
		name string
		from domain.InvoiceStatus
		act  func(*InvoiceUseCase, context.Context, uuid.UUID) (*domain.Invoice, error)
		ok   bool
	}{
		{"send draft", domain.InvoiceStatusDraft, (*InvoiceUseCase).SendInvoice, true},
		{"send sent", domain.InvoiceStatusSent, (*InvoiceUseCase).SendInvoice, false},
		{"send cancelled", domain.InvoiceStatusCancelled, (*InvoiceUseCase).SendInvoice, false},
		{"cancel draft", domain.InvoiceStatusDraft, (*InvoiceUseCase).CancelInvoice, true},
		{"cancel sent", domain.InvoiceStatusSent, (*InvoiceUseCase).CancelInvoice, true},
		{"cancel overdue", domain.InvoiceStatusOverdue, (*InvoiceUseCase).CancelInvoice, true},
		{"cancel paid", domain.InvoiceStatusPaid, (*InvoiceUseCase).CancelInvoice, false},
		{"cancel cancelled", domain.InvoiceStatusCancelled, (*InvoiceUseCase).CancelInvoice, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newInvoiceFixture(t)
			inv := sentInvoice(uuid.New())
			inv.Status = tt.from
			f.invoices.EXPECT().GetInvoiceForUpdate(mock.Anything, inv.ID).Return(inv, nil)
			if tt.ok {
				f.invoices.EXPECT().UpdateInvoiceStatus(mock.Anything, inv).Return(nil)
			}

			got, err := tt.act(f.uc, context.Background(), inv.ID)
			if !tt.ok {
				require.ErrorIs(t, err, domain.ErrInvalidTransition)
				assert.Equal(t, tt.from, inv.Status)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, tt.from, got.Status)
			assert.Equal(t, testNow, got.UpdatedAt)
		})
	}
}

func TestMarkOverdueInvoices(t *testing.T) {
	f := newInvoiceFixture(t)
	today := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	withStatus := func(status domain.InvoiceStatus, due time.Time) *domain.Invoice {
		inv := sentInvoice(uuid.New())
		inv.Status = status
		inv.DueDate = due
		return inv
	}
	table := []*domain.Invoice{
		withStatus(domain.InvoiceStatusSent, today.AddDate(0, 0, -1)),
		withStatus(domain.InvoiceStatusSent, today.AddDate(0, 0, -30)),
		withStatus(domain.InvoiceStatusSent, today),
		withStatus(domain.InvoiceStatusSent, today.AddDate(0, 0, 3)),
		withStatus(domain.InvoiceStatusDraft, today.AddDate(0, 0, -5)),
		withStatus(domain.InvoiceStatusPaid, today.AddDate(0, 0, -5)),
		withStatus(domain.InvoiceStatusCancelled, today.AddDate(0, 0, -5)),
		withStatus(domain.InvoiceStatusOverdue, today.AddDate(0, 0, -5)),
	}
	f.invoices.EXPECT().MarkOverdue(mock.Anything, today).
		RunAndReturn(func(_ context.Context, before time.Time) (int64, error) {
			var n int64
			for _, inv := range table {
				if inv.IsOverdue(before) {
					require.NoError(t, inv.Transition(domain.InvoiceStatusOverdue, before))
					n++
				}
			}
			return n, nil
		}).Times(2)

	n, err := f.uc.MarkOverdueInvoices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, domain.InvoiceStatusOverdue, table[0].Status)
	assert.Equal(t, domain.InvoiceStatusOverdue, table[1].Status)
	assert.Equal(t, domain.InvoiceStatusSent, table[2].Status)
	assert.Equal(t, domain.InvoiceStatusSent, table[3].Status)
	assert.Equal(t, domain.InvoiceStatusDraft, table[4].Status)

	n, err = f.uc.MarkOverdueInvoices(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestInvoiceLookups(t *testing.T) {
	f := newInvoiceFixture(t)
	inv := sentInvoice(uuid.New())
	f.invoices.EXPECT().GetInvoiceByNumber(mock.Anything, inv.InvoiceNumber).Return(inv, nil)
	f.invoices.EXPECT().GetInvoiceByNumber(mock.Anything, "INV-202501-9998").Return(nil, nil)
	f.invoices.EXPECT().GetInvoice(mock.Anything, mock.Anything).Return(nil, nil)

	got, err := f.uc.GetInvoiceByNumber(context.Background(), inv.InvoiceNumber)
	require.NoError(t, err)
	assert.Equal(t, inv.ID, got.ID)

	_, err = f.uc.GetInvoiceByNumber(context.Background(), "INV-202501-9998")
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.uc.GetInvoice(context.Background(), uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)

	bank := f.uc.GetBankAccountDetails()
	assert.Equal(t, "FCBKUS33", bank.SwiftCode)
	assert.Equal(t, "USD", bank.Currency)
}

func TestInvoiceSettingsValidate(t *testing.T) {
	require.NoError(t, testSettings().Validate())

	bad := testSettings()
	bad.VATRate = dec("1.5")
	assert.Error(t, bad.Validate())

	bad = testSettings()
	bad.Prefix = "INV-EU"
	assert.Error(t, bad.Validate())

	bad = testSettings()
	bad.DueDays = -1
	assert.Error(t, bad.Validate())

	for _, currency := range []string{"", "usd", "EURO"} {
		bad = testSettings()
		bad.Currency = currency
		assert.Errorf(t, bad.Validate(), "currency %q", currency)
	}
}
