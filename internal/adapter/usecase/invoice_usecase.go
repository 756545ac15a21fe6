package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"groupbuy/internal/core/domain"
	"groupbuy/internal/core/port"
)

// InvoiceSettings is the immutable settlement configuration injected at
// construction.
type InvoiceSettings struct {
	// VATRate is a fraction, e.g. 0.15 for 15%.
	VATRate decimal.Decimal
	// DueDays is added to the issue date to get the due date.
	DueDays int
	// Prefix starts every invoice number, e.g. INV in INV-202501-0001.
	Prefix string
	// Currency is the ISO 4217 code all amounts are billed in.
	Currency string
	Bank     domain.BankAccountDetails
}

// Validate rejects settings that would produce malformed invoices.
func (s InvoiceSettings) Validate() error {
	if s.VATRate.IsNegative() || s.VATRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("vat rate %s must be in [0, 1)", s.VATRate)
	}
	if s.DueDays < 0 {
		return fmt.Errorf("due days %d must not be negative", s.DueDays)
	}
	if s.Prefix == "" || strings.Contains(s.Prefix, "-") {
		return fmt.Errorf("invoice prefix %q must be non-empty and must not contain '-'", s.Prefix)
	}
	if len(s.Currency) != 3 || strings.ToUpper(s.Currency) != s.Currency {
		return fmt.Errorf("currency %q must be a three-letter uppercase ISO 4217 code", s.Currency)
	}
	return nil
}

// InvoiceUseCase generates invoices for locked campaigns and drives their
// settlement lifecycle. It implements port.InvoiceUseCase.
type InvoiceUseCase struct {
	tx        port.Transactor
	invoices  port.InvoiceRepository
	campaigns port.CampaignRepository
	pledges   port.PledgeRepository
	intents   port.PaymentIntentRepository
	payments  port.PaymentIntentUseCase
	settings  InvoiceSettings
	logger    *slog.Logger

	now func() time.Time
}

// NewInvoiceUseCase wires the invoice use case. Payment intent status changes
// go through payments so the intent state machine has one entry point.
func NewInvoiceUseCase(
	tx port.Transactor,
	invoices port.InvoiceRepository,
	campaigns port.CampaignRepository,
	pledges port.PledgeRepository,
	intents port.PaymentIntentRepository,
	payments port.PaymentIntentUseCase,
	settings InvoiceSettings,
	logger *slog.Logger,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		tx:        tx,
		invoices:  invoices,
		campaigns: campaigns,
		pledges:   pledges,
		intents:   intents,
		payments:  payments,
		settings:  settings,
		logger:    logger,
		now:       utcNow,
	}
}

func utcNow() time.Time { return time.Now().UTC() }

// GenerateInvoicesForCampaign creates one DRAFT invoice per committed pledge
// that has none yet, all within one transaction. Numbers are allocated under
// the locked month counter, so concurrent runs cannot issue the same number.
func (u *InvoiceUseCase) GenerateInvoicesForCampaign(ctx context.Context, campaignID uuid.UUID, bracket domain.DiscountBracket) ([]domain.Invoice, error) {
	if err := bracket.Validate(); err != nil {
		return nil, err
	}
	if bracket.CampaignID != campaignID {
		return nil, domain.NewValidation("bracket", "bracket does not belong to the campaign")
	}

	var created []domain.Invoice
	err := u.tx.WithinTx(ctx, func(ctx context.Context) error {
		// the transaction may be replayed; start from a clean slate
		created = created[:0]

		camp, err := u.campaigns.GetCampaign(ctx, campaignID)
		if err != nil {
			return err
		}
		if camp == nil {
			return domain.NewNotFound("campaign", campaignID)
		}
		if camp.Status != domain.CampaignStatusLocked && camp.Status != domain.CampaignStatusCompleted {
			return domain.NewValidation("status", "invoices can only be generated for LOCKED campaigns")
		}

		pledges, err := u.pledges.ListPledgesByCampaignAndStatus(ctx, campaignID, domain.PledgeStatusCommitted)
		if err != nil {
			return err
		}
		if len(pledges) == 0 {
			return nil
		}

		invoicedIDs, err := u.invoices.ListInvoicedPledgeIDs(ctx, campaignID)
		if err != nil {
			return err
		}
		invoiced := make(map[uuid.UUID]struct{}, len(invoicedIDs))
		for _, id := range invoicedIDs {
			invoiced[id] = struct{}{}
		}

		now := u.now()
		issue, due := domain.IssueAndDueDates(now, u.settings.DueDays)
		monthPrefix := domain.InvoiceNumberPrefix(u.settings.Prefix, now)
		var (
			seq      int64
			seqTaken bool
		)
		for _, p := range pledges {
			if _, ok := invoiced[p.ID]; ok {
				continue
			}
			intent, err := u.intents.FindPaymentIntentByPledge(ctx, p.ID)
			if err != nil {
				return err
			}
			if intent == nil {
				return domain.NewNotFound("payment intent for pledge", p.ID)
			}

			if !seqTaken {
				if seq, err = u.invoices.LockInvoiceSequence(ctx, monthPrefix); err != nil {
					return err
				}
				seqTaken = true
			}
			seq++
			number := domain.FormatInvoiceNumber(monthPrefix, seq)

			amounts := domain.ComputeInvoiceAmounts(p.Quantity, bracket.UnitPrice, u.settings.VATRate)
			inv := domain.Invoice{
				ID:                  uuid.New(),
				InvoiceNumber:       number,
				PaymentIntentID:     intent.ID,
				PledgeID:            p.ID,
				CampaignID:          campaignID,
				BuyerOrganizationID: p.BuyerOrganizationID,
				Quantity:            p.Quantity,
				UnitPrice:           bracket.UnitPrice,
				Subtotal:            amounts.Subtotal,
				TaxAmount:           amounts.Tax,
				TotalAmount:         amounts.Total,
				Status:              domain.InvoiceStatusDraft,
				IssueDate:           issue,
				DueDate:             due,
				CreatedAt:           now,
				UpdatedAt:           now,
			}
			if err = u.invoices.CreateInvoice(ctx, &inv); err != nil {
				return err
			}

			if !intent.Amount.Equal(inv.TotalAmount) {
				intent.Amount = inv.TotalAmount
				intent.UpdatedAt = now
				if err = u.intents.UpdatePaymentIntent(ctx, intent); err != nil {
					return err
				}
			}
			created = append(created, inv)
		}
		if seqTaken {
			return u.invoices.SaveInvoiceSequence(ctx, monthPrefix, seq)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("generate invoices for campaign %s: %w", campaignID, err)
	}

	u.logger.Info("invoices generated",
		slog.String("campaign_id", campaignID.String()),
		slog.String("bracket_id", bracket.ID.String()),
		slog.Int("created", len(created)))
	return created, nil
}

// RegenerateInvoices re-runs generation with the bracket fixed at lock time.
func (u *InvoiceUseCase) RegenerateInvoices(ctx context.Context, campaignID uuid.UUID) ([]domain.Invoice, error) {
	camp, err := u.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if camp == nil {
		return nil, domain.NewNotFound("campaign", campaignID)
	}
	if camp.LockedBracketID == nil {
		return nil, domain.NewValidation("status", "campaign has not been locked")
	}
	bracket, err := u.campaigns.GetBracket(ctx, *camp.LockedBracketID)
	if err != nil {
		return nil, err
	}
	if bracket == nil {
		return nil, domain.NewNotFound("bracket", *camp.LockedBracketID)
	}
	return u.GenerateInvoicesForCampaign(ctx, campaignID, *bracket)
}

// GetInvoice returns an invoice by id.
func (u *InvoiceUseCase) GetInvoice(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	inv, err := u.invoices.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.NewNotFound("invoice", id)
	}
	return inv, nil
}

// GetInvoiceByNumber returns an invoice by its number.
func (u *InvoiceUseCase) GetInvoiceByNumber(ctx context.Context, number string) (*domain.Invoice, error) {
	inv, err := u.invoices.GetInvoiceByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.NewNotFound("invoice", number)
	}
	return inv, nil
}

// ListCampaignInvoices returns every invoice of a campaign.
func (u *InvoiceUseCase) ListCampaignInvoices(ctx context.Context, campaignID uuid.UUID) ([]domain.Invoice, error) {
	camp, err := u.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if camp == nil {
		return nil, domain.NewNotFound("campaign", campaignID)
	}
	return u.invoices.ListInvoicesByCampaign(ctx, campaignID)
}

// SendInvoice moves a DRAFT invoice to SENT.
func (u *InvoiceUseCase) SendInvoice(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return u.transition(ctx, id, domain.InvoiceStatusSent)
}

// CancelInvoice cancels an invoice that is not PAID or already CANCELLED.
func (u *InvoiceUseCase) CancelInvoice(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return u.transition(ctx, id, domain.InvoiceStatusCancelled)
}

// transition applies next under a row lock, so a concurrent sweep or
// settlement that commits first is seen and may make next illegal.
func (u *InvoiceUseCase) transition(ctx context.Context, id uuid.UUID, next domain.InvoiceStatus) (*domain.Invoice, error) {
	var out *domain.Invoice
	err := u.tx.WithinTx(ctx, func(ctx context.Context) error {
		inv, err := u.invoices.GetInvoiceForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.NewNotFound("invoice", id)
		}
		from := inv.Status
		if err = inv.Transition(next, u.now()); err != nil {
			return err
		}
		if err = u.invoices.UpdateInvoiceStatus(ctx, inv); err != nil {
			return err
		}
		u.logger.Info("invoice status changed",
			slog.String("invoice_id", id.String()),
			slog.String("from", string(from)),
			slog.String("to", string(next)))
		out = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MarkAsPaid settles an invoice, records the payment and moves the backing
// payment intent to SUCCEEDED, or to COLLECTED_VIA_AR when collection had
// already been escalated to accounts receivable.
func (u *InvoiceUseCase) MarkAsPaid(ctx context.Context, id uuid.UUID, req port.MarkPaidReq) (*domain.Invoice, error) {
	if strings.TrimSpace(req.PaymentMethod) == "" {
		return nil, domain.NewValidation("payment_method", "is required")
	}

	var out *domain.Invoice
	err := u.tx.WithinTx(ctx, func(ctx context.Context) error {
		inv, err := u.invoices.GetInvoiceForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.NewNotFound("invoice", id)
		}
		if !inv.Status.CanTransitionTo(domain.InvoiceStatusPaid) {
			return &domain.TransitionError{Entity: "invoice", From: string(inv.Status), To: string(domain.InvoiceStatusPaid)}
		}
		if !req.Amount.Equal(inv.TotalAmount) {
			return domain.NewValidation("amount", "paid amount does not match invoice total")
		}

		intent, err := u.intents.GetPaymentIntentForUpdate(ctx, inv.PaymentIntentID)
		if err != nil {
			return err
		}
		if intent == nil {
			return domain.NewNotFound("payment intent", inv.PaymentIntentID)
		}
		target, change, err := intent.SettlementStatus()
		if err != nil {
			return err
		}
		if change {
			if _, err = u.payments.UpdatePaymentStatus(ctx, intent.ID, target); err != nil {
				return err
			}
		}

		now := u.now()
		if err = inv.Transition(domain.InvoiceStatusPaid, now); err != nil {
			return err
		}
		if err = u.invoices.UpdateInvoiceStatus(ctx, inv); err != nil {
			return err
		}

		paidOn := req.PaymentDate
		if paidOn.IsZero() {
			paidOn = now
		}
		payment := domain.InvoicePayment{
			ID:            uuid.New(),
			InvoiceID:     inv.ID,
			Amount:        req.Amount,
			PaymentMethod: req.PaymentMethod,
			PaymentDate:   paidOn,
			Note:          req.Note,
			RecordedBy:    req.RecordedBy,
			CreatedAt:     now,
		}
		if err = u.invoices.CreateInvoicePayment(ctx, &payment); err != nil {
			return err
		}

		u.logger.Info("invoice paid",
			slog.String("invoice_id", id.String()),
			slog.String("invoice_number", inv.InvoiceNumber),
			slog.String("payment_intent_id", intent.ID.String()),
			slog.String("intent_status", string(target)))
		out = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MarkOverdueInvoices moves SENT invoices whose due date is before today to
// OVERDUE. Invoices already OVERDUE are not counted again.
func (u *InvoiceUseCase) MarkOverdueInvoices(ctx context.Context) (int64, error) {
	today, _ := domain.IssueAndDueDates(u.now(), 0)
	n, err := u.invoices.MarkOverdue(ctx, today)
	if err != nil {
		return 0, err
	}
	u.logger.Info("overdue sweep finished", slog.Int64("marked", n))
	return n, nil
}

// GetBankAccountDetails returns the configured remittance details along with
// the billing currency.
func (u *InvoiceUseCase) GetBankAccountDetails() domain.BankAccountDetails {
	details := u.settings.Bank
	details.Currency = u.settings.Currency
	return details
}
