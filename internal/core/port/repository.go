package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"groupbuy/internal/core/domain"
)

// Getters in the repositories below return (nil, nil) when the row does not
// exist; use cases turn that into a domain.NotFoundError.

// Transactor runs fn inside a database transaction. Repository calls made
// with the context passed to fn join that transaction. Nested calls reuse the
// outer transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// CampaignRepository persists campaigns and their discount bracket ladders.
// It is an outbound port in hexagonal architecture.
type CampaignRepository interface {
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	UpdateCampaign(ctx context.Context, c *domain.Campaign) error
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// GetCampaignForUpdate reads the campaign and locks its row until the
	// surrounding transaction ends.
	GetCampaignForUpdate(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, filter CampaignFilter) ([]domain.Campaign, error)
	// DeleteCampaign removes the campaign together with its brackets.
	DeleteCampaign(ctx context.Context, id uuid.UUID) error

	ListBrackets(ctx context.Context, campaignID uuid.UUID) ([]domain.DiscountBracket, error)
	GetBracket(ctx context.Context, id uuid.UUID) (*domain.DiscountBracket, error)
	CreateBracket(ctx context.Context, b *domain.DiscountBracket) error
	UpdateBracket(ctx context.Context, b *domain.DiscountBracket) error
	DeleteBracket(ctx context.Context, id uuid.UUID) error
}

// CampaignFilter narrows ListCampaigns. Nil fields do not filter.
type CampaignFilter struct {
	SupplierOrganizationID *uuid.UUID
	Status                 *domain.CampaignStatus
}

// PledgeRepository is the read side of the pledge-management collaborator.
type PledgeRepository interface {
	ListPledgesByCampaignAndStatus(ctx context.Context, campaignID uuid.UUID, status domain.PledgeStatus) ([]domain.Pledge, error)
}

// PaymentIntentRepository persists payment intents. Intents are created by
// the pledge lifecycle and never deleted.
type PaymentIntentRepository interface {
	GetPaymentIntent(ctx context.Context, id uuid.UUID) (*domain.PaymentIntent, error)
	GetPaymentIntentForUpdate(ctx context.Context, id uuid.UUID) (*domain.PaymentIntent, error)
	FindPaymentIntentByPledge(ctx context.Context, pledgeID uuid.UUID) (*domain.PaymentIntent, error)
	// UpdatePaymentIntent stores status, retry count and amount.
	UpdatePaymentIntent(ctx context.Context, pi *domain.PaymentIntent) error
}

// InvoiceRepository persists invoices, their payments and the per-month
// numbering counters.
type InvoiceRepository interface {
	GetInvoice(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	GetInvoiceForUpdate(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	GetInvoiceByNumber(ctx context.Context, number string) (*domain.Invoice, error)
	ListInvoicesByCampaign(ctx context.Context, campaignID uuid.UUID) ([]domain.Invoice, error)
	// ListInvoicedPledgeIDs returns pledges of the campaign that already have
	// an invoice, resolved through invoice -> payment intent -> pledge.
	ListInvoicedPledgeIDs(ctx context.Context, campaignID uuid.UUID) ([]uuid.UUID, error)
	// LockInvoiceSequence locks the counter row of monthPrefix until the
	// surrounding transaction ends and returns the last sequence value issued
	// under it, 0 when the month has none yet.
	LockInvoiceSequence(ctx context.Context, monthPrefix string) (int64, error)
	// SaveInvoiceSequence advances the locked counter row to last.
	SaveInvoiceSequence(ctx context.Context, monthPrefix string, last int64) error
	CreateInvoice(ctx context.Context, inv *domain.Invoice) error
	// UpdateInvoiceStatus stores status and lifecycle timestamps.
	UpdateInvoiceStatus(ctx context.Context, inv *domain.Invoice) error
	CreateInvoicePayment(ctx context.Context, p *domain.InvoicePayment) error
	// MarkOverdue moves every SENT invoice due before the given date to
	// OVERDUE and returns how many rows changed.
	MarkOverdue(ctx context.Context, before time.Time) (int64, error)
}
