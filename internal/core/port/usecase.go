package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"groupbuy/internal/core/domain"
)

// CampaignUseCase defines the campaign, bracket ladder and pricing
// operations. It is the primary port used by the HTTP adapter.
type CampaignUseCase interface {
	CreateCampaign(ctx context.Context, req CampaignReq) (*domain.Campaign, error)
	// UpdateCampaign replaces the core fields of a DRAFT campaign.
	UpdateCampaign(ctx context.Context, id uuid.UUID, req CampaignReq) (*domain.Campaign, error)
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, filter CampaignFilter) ([]domain.Campaign, error)
	// DeleteCampaign removes a DRAFT campaign.
	DeleteCampaign(ctx context.Context, id uuid.UUID) error
	// PublishCampaign moves a DRAFT campaign with a non-empty ladder to ACTIVE.
	PublishCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	CancelCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// CompleteCampaign closes a LOCKED campaign once fulfilment is done.
	CompleteCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// LockCampaign moves an ACTIVE campaign to LOCKED, fixes the bracket from
	// the committed pledges and generates invoices in the same transaction.
	LockCampaign(ctx context.Context, id uuid.UUID) (*LockResult, error)
	// GetPricing aggregates committed pledges and resolves the bracket. It has
	// no side effects.
	GetPricing(ctx context.Context, id uuid.UUID) (*PricingSnapshot, error)

	ListBrackets(ctx context.Context, campaignID uuid.UUID) ([]domain.DiscountBracket, error)
	AddBracket(ctx context.Context, campaignID uuid.UUID, req BracketReq) (*domain.DiscountBracket, error)
	UpdateBracket(ctx context.Context, campaignID, bracketID uuid.UUID, req BracketReq) (*domain.DiscountBracket, error)
	DeleteBracket(ctx context.Context, campaignID, bracketID uuid.UUID) error
}

// InvoiceGenerator turns the committed pledges of a locked campaign into
// invoices priced at the resolved bracket.
type InvoiceGenerator interface {
	// GenerateInvoicesForCampaign is safe to re-run: pledges that already
	// have an invoice are skipped and only newly created invoices are
	// returned.
	GenerateInvoicesForCampaign(ctx context.Context, campaignID uuid.UUID, bracket domain.DiscountBracket) ([]domain.Invoice, error)
}

// InvoiceUseCase defines invoice generation and the settlement lifecycle.
type InvoiceUseCase interface {
	InvoiceGenerator
	// RegenerateInvoices re-runs generation for a LOCKED campaign using the
	// bracket recorded at lock time.
	RegenerateInvoices(ctx context.Context, campaignID uuid.UUID) ([]domain.Invoice, error)
	GetInvoice(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	GetInvoiceByNumber(ctx context.Context, number string) (*domain.Invoice, error)
	ListCampaignInvoices(ctx context.Context, campaignID uuid.UUID) ([]domain.Invoice, error)
	SendInvoice(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	// MarkAsPaid settles a SENT or OVERDUE invoice. The amount must equal the
	// invoice total exactly.
	MarkAsPaid(ctx context.Context, id uuid.UUID, req MarkPaidReq) (*domain.Invoice, error)
	CancelInvoice(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	// MarkOverdueInvoices is the periodic sweep moving past-due SENT invoices
	// to OVERDUE. It returns the number of invoices changed.
	MarkOverdueInvoices(ctx context.Context) (int64, error)
	GetBankAccountDetails() domain.BankAccountDetails
}

// PaymentIntentUseCase exposes the payment intent state machine.
type PaymentIntentUseCase interface {
	GetPaymentIntent(ctx context.Context, id uuid.UUID) (*domain.PaymentIntent, error)
	// UpdatePaymentStatus is the single mutation entry point for intents.
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status domain.PaymentIntentStatus) (*domain.PaymentIntent, error)
}

// CampaignReq carries the mutable core fields of a campaign.
type CampaignReq struct {
	SupplierOrganizationID uuid.UUID `json:"supplier_organization_id"`
	Title                  string    `json:"title"`
	Description            string    `json:"description"`
	TargetQuantity         int64     `json:"target_quantity"`
	StartDate              time.Time `json:"start_date"`
	EndDate                time.Time `json:"end_date"`
}

// BracketReq carries the fields of a discount bracket.
type BracketReq struct {
	MinQuantity  int64           `json:"min_quantity"`
	MaxQuantity  *int64          `json:"max_quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	BracketOrder int             `json:"bracket_order"`
}

// MarkPaidReq records how an invoice was paid. RecordedBy is the user id
// resolved by the authentication layer.
type MarkPaidReq struct {
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	PaymentDate   time.Time       `json:"payment_date"`
	Note          *string         `json:"note,omitempty"`
	RecordedBy    string          `json:"-"`
}

// PricingSnapshot is the aggregated pricing view of a campaign.
type PricingSnapshot struct {
	CampaignID     uuid.UUID             `json:"campaign_id"`
	Status         domain.CampaignStatus `json:"status"`
	TargetQuantity int64                 `json:"target_quantity"`
	PledgeCount    int                   `json:"pledge_count"`
	TargetReached  bool                  `json:"target_reached"`
	domain.BracketResolution
}

// LockResult is returned by LockCampaign.
type LockResult struct {
	Campaign domain.Campaign        `json:"campaign"`
	Bracket  domain.DiscountBracket `json:"bracket"`
	Invoices []domain.Invoice       `json:"invoices"`
}
