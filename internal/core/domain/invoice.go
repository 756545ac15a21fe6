package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "DRAFT"
	InvoiceStatusSent      InvoiceStatus = "SENT"
	InvoiceStatusOverdue   InvoiceStatus = "OVERDUE"
	InvoiceStatusPaid      InvoiceStatus = "PAID"
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"
)

var invoiceTransitions = map[InvoiceStatus][]InvoiceStatus{
	InvoiceStatusDraft:   {InvoiceStatusSent, InvoiceStatusCancelled},
	InvoiceStatusSent:    {InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled},
	InvoiceStatusOverdue: {InvoiceStatusPaid, InvoiceStatusCancelled},
}

// CanTransitionTo is the single authority on legal invoice status changes.
func (s InvoiceStatus) CanTransitionTo(next InvoiceStatus) bool {
	return canTransition(invoiceTransitions, s, next)
}

// moneyScale is the number of fractional digits allowed on unit prices and
// kept on tax amounts.
const moneyScale = 2

// Invoice bills one pledge at the locked bracket price. Financial fields are
// fixed at creation; only the status and its timestamps change afterwards.
type Invoice struct {
	ID                  uuid.UUID       `json:"id"`
	InvoiceNumber       string          `json:"invoice_number"`
	PaymentIntentID     uuid.UUID       `json:"payment_intent_id"`
	PledgeID            uuid.UUID       `json:"pledge_id"`
	CampaignID          uuid.UUID       `json:"campaign_id"`
	BuyerOrganizationID uuid.UUID       `json:"buyer_organization_id"`
	Quantity            int64           `json:"quantity"`
	UnitPrice           decimal.Decimal `json:"unit_price"`
	Subtotal            decimal.Decimal `json:"subtotal"`
	TaxAmount           decimal.Decimal `json:"tax_amount"`
	TotalAmount         decimal.Decimal `json:"total_amount"`
	Status              InvoiceStatus   `json:"status"`
	IssueDate           time.Time       `json:"issue_date"`
	DueDate             time.Time       `json:"due_date"`
	SentAt              *time.Time      `json:"sent_at,omitempty"`
	PaidAt              *time.Time      `json:"paid_at,omitempty"`
	CancelledAt         *time.Time      `json:"cancelled_at,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// Transition moves the invoice to next and stamps the matching timestamp.
func (inv *Invoice) Transition(next InvoiceStatus, at time.Time) error {
	if !inv.Status.CanTransitionTo(next) {
		return &TransitionError{Entity: "invoice", From: string(inv.Status), To: string(next)}
	}
	inv.Status = next
	switch next {
	case InvoiceStatusSent:
		inv.SentAt = &at
	case InvoiceStatusPaid:
		inv.PaidAt = &at
	case InvoiceStatusCancelled:
		inv.CancelledAt = &at
	}
	inv.UpdatedAt = at
	return nil
}

// IsOverdue reports whether a SENT invoice is past its due date on the
// calendar day today. Invoices already OVERDUE are not reported again.
func (inv *Invoice) IsOverdue(today time.Time) bool {
	day, _ := IssueAndDueDates(today, 0)
	return inv.Status == InvoiceStatusSent && inv.DueDate.Before(day)
}

// InvoicePayment records the payment that settled an invoice.
type InvoicePayment struct {
	ID            uuid.UUID       `json:"id"`
	InvoiceID     uuid.UUID       `json:"invoice_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	PaymentDate   time.Time       `json:"payment_date"`
	Note          *string         `json:"note,omitempty"`
	RecordedBy    string          `json:"recorded_by"`
	CreatedAt     time.Time       `json:"created_at"`
}

// InvoiceAmounts holds the exact monetary breakdown of an invoice.
type InvoiceAmounts struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeInvoiceAmounts prices quantity units at unitPrice and applies VAT.
// The subtotal is exact, tax is rounded to cents and total is their exact sum.
func ComputeInvoiceAmounts(quantity int64, unitPrice, vatRate decimal.Decimal) InvoiceAmounts {
	subtotal := unitPrice.Mul(decimal.NewFromInt(quantity))
	tax := subtotal.Mul(vatRate).Round(moneyScale)
	return InvoiceAmounts{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// IssueAndDueDates returns the calendar issue date for now and the due date
// dueDays later.
func IssueAndDueDates(now time.Time, dueDays int) (time.Time, time.Time) {
	y, m, d := now.Date()
	issue := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return issue, issue.AddDate(0, 0, dueDays)
}

// InvoiceNumberPrefix returns the month-scoped prefix, e.g. INV-202501.
func InvoiceNumberPrefix(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%04d%02d", prefix, now.Year(), int(now.Month()))
}

// FormatInvoiceNumber renders the seq-th invoice number of a month. The
// suffix is at least four digits wide, so 9999 is followed by 10000.
func FormatInvoiceNumber(monthPrefix string, seq int64) string {
	return fmt.Sprintf("%s-%04d", monthPrefix, seq)
}

// BankAccountDetails are the remittance details printed on sent invoices.
type BankAccountDetails struct {
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	SwiftCode     string `json:"swift_code"`
	AccountHolder string `json:"account_holder"`
	Currency      string `json:"currency"`
}
