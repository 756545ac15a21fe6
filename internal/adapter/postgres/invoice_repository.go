package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"groupbuy/internal/core/domain"
)

const invoiceColumns = `id, invoice_number, payment_intent_id, pledge_id, campaign_id, buyer_organization_id,
	quantity, unit_price, subtotal, tax_amount, total_amount, status, issue_date, due_date,
	sent_at, paid_at, cancelled_at, created_at, updated_at`

// InvoiceRepository implements port.InvoiceRepository using pgxpool.
type InvoiceRepository struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository returns a new repository instance.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{pool: pool}
}

func scanInvoice(row pgx.Row) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := row.Scan(&inv.ID, &inv.InvoiceNumber, &inv.PaymentIntentID, &inv.PledgeID, &inv.CampaignID,
		&inv.BuyerOrganizationID, &inv.Quantity, &inv.UnitPrice, &inv.Subtotal, &inv.TaxAmount,
		&inv.TotalAmount, &inv.Status, &inv.IssueDate, &inv.DueDate, &inv.SentAt, &inv.PaidAt,
		&inv.CancelledAt, &inv.CreatedAt, &inv.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// GetInvoice returns an invoice by id.
func (r *InvoiceRepository) GetInvoice(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return scanInvoice(conn(ctx, r.pool).QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id))
}

// GetInvoiceForUpdate returns an invoice by id and locks its row, so
// concurrent transitions are evaluated one after another.
func (r *InvoiceRepository) GetInvoiceForUpdate(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return scanInvoice(conn(ctx, r.pool).QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1 FOR UPDATE`, id))
}

// GetInvoiceByNumber returns an invoice by its number.
func (r *InvoiceRepository) GetInvoiceByNumber(ctx context.Context, number string) (*domain.Invoice, error) {
	return scanInvoice(conn(ctx, r.pool).QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE invoice_number = $1`, number))
}

// ListInvoicesByCampaign returns the invoices of a campaign in number order.
func (r *InvoiceRepository) ListInvoicesByCampaign(ctx context.Context, campaignID uuid.UUID) ([]domain.Invoice, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `SELECT `+invoiceColumns+` FROM invoices
		WHERE campaign_id = $1 ORDER BY length(invoice_number), invoice_number`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Invoice, error) {
		inv, err := scanInvoice(row)
		if err != nil {
			return domain.Invoice{}, err
		}
		return *inv, nil
	})
}

// ListInvoicedPledgeIDs walks invoice -> payment intent -> pledge for the campaign.
func (r *InvoiceRepository) ListInvoicedPledgeIDs(ctx context.Context, campaignID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `SELECT pi.pledge_id
		FROM invoices i
		JOIN payment_intents pi ON pi.id = i.payment_intent_id
		WHERE pi.campaign_id = $1`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
}

// LockInvoiceSequence creates the month counter row if needed, locks it and
// returns the last sequence value issued under the prefix. A concurrent
// transaction that waited for the lock fails with a serialization error once
// the holder has advanced the counter.
func (r *InvoiceRepository) LockInvoiceSequence(ctx context.Context, monthPrefix string) (int64, error) {
	q := conn(ctx, r.pool)
	if _, err := q.Exec(ctx, `INSERT INTO invoice_sequences (prefix) VALUES ($1) ON CONFLICT (prefix) DO NOTHING`, monthPrefix); err != nil {
		return 0, fmt.Errorf("ensure invoice sequence: %w", err)
	}
	var last int64
	if err := q.QueryRow(ctx, `SELECT last_value FROM invoice_sequences WHERE prefix = $1 FOR UPDATE`, monthPrefix).Scan(&last); err != nil {
		return 0, fmt.Errorf("lock invoice sequence: %w", err)
	}
	return last, nil
}

// SaveInvoiceSequence stores the last sequence value issued under the prefix.
func (r *InvoiceRepository) SaveInvoiceSequence(ctx context.Context, monthPrefix string, last int64) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, `UPDATE invoice_sequences
		SET last_value = $2, updated_at = now()
		WHERE prefix = $1`, monthPrefix, last)
	if err != nil {
		return fmt.Errorf("save invoice sequence: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("invoice sequence", monthPrefix)
	}
	return nil
}

// CreateInvoice inserts an invoice.
func (r *InvoiceRepository) CreateInvoice(ctx context.Context, inv *domain.Invoice) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `INSERT INTO invoices (`+invoiceColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)`,
		inv.ID, inv.InvoiceNumber, inv.PaymentIntentID, inv.PledgeID, inv.CampaignID, inv.BuyerOrganizationID,
		inv.Quantity, inv.UnitPrice, inv.Subtotal, inv.TaxAmount, inv.TotalAmount, inv.Status,
		inv.IssueDate, inv.DueDate, inv.SentAt, inv.PaidAt, inv.CancelledAt, inv.CreatedAt, inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert invoice %s: %w", inv.InvoiceNumber, err)
	}
	return nil
}

// UpdateInvoiceStatus stores the status and lifecycle timestamps. Financial
// columns are never rewritten.
func (r *InvoiceRepository) UpdateInvoiceStatus(ctx context.Context, inv *domain.Invoice) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, `UPDATE invoices
		SET status = $2, sent_at = $3, paid_at = $4, cancelled_at = $5, updated_at = $6
		WHERE id = $1`,
		inv.ID, inv.Status, inv.SentAt, inv.PaidAt, inv.CancelledAt, inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("invoice", inv.ID)
	}
	return nil
}

// CreateInvoicePayment inserts the payment record of an invoice.
func (r *InvoiceRepository) CreateInvoicePayment(ctx context.Context, p *domain.InvoicePayment) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `INSERT INTO invoice_payments
		(id, invoice_id, amount, payment_method, payment_date, note, recorded_by, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		p.ID, p.InvoiceID, p.Amount, p.PaymentMethod, p.PaymentDate, p.Note, p.RecordedBy, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert invoice payment: %w", err)
	}
	return nil
}

// MarkOverdue flips past-due SENT invoices to OVERDUE in one statement. The
// WHERE clause matches Invoice.IsOverdue: rows already OVERDUE, PAID or
// CANCELLED are untouched, so re-running is a no-op.
func (r *InvoiceRepository) MarkOverdue(ctx context.Context, before time.Time) (int64, error) {
	tag, err := conn(ctx, r.pool).Exec(ctx, `UPDATE invoices SET status = $1, updated_at = now()
		WHERE status = $2 AND due_date < $3`,
		domain.InvoiceStatusOverdue, domain.InvoiceStatusSent, before)
	if err != nil {
		return 0, fmt.Errorf("mark overdue invoices: %w", err)
	}
	return tag.RowsAffected(), nil
}
