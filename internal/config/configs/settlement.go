package configs

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settlement holds the invoicing rules. VATRate is parsed as an exact
// decimal fraction, e.g. 0.15.
type Settlement struct {
	VATRate       decimal.Decimal `env:"VAT_RATE" envDefault:"0.15"`
	DueDays       int             `env:"DUE_DAYS" envDefault:"30"`
	InvoicePrefix string          `env:"INVOICE_PREFIX" envDefault:"INV"`
	Currency      string          `env:"CURRENCY" envDefault:"USD"`
}

// Bank holds the remittance details printed on sent invoices.
type Bank struct {
	Name          string `env:"NAME" envDefault:"First Commerce Bank"`
	AccountNumber string `env:"ACCOUNT_NUMBER"`
	SwiftCode     string `env:"SWIFT_CODE"`
	AccountHolder string `env:"ACCOUNT_HOLDER"`
}

// Scheduler controls background jobs started by the serve command.
type Scheduler struct {
	Enabled         bool          `env:"ENABLED" envDefault:"true"`
	OverdueInterval time.Duration `env:"OVERDUE_INTERVAL" envDefault:"1h"`
}
