package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.True(t, cfg.Settlement.VATRate.Equal(decimal.RequireFromString("0.15")))
	assert.Equal(t, 30, cfg.Settlement.DueDays)
	assert.Equal(t, "INV", cfg.Settlement.InvoicePrefix)
	assert.Equal(t, "USD", cfg.Settlement.Currency)
	assert.Equal(t, time.Hour, cfg.Scheduler.OverdueInterval)
	assert.Equal(t, uint(5), cfg.Psql.TxMaxTries)
}

func TestLoadFromEnvAndDotenv(t *testing.T) {
	dotenv := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte("BANK_SWIFT_CODE=DEUTDEFF\nSETTLEMENT_DUE_DAYS=14\n"), 0o600))

	t.Setenv("SETTLEMENT_VAT_RATE", "0.075")
	t.Setenv("SETTLEMENT_DUE_DAYS", "21")
	t.Setenv("SCHEDULER_OVERDUE_INTERVAL", "15m")
	t.Setenv("LOG_FORMAT", "JSON")
	// restored on cleanup after godotenv sets it
	t.Setenv("BANK_SWIFT_CODE", "")
	require.NoError(t, os.Unsetenv("BANK_SWIFT_CODE"))

	cfg, err := Load(dotenv)
	require.NoError(t, err)

	assert.True(t, cfg.Settlement.VATRate.Equal(decimal.RequireFromString("0.075")))
	assert.Equal(t, 21, cfg.Settlement.DueDays, "process env wins over .env")
	assert.Equal(t, "DEUTDEFF", cfg.Bank.SwiftCode)
	assert.Equal(t, 15*time.Minute, cfg.Scheduler.OverdueInterval)
	assert.Equal(t, "json", cfg.Log.SlogFormat())
}

func TestLoadRejectsBadVATRate(t *testing.T) {
	t.Setenv("SETTLEMENT_VAT_RATE", "fifteen percent")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}
