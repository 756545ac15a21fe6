package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"groupbuy/internal/config/configs"
)

func TestNewJSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, closer := New(configs.Logger{Level: "warn", Format: "json"}, &buf)
	defer closer.Close()

	log.Info("dropped")
	log.Warn("invoice overdue", "invoice_number", "INV-202501-0001")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "invoice overdue", rec["msg"])
	assert.Equal(t, "INV-202501-0001", rec["invoice_number"])
}

func TestNewWritesRotatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "groupbuy.log")
	var buf bytes.Buffer
	log, closer := New(configs.Logger{Level: "info", File: path, MaxSizeMB: 1}, &buf)

	log.Info("campaign locked")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "campaign locked")
	assert.Contains(t, buf.String(), "campaign locked")
}
