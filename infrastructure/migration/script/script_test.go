package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sales.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSeed(t *testing.T) {
	path := writeSeed(t, `[
		{"saleTotal": 100, "creditCard": false, "buyerName": "A"},
		{"saleTotal": 200, "creditCard": true, "buyerName": "B"}
	]`)

	records, err := loadSeed(path)
	require.NoError(t, err)
	assert.Equal(t, []domain.SaleRecord{
		{SaleTotal: 100, BuyerName: "A"},
		{SaleTotal: 200, CreditCard: true, BuyerName: "B"},
	}, records)
}

func TestLoadSeed_Errors(t *testing.T) {
	_, err := loadSeed(filepath.Join(t.TempDir(), "inexistente.json"))
	assert.Error(t, err)

	_, err = loadSeed(writeSeed(t, `{"saleTotal": 1}`))
	assert.ErrorIs(t, err, domain.ErrParse)

	_, err = loadSeed(writeSeed(t, `[{"saleTotal": -1, "buyerName": "A"}]`))
	assert.ErrorIs(t, err, domain.ErrInvalidRecord)
}
