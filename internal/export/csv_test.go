package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tesouraria/ecc-ledger/internal/models"
)

func TestWrite(t *testing.T) {
	txs := []models.Transaction{
		{Date: "01/05/2025", Description: "Venda Pizza", Amount: decimal.NewFromInt(100), Kind: models.Entry, Category: "Venda", Project: "Pizza"},
		{Date: "02/05/2025", Description: "Tarifa", Amount: decimal.NewFromFloat(12.50), Kind: models.Exit, Category: "Tarifa Bancária", Project: "Outros", Note: "mensal"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, txs))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Data,Projeto,Descricao,Categoria,Observacao,Valor", strings.TrimSpace(lines[0]))
	assert.Contains(t, lines[1], "100.00")
	// Exits are exported signed.
	assert.Contains(t, lines[2], "-12.50")
	assert.Contains(t, lines[2], "mensal")
}

func TestWrite_EmptyLedger(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))
	assert.Contains(t, buf.String(), "Data")
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "ledger.csv")
	txs := []models.Transaction{
		{Date: "01/05/2025", Description: "Oferta", Amount: decimal.NewFromInt(50), Kind: models.Entry},
	}
	require.NoError(t, WriteFile(path, txs))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Oferta")
}
