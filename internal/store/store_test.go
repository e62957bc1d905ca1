package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tesouraria/ecc-ledger/internal/models"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func batch(date, desc string, amount float64, kind models.Kind) []models.Transaction {
	return []models.Transaction{{
		Date:        date,
		Description: desc,
		Amount:      decimal.NewFromFloat(amount),
		Kind:        kind,
	}}
}

func TestNew_EmptyDirectoryStartsWithDefaults(t *testing.T) {
	s := New(t.TempDir(), nil)
	assert.Empty(t, s.Transactions())
	assert.Equal(t, models.DefaultCategories, s.Categories())
	assert.True(t, s.InitialBalance().IsZero())
}

func TestAppend_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, nil)

	added, err := s.Append(batch("01/05/2025", "Venda Pizza", 100, models.Entry))
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	reopened := New(dir, nil)
	txs := reopened.Transactions()
	require.Len(t, txs, 1)
	assert.Equal(t, "Venda Pizza", txs[0].Description)
	assert.True(t, txs[0].Amount.Equal(decimal.NewFromInt(100)))
}

func TestAppend_DuplicateBatchIsNoOp(t *testing.T) {
	s := New(t.TempDir(), nil)

	b := batch("01/05/2025", "Venda Pizza", 100, models.Entry)
	added, err := s.Append(b)
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	added, err = s.Append(b)
	require.NoError(t, err)
	assert.Equal(t, 0, added)
	assert.Len(t, s.Transactions(), 1)
}

func TestUpdateField(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, nil)
	_, err := s.Append(batch("01/05/2025", "Venda Pizza", 100, models.Entry))
	require.NoError(t, err)

	require.NoError(t, s.UpdateField(0, "proj", "Pizza"))
	require.NoError(t, s.UpdateField(0, "obs", "festa junina"))
	require.NoError(t, s.UpdateField(0, "cat", "Venda"))

	reopened := New(dir, nil)
	tx := reopened.Transactions()[0]
	assert.Equal(t, "Pizza", tx.Project)
	assert.Equal(t, "festa junina", tx.Note)
	assert.Equal(t, "Venda", tx.Category)
}

func TestUpdateField_EditSurvivesReextraction(t *testing.T) {
	s := New(t.TempDir(), nil)
	_, err := s.Append(batch("01/05/2025", "Venda Pizza", 100, models.Entry))
	require.NoError(t, err)
	require.NoError(t, s.UpdateField(0, "proj", "Pizza"))

	// Same line extracted again with a different suggestion.
	again := batch("01/05/2025", "venda pizza", 100, models.Entry)
	again[0].Project = "Outros"
	added, err := s.Append(again)
	require.NoError(t, err)
	assert.Equal(t, 0, added)

	txs := s.Transactions()
	require.Len(t, txs, 1)
	assert.Equal(t, "Pizza", txs[0].Project)
}

func TestUpdateField_Rejections(t *testing.T) {
	s := New(t.TempDir(), nil)
	_, err := s.Append(batch("01/05/2025", "Venda Pizza", 100, models.Entry))
	require.NoError(t, err)

	assert.Error(t, s.UpdateField(5, "cat", "Venda"))
	assert.Error(t, s.UpdateField(-1, "cat", "Venda"))
	assert.Error(t, s.UpdateField(0, "valor", "999"))
	assert.Error(t, s.UpdateField(0, "data", "02/05/2025"))
}

func TestUpdateField_NewCategoryJoinsSet(t *testing.T) {
	s := New(t.TempDir(), nil)
	_, err := s.Append(batch("01/05/2025", "Aluguel salão", 200, models.Exit))
	require.NoError(t, err)

	require.NoError(t, s.UpdateField(0, "cat", "Aluguel"))
	assert.Contains(t, s.Categories(), "Aluguel")
}

func TestTotals(t *testing.T) {
	s := New(t.TempDir(), nil)
	_, err := s.Append([]models.Transaction{
		{Date: "01/05/2025", Description: "a", Amount: decimal.NewFromInt(100), Kind: models.Entry},
		{Date: "02/05/2025", Description: "b", Amount: decimal.NewFromInt(50), Kind: models.Entry},
		{Date: "03/05/2025", Description: "c", Amount: decimal.NewFromInt(30), Kind: models.Exit},
	})
	require.NoError(t, err)

	totals := s.Totals()
	assert.True(t, totals.Entries.Equal(decimal.NewFromInt(150)))
	assert.True(t, totals.Exits.Equal(decimal.NewFromInt(30)))
	assert.True(t, totals.FinalBalance(s.InitialBalance()).Equal(decimal.NewFromInt(120)))
}

func TestSetInitialBalance_Persists(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, nil)
	require.NoError(t, s.SetInitialBalance(decimal.NewFromFloat(250.75)))

	reopened := New(dir, nil)
	assert.True(t, reopened.InitialBalance().Equal(decimal.NewFromFloat(250.75)))
}

func TestAddCategory(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, nil)
	require.NoError(t, s.AddCategory("Festa Junina"))
	assert.Contains(t, s.Categories(), "Festa Junina")

	// Case-insensitive duplicate is a silent no-op.
	before := len(s.Categories())
	require.NoError(t, s.AddCategory("festa junina"))
	assert.Len(t, s.Categories(), before)

	assert.Error(t, s.AddCategory("   "))

	reopened := New(dir, nil)
	assert.Contains(t, reopened.Categories(), "Festa Junina")
}

func TestReset(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, nil)
	_, err := s.Append(batch("01/05/2025", "Venda Pizza", 100, models.Entry))
	require.NoError(t, err)
	require.NoError(t, s.AddCategory("Festa Junina"))
	require.NoError(t, s.SetInitialBalance(decimal.NewFromInt(500)))

	require.NoError(t, s.Reset())
	assert.Empty(t, s.Transactions())
	assert.Equal(t, models.DefaultCategories, s.Categories())
	assert.True(t, s.InitialBalance().IsZero())

	reopened := New(dir, nil)
	assert.Empty(t, reopened.Transactions())
}

func TestLoad_CorruptFilesDegradeToDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ledger.json"), "{not json")
	writeFile(t, filepath.Join(dir, "categories.json"), "also not json")
	writeFile(t, filepath.Join(dir, "balance.json"), "nope")

	s := New(dir, nil)
	assert.Empty(t, s.Transactions())
	assert.Equal(t, models.DefaultCategories, s.Categories())
	assert.True(t, s.InitialBalance().IsZero())
}

func TestSeedCategories_FromYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "categories.yaml"), "categories:\n  - Dízimo\n  - Obras\n")

	s := New(dir, nil)
	assert.Equal(t, []string{"Dízimo", "Obras"}, s.Categories())

	// Plain list form works too.
	dir2 := t.TempDir()
	writeFile(t, filepath.Join(dir2, "categories.yaml"), "- Oferta\n- Obras\n")
	s2 := New(dir2, nil)
	assert.Equal(t, []string{"Oferta", "Obras"}, s2.Categories())
}

func TestSeedCategories_IgnoredOncePersisted(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, nil)
	require.NoError(t, s.AddCategory("Obras"))

	// Seed appearing later must not override the persisted set.
	writeFile(t, filepath.Join(dir, "categories.yaml"), "- Somente Seed\n")
	reopened := New(dir, nil)
	assert.Contains(t, reopened.Categories(), "Obras")
	assert.NotContains(t, reopened.Categories(), "Somente Seed")
}

func TestLedgerFile_ShapeIsStable(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, nil)
	_, err := s.Append(batch("01/05/2025", "Venda Pizza", 100, models.Entry))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "ledger.json"))
	require.NoError(t, err)

	var raw []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	assert.Contains(t, raw[0], "data")
	assert.Contains(t, raw[0], "item")
	assert.Contains(t, raw[0], "valor")
	assert.Contains(t, raw[0], "tipo")
}
