package report

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tesouraria/ecc-ledger/internal/models"
)

func sampleLedger() []models.Transaction {
	return []models.Transaction{
		{Date: "01/05/2025", Description: "Venda Pizza", Amount: decimal.NewFromInt(100), Kind: models.Entry, Project: "Pizza"},
		{Date: "02/05/2025", Description: "Oferta", Amount: decimal.NewFromInt(50), Kind: models.Entry, Project: "Outros"},
		{Date: "03/05/2025", Description: "Ingredientes", Amount: decimal.NewFromInt(30), Kind: models.Exit, Project: "Pizza"},
	}
}

func TestBuild(t *testing.T) {
	s := Build(sampleLedger(), decimal.NewFromInt(200), "Maio/2025")

	assert.Equal(t, 3, s.Records)
	assert.True(t, s.Entries.Equal(decimal.NewFromInt(150)))
	assert.True(t, s.Exits.Equal(decimal.NewFromInt(30)))
	assert.True(t, s.Net.Equal(decimal.NewFromInt(120)))
	assert.True(t, s.FinalBalance.Equal(decimal.NewFromInt(320)))

	require.Len(t, s.Projects, 2)
	assert.Equal(t, "Outros", s.Projects[0].Name)
	assert.Equal(t, "Pizza", s.Projects[1].Name)
	assert.True(t, s.Projects[1].Result.Equal(decimal.NewFromInt(70)))
}

func TestRender_JSON(t *testing.T) {
	g := NewGenerator(nil)
	s := Build(sampleLedger(), decimal.Zero, "Maio/2025")

	data, err := g.Render(s, "json")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Maio/2025", decoded["periodo"])
	assert.Contains(t, decoded, "totalEntradas")
	assert.Contains(t, decoded, "projetos")
}

func TestRender_Text(t *testing.T) {
	g := NewGenerator(nil)
	s := Build(sampleLedger(), decimal.Zero, "Maio/2025")

	data, err := g.Render(s, "text")
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "Maio/2025")
	assert.Contains(t, out, "R$ 150,00")
	assert.Contains(t, out, "Pizza")
}

func TestRender_UnsupportedFormat(t *testing.T) {
	g := NewGenerator(nil)
	_, err := g.Render(Summary{}, "pdf")
	assert.Error(t, err)
}
