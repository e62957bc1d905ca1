package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseKind(t *testing.T) {
	assert.Equal(t, Exit, ParseKind("S"))
	assert.Equal(t, Exit, ParseKind("s"))
	assert.Equal(t, Exit, ParseKind(" S "))
	assert.Equal(t, Entry, ParseKind("E"))
	assert.Equal(t, Entry, ParseKind(""))
	assert.Equal(t, Entry, ParseKind("X"))
}

func TestNormalized_UnsignedAmount(t *testing.T) {
	tx := Transaction{
		Date:        "01/05/2025",
		Description: "  Venda Pizza  ",
		Amount:      decimal.NewFromFloat(-120.50),
		Kind:        Exit,
	}
	n := tx.Normalized()
	assert.True(t, n.Amount.Equal(decimal.NewFromFloat(120.50)))
	assert.Equal(t, "Venda Pizza", n.Description)
	assert.Equal(t, Exit, n.Kind)
}

func TestNormalized_NegativeAmountImpliesExit(t *testing.T) {
	tx := Transaction{Amount: decimal.NewFromInt(-30)}
	n := tx.Normalized()
	assert.Equal(t, Exit, n.Kind)
	assert.True(t, n.Amount.Equal(decimal.NewFromInt(30)))
}

func TestNormalized_Defaults(t *testing.T) {
	tx := Transaction{Amount: decimal.NewFromInt(10)}
	n := tx.Normalized()
	assert.Equal(t, DefaultCategory, n.Category)
	assert.Equal(t, DefaultProject, n.Project)
	assert.Equal(t, Entry, n.Kind)

	tx = Transaction{Amount: decimal.NewFromInt(10), Category: "Oferta", Project: "Baile"}
	n = tx.Normalized()
	assert.Equal(t, "Oferta", n.Category)
	assert.Equal(t, "Baile", n.Project)
}

func TestSignedAmount(t *testing.T) {
	entry := Transaction{Amount: decimal.NewFromInt(100), Kind: Entry}
	exit := Transaction{Amount: decimal.NewFromInt(30), Kind: Exit}
	assert.True(t, entry.SignedAmount().Equal(decimal.NewFromInt(100)))
	assert.True(t, exit.SignedAmount().Equal(decimal.NewFromInt(-30)))
}
