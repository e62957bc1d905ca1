package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"tesouraria/ecc-ledger/internal/models"
)

func TestSignature_StableUnderCaseAndWhitespace(t *testing.T) {
	a := models.Transaction{Date: "01/05/2025", Description: "Pizza ", Amount: decimal.NewFromInt(100)}
	b := models.Transaction{Date: "01/05/2025", Description: "pizza", Amount: decimal.NewFromInt(100)}
	assert.Equal(t, Signature(a), Signature(b))
}

func TestSignature_IgnoresAmountSign(t *testing.T) {
	a := models.Transaction{Date: "01/05/2025", Description: "tarifa", Amount: decimal.NewFromFloat(-12.5)}
	b := models.Transaction{Date: "01/05/2025", Description: "tarifa", Amount: decimal.NewFromFloat(12.5)}
	assert.Equal(t, Signature(a), Signature(b))
}

func TestSignature_TwoDecimalAmount(t *testing.T) {
	a := models.Transaction{Date: "01/05/2025", Description: "oferta", Amount: decimal.NewFromInt(100)}
	assert.Equal(t, "01/05/2025|oferta|100.00", Signature(a))
}

func TestSignature_DistinguishesDates(t *testing.T) {
	a := models.Transaction{Date: "01/05/2025", Description: "oferta", Amount: decimal.NewFromInt(100)}
	b := models.Transaction{Date: "02/05/2025", Description: "oferta", Amount: decimal.NewFromInt(100)}
	assert.NotEqual(t, Signature(a), Signature(b))
}
