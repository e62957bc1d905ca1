// Package ledger implements the identity, merge and aggregation logic over
// the persisted transaction sequence.
package ledger

import (
	"strings"

	"tesouraria/ecc-ledger/internal/models"
)

// Signature derives the key that identifies "the same real-world
// transaction" across extraction runs: the date exactly as stored, the
// description lower-cased and trimmed, and the unsigned amount with exactly
// two decimals. Two runs over the same statement line produce equal
// signatures as long as the model does not rephrase the description; that
// residual fragility is accepted.
func Signature(t models.Transaction) string {
	return t.Date + "|" +
		strings.ToLower(strings.TrimSpace(t.Description)) + "|" +
		t.Amount.Abs().StringFixed(2)
}
