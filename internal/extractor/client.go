// Package extractor turns raw bank-statement text into structured
// transactions by delegating the interpretation step to an external model.
// The package owns the prompt, the tolerant JSON extraction of the reply,
// and the normalization of the result; the model itself is behind the
// Client interface so the rest of the application can be tested without it.
package extractor

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"tesouraria/ecc-ledger/internal/extracterror"
	"tesouraria/ecc-ledger/internal/models"
)

// Request carries everything one extraction needs: the raw statement text,
// the period being reported, and the taxonomy the model should classify
// into. Nothing is read from ambient state.
type Request struct {
	Statement  string
	From       string // period start, DD/MM/YYYY
	To         string // period end, DD/MM/YYYY
	Categories []string
	Projects   []string
}

// Validate rejects a request before anything is sent to the model.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Statement) == "" {
		return &extracterror.ValidationError{Field: "statement", Reason: "empty statement text"}
	}
	if strings.TrimSpace(r.From) == "" || strings.TrimSpace(r.To) == "" {
		return &extracterror.ValidationError{Field: "period", Reason: "missing date range"}
	}
	return nil
}

// Result is one extracted batch, normalized and ready for the merge.
// Balances are optional; the model does not always find them.
type Result struct {
	Transactions   []models.Transaction
	InitialBalance *decimal.Decimal
	FinalBalance   *decimal.Decimal
}

// Client is the extraction boundary. Implementations must return
// extracterror.UnavailableError when the service cannot be reached and
// extracterror.MalformedError when the reply carries no usable payload.
// Implementations never retry; re-submission is a user decision.
type Client interface {
	Extract(ctx context.Context, req Request) (*Result, error)
}
