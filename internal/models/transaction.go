// Package models provides the data structures used throughout the application.
package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Kind distinguishes money entering the account from money leaving it.
// The single-letter values match the markers used on the statements
// ("E" for entrada, "S" for saída).
type Kind string

const (
	Entry Kind = "E"
	Exit  Kind = "S"
)

// ParseKind maps a statement marker to a Kind. Only an explicit "S"
// (case-insensitive) is treated as an exit; everything else is an entry.
func ParseKind(s string) Kind {
	if strings.EqualFold(strings.TrimSpace(s), string(Exit)) {
		return Exit
	}
	return Entry
}

// Transaction represents one statement line after extraction.
// Amount always holds the unsigned magnitude; the direction is carried by
// Kind, never by the sign of the stored number.
type Transaction struct {
	Date        string          `json:"data" csv:"Data"`
	Description string          `json:"item" csv:"Descricao"`
	Amount      decimal.Decimal `json:"valor" csv:"Valor"`
	Kind        Kind            `json:"tipo" csv:"Tipo"`
	Category    string          `json:"cat" csv:"Categoria"`
	Project     string          `json:"proj" csv:"Projeto"`
	Note        string          `json:"obs,omitempty" csv:"Observacao"`
}

// IsEntry returns true if the transaction brings money in.
func (t *Transaction) IsEntry() bool {
	return t.Kind != Exit
}

// IsExit returns true if the transaction takes money out.
func (t *Transaction) IsExit() bool {
	return t.Kind == Exit
}

// SignedAmount returns the amount with the sign implied by Kind.
// Used only for presentation (exports, reports); the stored value stays
// unsigned.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.IsExit() {
		return t.Amount.Abs().Neg()
	}
	return t.Amount.Abs()
}

// Normalized returns a copy with the ingestion invariants applied: unsigned
// amount, trimmed description, and category/project defaulted to "Outros"
// when the extraction left them blank. A negative raw amount with no
// explicit kind is taken as an exit.
func (t Transaction) Normalized() Transaction {
	if t.Kind == "" && t.Amount.IsNegative() {
		t.Kind = Exit
	}
	t.Kind = ParseKind(string(t.Kind))
	t.Amount = t.Amount.Abs()
	t.Description = strings.TrimSpace(t.Description)
	t.Category = strings.TrimSpace(t.Category)
	if t.Category == "" {
		t.Category = DefaultCategory
	}
	t.Project = strings.TrimSpace(t.Project)
	if t.Project == "" {
		t.Project = DefaultProject
	}
	t.Note = strings.TrimSpace(t.Note)
	return t
}
