package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"tesouraria/ecc-ledger/internal/models"
)

// ProjectTotals aggregates the movements of one fund/activity bucket.
type ProjectTotals struct {
	Entries decimal.Decimal `json:"entradas"`
	Exits   decimal.Decimal `json:"saidas"`
	Result  decimal.Decimal `json:"resultado"`
}

// Totals is the aggregate view of a ledger, recomputed fresh on every call.
// At the expected scale (hundreds of records) a single linear pass is fine.
type Totals struct {
	Entries    decimal.Decimal          `json:"totalEntradas"`
	Exits      decimal.Decimal          `json:"totalSaidas"`
	PerProject map[string]ProjectTotals `json:"porProjeto"`
}

// Sum walks the ledger once and accumulates overall and per-project totals.
func Sum(txs []models.Transaction) Totals {
	totals := Totals{
		Entries:    decimal.Zero,
		Exits:      decimal.Zero,
		PerProject: make(map[string]ProjectTotals),
	}

	for _, t := range txs {
		project := t.Project
		if project == "" {
			project = models.DefaultProject
		}
		pt, ok := totals.PerProject[project]
		if !ok {
			pt = ProjectTotals{Entries: decimal.Zero, Exits: decimal.Zero, Result: decimal.Zero}
		}

		amount := t.Amount.Abs()
		if t.IsExit() {
			totals.Exits = totals.Exits.Add(amount)
			pt.Exits = pt.Exits.Add(amount)
		} else {
			totals.Entries = totals.Entries.Add(amount)
			pt.Entries = pt.Entries.Add(amount)
		}
		pt.Result = pt.Entries.Sub(pt.Exits)
		totals.PerProject[project] = pt
	}
	return totals
}

// Net returns total entries minus total exits.
func (t Totals) Net() decimal.Decimal {
	return t.Entries.Sub(t.Exits)
}

// FinalBalance computes the closing balance from an opening balance instead
// of trusting the figure the extraction reported.
func (t Totals) FinalBalance(initial decimal.Decimal) decimal.Decimal {
	return initial.Add(t.Net())
}

// Projects returns the bucket names present in the totals, sorted for
// deterministic report output.
func (t Totals) Projects() []string {
	names := make([]string, 0, len(t.PerProject))
	for name := range t.PerProject {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
