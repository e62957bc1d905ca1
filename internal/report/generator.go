// Package report builds the treasury summary over the current ledger: the
// totals cards, the closing balance and the per-project result lines.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"tesouraria/ecc-ledger/internal/currencyutils"
	"tesouraria/ecc-ledger/internal/ledger"
	"tesouraria/ecc-ledger/internal/logging"
	"tesouraria/ecc-ledger/internal/models"
)

// ProjectLine is one per-project row of the summary.
type ProjectLine struct {
	Name    string          `json:"projeto"`
	Entries decimal.Decimal `json:"entradas"`
	Exits   decimal.Decimal `json:"saidas"`
	Result  decimal.Decimal `json:"resultado"`
}

// Summary is the aggregate report of the ledger for one period.
type Summary struct {
	Period         string          `json:"periodo,omitempty"`
	Records        int             `json:"lancamentos"`
	Entries        decimal.Decimal `json:"totalEntradas"`
	Exits          decimal.Decimal `json:"totalSaidas"`
	Net            decimal.Decimal `json:"saldo"`
	InitialBalance decimal.Decimal `json:"saldoInicial"`
	FinalBalance   decimal.Decimal `json:"saldoFinal"`
	Projects       []ProjectLine   `json:"projetos"`
}

// Build computes the summary from the ledger sequence and the opening
// balance. The closing balance is always recomputed, never taken from the
// extraction.
func Build(txs []models.Transaction, initial decimal.Decimal, period string) Summary {
	totals := ledger.Sum(txs)

	summary := Summary{
		Period:         period,
		Records:        len(txs),
		Entries:        totals.Entries,
		Exits:          totals.Exits,
		Net:            totals.Net(),
		InitialBalance: initial,
		FinalBalance:   totals.FinalBalance(initial),
	}
	for _, name := range totals.Projects() {
		pt := totals.PerProject[name]
		summary.Projects = append(summary.Projects, ProjectLine{
			Name:    name,
			Entries: pt.Entries,
			Exits:   pt.Exits,
			Result:  pt.Result,
		})
	}
	return summary
}

// Generator renders a Summary in the supported output formats.
type Generator struct {
	log logging.Logger
}

// NewGenerator creates a report generator.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Generator{log: logger}
}

// Render produces the report in the given format ("json" or "text").
func (g *Generator) Render(s Summary, format string) ([]byte, error) {
	switch format {
	case "json":
		return g.renderJSON(s)
	case "text":
		return g.renderText(s), nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) renderJSON(s Summary) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		g.log.WithError(err).Error("Failed to marshal report")
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return data, nil
}

func (g *Generator) renderText(s Summary) []byte {
	var sb strings.Builder

	sb.WriteString("Tesouraria ECC — Relatório\n")
	if s.Period != "" {
		sb.WriteString(fmt.Sprintf("Período: %s\n", s.Period))
	}
	sb.WriteString(fmt.Sprintf("Lançamentos: %d\n\n", s.Records))

	sb.WriteString(fmt.Sprintf("Entradas:      %s\n", currencyutils.FormatBRL(s.Entries)))
	sb.WriteString(fmt.Sprintf("Saídas:        %s\n", currencyutils.FormatBRL(s.Exits)))
	sb.WriteString(fmt.Sprintf("Saldo:         %s\n", currencyutils.FormatBRL(s.Net)))
	sb.WriteString(fmt.Sprintf("Saldo inicial: %s\n", currencyutils.FormatBRL(s.InitialBalance)))
	sb.WriteString(fmt.Sprintf("Saldo final:   %s\n", currencyutils.FormatBRL(s.FinalBalance)))

	if len(s.Projects) > 0 {
		sb.WriteString("\nPor projeto:\n")
		for _, p := range s.Projects {
			sb.WriteString(fmt.Sprintf("  %-12s entradas %s, saídas %s, resultado %s\n",
				p.Name,
				currencyutils.FormatBRL(p.Entries),
				currencyutils.FormatBRL(p.Exits),
				currencyutils.FormatBRL(p.Result)))
		}
	}
	return []byte(sb.String())
}
