// Package export writes the ledger in spreadsheet-friendly CSV form.
// The layout of any richer format (PDF, XLSX) belongs to external sinks.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"tesouraria/ecc-ledger/internal/models"
)

// row is the flat CSV projection of one transaction. The amount is signed
// here, and only here: spreadsheets sum a single column more readily than
// an amount/kind pair.
type row struct {
	Date        string `csv:"Data"`
	Project     string `csv:"Projeto"`
	Description string `csv:"Descricao"`
	Category    string `csv:"Categoria"`
	Note        string `csv:"Observacao"`
	Amount      string `csv:"Valor"`
}

// Write renders the ledger as CSV to w.
func Write(w io.Writer, txs []models.Transaction) error {
	rows := make([]row, 0, len(txs))
	for _, t := range txs {
		rows = append(rows, row{
			Date:        t.Date,
			Project:     t.Project,
			Description: t.Description,
			Category:    t.Category,
			Note:        t.Note,
			Amount:      t.SignedAmount().StringFixed(2),
		})
	}
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}
	return nil
}

// WriteFile renders the ledger as CSV into the named file, creating parent
// directories as needed.
func WriteFile(path string, txs []models.Transaction) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Write(f, txs)
}
