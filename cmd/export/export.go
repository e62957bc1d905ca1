// Package export handles the CSV export command.
package export

import (
	"os"

	"github.com/spf13/cobra"

	"tesouraria/ecc-ledger/cmd/root"
	"tesouraria/ecc-ledger/internal/export"
)

var output string

// Cmd represents the export command.
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Exporta o livro-caixa em CSV",
	Long: `Exporta os lançamentos do livro-caixa (data, projeto, descrição,
categoria, observação e valor com sinal) em CSV, pronto para planilha.`,
	Run: exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Output CSV file (stdout when omitted)")
}

func exportFunc(cmd *cobra.Command, args []string) {
	txs := root.Store.Transactions()

	if output == "" {
		if err := export.Write(os.Stdout, txs); err != nil {
			root.Log.Fatalf("Error exporting ledger: %v", err)
		}
		return
	}
	if err := export.WriteFile(output, txs); err != nil {
		root.Log.Fatalf("Error exporting ledger: %v", err)
	}
	root.Log.WithField("file", output).WithField("count", len(txs)).Info("Ledger exported")
}
