// Package report handles the summary report command.
package report

import (
	"fmt"

	"github.com/spf13/cobra"

	"tesouraria/ecc-ledger/cmd/root"
	"tesouraria/ecc-ledger/internal/fileutils"
	"tesouraria/ecc-ledger/internal/report"
)

var (
	format string
	period string
	output string
)

// Cmd represents the report command.
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Gera o resumo financeiro do livro-caixa",
	Long: `Recalcula os totais do livro-caixa (entradas, saídas, saldo final e o
resultado por projeto) e imprime o resumo em texto ou JSON.`,
	Run: reportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text or json")
	Cmd.Flags().StringVarP(&period, "period", "p", "", "Period label shown on the report (e.g. Maio/2025)")
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Write the report to a file instead of stdout")
}

func reportFunc(cmd *cobra.Command, args []string) {
	summary := report.Build(root.Store.Transactions(), root.Store.InitialBalance(), period)

	data, err := report.NewGenerator(root.Log).Render(summary, format)
	if err != nil {
		root.Log.Fatalf("Error rendering report: %v", err)
	}

	if output == "" {
		fmt.Println(string(data))
		return
	}
	if err := fileutils.WriteFile(output, data, 0644); err != nil {
		root.Log.Fatalf("Error writing report: %v", err)
	}
	root.Log.WithField("file", output).Info("Report written")
}
