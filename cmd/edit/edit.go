// Package edit handles manual classification edits.
package edit

import (
	"github.com/spf13/cobra"

	"tesouraria/ecc-ledger/cmd/root"
)

var (
	index int
	field string
	value string
)

// Cmd represents the edit command.
var Cmd = &cobra.Command{
	Use:   "edit",
	Short: "Edita a classificação de um lançamento",
	Long: `Altera categoria, projeto ou observação de um lançamento do livro-caixa.
Data, descrição, valor e tipo vêm do extrato e não são editáveis. As
edições sobrevivem a novas extrações do mesmo extrato.`,
	Run: editFunc,
}

func init() {
	Cmd.Flags().IntVarP(&index, "index", "n", -1, "Record index (0-based, statement order)")
	Cmd.Flags().StringVarP(&field, "field", "f", "", "Field to edit: cat, proj or obs")
	Cmd.Flags().StringVarP(&value, "value", "v", "", "New value")
	_ = Cmd.MarkFlagRequired("index")
	_ = Cmd.MarkFlagRequired("field")
	_ = Cmd.MarkFlagRequired("value")
}

func editFunc(cmd *cobra.Command, args []string) {
	if err := root.Store.UpdateField(index, field, value); err != nil {
		root.Log.Fatalf("Error editing record: %v", err)
	}
	root.Log.WithField("index", index).WithField("field", field).Info("Record updated")
}
