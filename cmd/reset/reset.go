// Package reset handles the clear-all command.
package reset

import (
	"github.com/spf13/cobra"

	"tesouraria/ecc-ledger/cmd/root"
)

var force bool

// Cmd represents the reset command.
var Cmd = &cobra.Command{
	Use:   "reset",
	Short: "Apaga o livro-caixa e volta aos padrões",
	Long: `Apaga todos os lançamentos, restaura as categorias padrão e zera o saldo
inicial. A operação é irreversível e exige --force.`,
	Run: resetFunc,
}

func init() {
	Cmd.Flags().BoolVar(&force, "force", false, "Confirm the irreversible reset")
}

func resetFunc(cmd *cobra.Command, args []string) {
	if !force {
		root.Log.Warn("Reset é irreversível; repita o comando com --force para confirmar")
		return
	}
	if err := root.Store.Reset(); err != nil {
		root.Log.Fatalf("Error resetting ledger: %v", err)
	}
	root.Log.Info("Livro-caixa apagado")
}
