// Package balance manages the opening balance of the reported period.
package balance

import (
	"fmt"

	"github.com/spf13/cobra"

	"tesouraria/ecc-ledger/cmd/root"
	"tesouraria/ecc-ledger/internal/currencyutils"
)

var set string

// Cmd represents the balance command.
var Cmd = &cobra.Command{
	Use:   "balance",
	Short: "Consulta ou define o saldo inicial",
	Long: `Sem argumentos, mostra o saldo inicial e o saldo final calculado a partir
do livro-caixa. Com --set, registra o saldo inicial manualmente.`,
	Run: balanceFunc,
}

func init() {
	Cmd.Flags().StringVarP(&set, "set", "s", "", `Opening balance to record (e.g. "1.234,56")`)
}

func balanceFunc(cmd *cobra.Command, args []string) {
	if set != "" {
		amount, err := currencyutils.ParseAmount(set)
		if err != nil {
			root.Log.Fatalf("Error parsing balance: %v", err)
		}
		if err := root.Store.SetInitialBalance(amount); err != nil {
			root.Log.Fatalf("Error saving balance: %v", err)
		}
		root.Log.WithField("balance", amount.StringFixed(2)).Info("Initial balance recorded")
		return
	}

	initial := root.Store.InitialBalance()
	final := root.Store.Totals().FinalBalance(initial)
	fmt.Printf("Saldo inicial: %s\n", currencyutils.FormatBRL(initial))
	fmt.Printf("Saldo final:   %s\n", currencyutils.FormatBRL(final))
}
