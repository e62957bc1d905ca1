// Package categories manages the category taxonomy.
package categories

import (
	"fmt"

	"github.com/spf13/cobra"

	"tesouraria/ecc-ledger/cmd/root"
)

var add string

// Cmd represents the categories command.
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "Lista ou amplia o conjunto de categorias",
	Long: `Sem argumentos, lista as categorias conhecidas na ordem de criação.
Com --add, acrescenta uma categoria nova ao conjunto persistido.`,
	Run: categoriesFunc,
}

func init() {
	Cmd.Flags().StringVarP(&add, "add", "a", "", "New category to add")
}

func categoriesFunc(cmd *cobra.Command, args []string) {
	if add != "" {
		if err := root.Store.AddCategory(add); err != nil {
			root.Log.Fatalf("Error adding category: %v", err)
		}
		root.Log.WithField("category", add).Info("Category added")
		return
	}

	for _, c := range root.Store.Categories() {
		fmt.Println(c)
	}
}
