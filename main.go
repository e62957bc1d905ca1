package main

import (
	"fmt"
	"os"

	"tesouraria/ecc-ledger/cmd/balance"
	"tesouraria/ecc-ledger/cmd/categories"
	"tesouraria/ecc-ledger/cmd/edit"
	exportcmd "tesouraria/ecc-ledger/cmd/export"
	"tesouraria/ecc-ledger/cmd/extract"
	"tesouraria/ecc-ledger/cmd/report"
	"tesouraria/ecc-ledger/cmd/reset"
	"tesouraria/ecc-ledger/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(extract.Cmd)
	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(exportcmd.Cmd)
	root.Cmd.AddCommand(edit.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
	root.Cmd.AddCommand(balance.Cmd)
	root.Cmd.AddCommand(reset.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
