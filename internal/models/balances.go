package models

import "github.com/shopspring/decimal"

// Balances carries the account balance at the opening and closing of the
// reported period. Initial is entered manually or taken from the extraction;
// Final is recomputed from the ledger rather than trusted verbatim.
type Balances struct {
	Initial decimal.Decimal `json:"saldoInicial"`
	Final   decimal.Decimal `json:"saldoFinal"`
}
