package models

// DefaultProject and DefaultCategory are the buckets records fall into when
// the extraction does not suggest anything better.
const (
	DefaultProject  = "Outros"
	DefaultCategory = "Outros"
)

// DefaultProjects is the fixed set of fund/activity buckets the treasury
// reports on. The list is extensible at runtime but these are always known.
var DefaultProjects = []string{"Pizza", "Pastel", "Baile", "Encontro", "Outros"}

// DefaultCategories is the built-in category taxonomy the ledger reverts to
// on reset. Users can extend it and the extended set is persisted.
var DefaultCategories = []string{
	"Dízimo",
	"Oferta",
	"Venda",
	"Material",
	"Alimentação",
	"Taxa Mitra",
	"Tarifa Bancária",
	"Outros",
}
