package ledger

import (
	"sort"

	"tesouraria/ecc-ledger/internal/dateutils"
	"tesouraria/ecc-ledger/internal/models"
)

// Merge integrates a freshly extracted batch into the existing ledger and
// returns the new sequence plus the number of genuinely new records.
//
// A batch record whose signature already exists in the ledger refreshes the
// statement fields (date, description, amount, kind) but carries forward the
// existing record's category, project and note, so manual classifications
// survive re-extraction. Records with unseen signatures are appended after
// normalization. Nothing is ever removed. The result is sorted by calendar
// date, stable for equal dates.
//
// added == 0 is the observable "nothing new found" outcome of re-submitting
// a statement; it is a normal result, not an error.
func Merge(old, batch []models.Transaction) (merged []models.Transaction, added int) {
	merged = make([]models.Transaction, len(old))
	copy(merged, old)

	index := make(map[string]int, len(merged))
	for i, t := range merged {
		index[Signature(t)] = i
	}

	for _, n := range batch {
		n = n.Normalized()
		sig := Signature(n)
		if i, ok := index[sig]; ok {
			kept := merged[i]
			n.Category = kept.Category
			n.Project = kept.Project
			n.Note = kept.Note
			merged[i] = n
			continue
		}
		merged = append(merged, n)
		index[sig] = len(merged) - 1
		added++
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return dateutils.Before(merged[i].Date, merged[j].Date)
	})
	return merged, added
}
