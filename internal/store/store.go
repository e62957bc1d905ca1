// Package store provides the persisted ledger: the transaction sequence,
// the category set and the initial balance, held as three independently
// keyed JSON documents under one data directory.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"tesouraria/ecc-ledger/internal/fileutils"
	"tesouraria/ecc-ledger/internal/ledger"
	"tesouraria/ecc-ledger/internal/logging"
	"tesouraria/ecc-ledger/internal/models"
)

const (
	ledgerFile     = "ledger.json"
	categoriesFile = "categories.json"
	balanceFile    = "balance.json"

	// Optional YAML seed for the category taxonomy, read only when no
	// persisted category set exists yet.
	taxonomySeedFile = "categories.yaml"
)

// balanceDoc is the on-disk shape of the balance document.
type balanceDoc struct {
	Initial decimal.Decimal `json:"saldoInicial"`
}

// LedgerStore owns the authoritative transaction sequence. All mutation
// goes through it, one writer at a time; the merge itself is pure, so
// correctness only requires sequencing writes after reads.
type LedgerStore struct {
	dir string
	log logging.Logger

	mu         sync.Mutex
	ledger     []models.Transaction
	categories []string
	initial    decimal.Decimal
}

// New opens (or initializes) the store rooted at dir. Corrupt persisted
// state degrades to defaults with a warning; it never fails the caller.
func New(dir string, logger logging.Logger) *LedgerStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	s := &LedgerStore{dir: dir, log: logger}
	s.load()
	return s
}

// load reads the three documents, falling back per-document to defaults
// when a file is missing or cannot be decoded.
func (s *LedgerStore) load() {
	s.ledger = nil
	if data, err := fileutils.ReadFile(s.path(ledgerFile)); err == nil {
		var txs []models.Transaction
		if err := json.Unmarshal(data, &txs); err != nil {
			s.log.WithError(err).Warn("Corrupt ledger file, starting from an empty ledger")
		} else {
			s.ledger = txs
		}
	}

	s.categories = nil
	if data, err := fileutils.ReadFile(s.path(categoriesFile)); err == nil {
		var cats []string
		if err := json.Unmarshal(data, &cats); err != nil {
			s.log.WithError(err).Warn("Corrupt category file, reverting to defaults")
		} else {
			s.categories = cats
		}
	}
	if len(s.categories) == 0 {
		s.categories = s.seedCategories()
	}

	s.initial = decimal.Zero
	if data, err := fileutils.ReadFile(s.path(balanceFile)); err == nil {
		var doc balanceDoc
		if err := json.Unmarshal(data, &doc); err != nil {
			s.log.WithError(err).Warn("Corrupt balance file, reverting to zero")
		} else {
			s.initial = doc.Initial
		}
	}
}

// seedCategories returns the starting category set: the YAML taxonomy file
// when present, the built-in defaults otherwise.
func (s *LedgerStore) seedCategories() []string {
	data, err := fileutils.ReadFile(s.path(taxonomySeedFile))
	if err != nil {
		return append([]string(nil), models.DefaultCategories...)
	}

	var wrapped struct {
		Categories []string `yaml:"categories"`
	}
	if err := yaml.Unmarshal(data, &wrapped); err == nil && len(wrapped.Categories) > 0 {
		return wrapped.Categories
	}

	var plain []string
	if err := yaml.Unmarshal(data, &plain); err == nil && len(plain) > 0 {
		return plain
	}

	s.log.WithField("file", taxonomySeedFile).Warn("Unreadable taxonomy seed, using built-in categories")
	return append([]string(nil), models.DefaultCategories...)
}

func (s *LedgerStore) path(name string) string {
	return filepath.Join(s.dir, name)
}

// Transactions returns a copy of the current ledger sequence.
func (s *LedgerStore) Transactions() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Transaction, len(s.ledger))
	copy(out, s.ledger)
	return out
}

// Categories returns a copy of the known category set, insertion-ordered.
func (s *LedgerStore) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.categories...)
}

// InitialBalance returns the manually entered (or extracted) opening
// balance.
func (s *LedgerStore) InitialBalance() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initial
}

// Append merges an extracted batch into the ledger and persists the result.
// The returned count is the number of genuinely new records; zero means the
// batch contributed nothing. The held sequence is replaced only after the
// new one has been written, so a failed save leaves the previous ledger in
// place.
func (s *LedgerStore) Append(batch []models.Transaction) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged, added := ledger.Merge(s.ledger, batch)
	if err := s.saveLedger(merged); err != nil {
		return 0, err
	}
	s.ledger = merged
	return added, nil
}

// UpdateField mutates one editable field of one record and persists. Only
// category, project and note are editable; date, description, amount and
// kind came off the statement and stay as extracted.
func (s *LedgerStore) UpdateField(index int, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.ledger) {
		return fmt.Errorf("record index %d out of range (ledger has %d records)", index, len(s.ledger))
	}

	updated := s.ledger[index]
	switch strings.ToLower(field) {
	case "cat", "categoria", "category":
		updated.Category = value
		if err := s.addCategoryLocked(value); err != nil {
			return err
		}
	case "proj", "projeto", "project":
		updated.Project = value
	case "obs", "nota", "note":
		updated.Note = value
	default:
		return fmt.Errorf("field %q is not editable", field)
	}

	next := make([]models.Transaction, len(s.ledger))
	copy(next, s.ledger)
	next[index] = updated
	if err := s.saveLedger(next); err != nil {
		return err
	}
	s.ledger = next
	return nil
}

// Totals recomputes the aggregate view with a fresh linear pass.
func (s *LedgerStore) Totals() ledger.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ledger.Sum(s.ledger)
}

// SetInitialBalance stores the opening balance of the reported period.
func (s *LedgerStore) SetInitialBalance(amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.saveBalance(amount); err != nil {
		return err
	}
	s.initial = amount
	return nil
}

// AddCategory extends the known category set. Duplicates (case-insensitive)
// are ignored.
func (s *LedgerStore) AddCategory(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addCategoryLocked(name)
}

func (s *LedgerStore) addCategoryLocked(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("category name is empty")
	}
	for _, c := range s.categories {
		if strings.EqualFold(c, name) {
			return nil
		}
	}
	next := append(append([]string(nil), s.categories...), name)
	if err := s.saveCategories(next); err != nil {
		return err
	}
	s.categories = next
	return nil
}

// Reset clears the ledger, reverts the category set to the built-in
// defaults and zeroes the initial balance. Irreversible.
func (s *LedgerStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range []string{ledgerFile, categoriesFile, balanceFile} {
		if err := os.Remove(s.path(name)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing %s: %w", name, err)
		}
	}
	s.ledger = nil
	s.categories = s.seedCategories()
	s.initial = decimal.Zero
	return nil
}

func (s *LedgerStore) saveLedger(txs []models.Transaction) error {
	data, err := json.MarshalIndent(txs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling ledger: %w", err)
	}
	return fileutils.WriteFile(s.path(ledgerFile), data, 0644)
}

func (s *LedgerStore) saveCategories(cats []string) error {
	data, err := json.MarshalIndent(cats, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling categories: %w", err)
	}
	return fileutils.WriteFile(s.path(categoriesFile), data, 0644)
}

func (s *LedgerStore) saveBalance(amount decimal.Decimal) error {
	data, err := json.Marshal(balanceDoc{Initial: amount})
	if err != nil {
		return fmt.Errorf("marshaling balance: %w", err)
	}
	return fileutils.WriteFile(s.path(balanceFile), data, 0644)
}
