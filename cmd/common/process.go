// Package common contains the extraction workflow shared by command
// handlers.
package common

import (
	"context"
	"errors"

	"tesouraria/ecc-ledger/internal/extracterror"
	"tesouraria/ecc-ledger/internal/extractor"
	"tesouraria/ecc-ledger/internal/logging"
	"tesouraria/ecc-ledger/internal/store"
)

// RunExtraction drives one extraction round: submit the statement, then
// merge the batch into the ledger. Any extraction failure returns before
// the store is touched, so a bad reply never partially applies. The
// returned count is the number of new records; zero with a nil error is
// the "nothing new found" outcome.
func RunExtraction(ctx context.Context, client extractor.Client, st *store.LedgerStore, req extractor.Request, log logging.Logger) (int, error) {
	result, err := client.Extract(ctx, req)
	if err != nil {
		return 0, err
	}

	// An extracted opening balance only fills the gap when none has been
	// entered manually.
	if result.InitialBalance != nil && st.InitialBalance().IsZero() {
		if err := st.SetInitialBalance(*result.InitialBalance); err != nil {
			log.WithError(err).Warn("Failed to persist extracted initial balance")
		}
	}

	added, err := st.Append(result.Transactions)
	if err != nil {
		return 0, err
	}

	log.WithField("extracted", len(result.Transactions)).
		WithField("added", added).
		Info("Extraction merged into ledger")
	return added, nil
}

// Describe turns an extraction error into the message shown to the user.
func Describe(err error) string {
	var verr *extracterror.ValidationError
	switch {
	case errors.As(err, &verr):
		return "Dados inválidos: " + verr.Error()
	case extracterror.IsUnavailable(err):
		return "Não foi possível consultar o serviço de análise. Verifique a conexão e tente novamente."
	case extracterror.IsMalformed(err):
		return "A resposta do serviço não pôde ser interpretada. O livro-caixa não foi alterado."
	default:
		return err.Error()
	}
}
