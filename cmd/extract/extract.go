// Package extract handles the statement extraction command.
package extract

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tesouraria/ecc-ledger/cmd/common"
	"tesouraria/ecc-ledger/cmd/root"
	"tesouraria/ecc-ledger/internal/extractor"
	"tesouraria/ecc-ledger/internal/fileutils"
	"tesouraria/ecc-ledger/internal/models"
)

var (
	inputs []string
	from   string
	to     string
)

// Cmd represents the extract command.
var Cmd = &cobra.Command{
	Use:   "extract",
	Short: "Extrai lançamentos de um extrato e funde no livro-caixa",
	Long: `Lê o texto de um ou mais extratos (arquivos ou stdin), envia para o
Gemini interpretar, e funde os lançamentos extraídos no livro-caixa sem
duplicar e sem perder classificações feitas manualmente.`,
	Run: extractFunc,
}

func init() {
	Cmd.Flags().StringArrayVarP(&inputs, "input", "i", nil, "Statement file (repeatable; stdin when omitted)")
	Cmd.Flags().StringVar(&from, "from", "", "Period start, DD/MM/YYYY")
	Cmd.Flags().StringVar(&to, "to", "", "Period end, DD/MM/YYYY")
	_ = Cmd.MarkFlagRequired("from")
	_ = Cmd.MarkFlagRequired("to")
}

func extractFunc(cmd *cobra.Command, args []string) {
	statement, err := readStatement()
	if err != nil {
		root.Log.Fatalf("Error reading statement input: %v", err)
	}

	client, err := extractor.NewGeminiClient(extractor.GeminiConfig{
		APIKey:  root.Cfg.AI.APIKey,
		Model:   root.Cfg.AI.Model,
		Timeout: root.Cfg.AITimeout(),
	}, root.Log)
	if err != nil {
		root.Log.Fatalf("Error creating extraction client: %v", err)
	}

	req := extractor.Request{
		Statement:  statement,
		From:       from,
		To:         to,
		Categories: root.Store.Categories(),
		Projects:   models.DefaultProjects,
	}

	added, err := common.RunExtraction(cmd.Context(), client, root.Store, req, root.Log)
	if err != nil {
		root.Log.Fatalf("%s", common.Describe(err))
	}

	if added == 0 {
		root.Log.Info("Nenhum lançamento novo encontrado.")
		return
	}
	root.Log.WithField("count", added).Info("Lançamentos novos adicionados ao livro-caixa")
}

// readStatement concatenates the input files, or falls back to stdin so a
// statement can be piped in.
func readStatement() (string, error) {
	if len(inputs) > 0 {
		return fileutils.ReadAttachments(inputs)
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
