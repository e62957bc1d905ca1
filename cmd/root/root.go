// Package root contains the root command for the application
package root

import (
	"github.com/spf13/cobra"

	"tesouraria/ecc-ledger/internal/config"
	"tesouraria/ecc-ledger/internal/logging"
	"tesouraria/ecc-ledger/internal/store"
)

var (
	// Log is the shared logger instance for commands.
	Log = logging.GetLogger()

	// Cfg is the loaded application configuration.
	Cfg *config.Config

	// Store is the opened ledger store, shared by all commands.
	Store *store.LedgerStore

	// DataDir overrides the configured data directory when set.
	DataDir string

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "ecc-ledger",
		Short: "Tesouraria ECC: extrato bancário em relatório financeiro.",
		Long: `ecc-ledger lê extratos bancários em texto livre, envia o conteúdo para o
Gemini extrair os lançamentos, e mantém um livro-caixa categorizado com
totais por projeto, edição manual e exportação para CSV.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Bem-vindo ao ecc-ledger!")
			Log.Info("Use --help para ver os comandos disponíveis")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLogging(cfg)

			dir := DataDir
			if dir == "" {
				dir = cfg.DataDirectory()
			}
			Store = store.New(dir, Log)
		},
	}
)

// Init registers the persistent flags of the root command.
func Init() {
	Cmd.PersistentFlags().StringVar(&DataDir, "data-dir", "", "Directory holding the persisted ledger (default: ~/.ecc-ledger)")
}
