package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"

	"tesouraria/ecc-ledger/internal/logging"
)

var once sync.Once

// LoadEnv loads environment variables from a .env file if one exists in the
// current or parent directory. Safe to call more than once.
func LoadEnv() {
	once.Do(func() {
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				return
			}
		}
		_ = godotenv.Load(envFile)
	})
}

// ConfigureLogging builds the application logger from the loaded
// configuration and installs it as the process default.
func ConfigureLogging(cfg *Config) logging.Logger {
	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	logging.SetLogger(logger)
	return logger
}

// DataDirectory resolves the directory holding persisted state. An explicit
// configuration wins; the fallback is ~/.ecc-ledger, or ./.ecc-ledger when
// the home directory cannot be determined.
func (c *Config) DataDirectory() string {
	if c.Data.Directory != "" {
		return c.Data.Directory
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ecc-ledger"
	}
	return filepath.Join(home, ".ecc-ledger")
}
