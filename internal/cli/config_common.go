package cli

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/extscan/internal/config"
)

// loadSettings loads .env from the working directory, then the configuration
// file and environment overrides. Flags are applied by each command.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	_ = godotenv.Load()

	explicit, _ := cmd.Flags().GetString("config")
	return config.LoadSettings(explicit, os.Getenv)
}
