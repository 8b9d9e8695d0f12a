package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vvka-141/extscan/internal/logging"
	"github.com/vvka-141/extscan/pkg/extscan"
)

var rootCmd = &cobra.Command{
	Use:   "extscan",
	Short: "Find, inspect and trash files by extension",
	Long: `extscan walks a directory tree and works on files by extension.

  search   list, display or move to the trash every file with an extension
  analyze  count files per extension

Deletion always goes through the platform trash, so every removed file can be
restored.

Exit Codes:
  0  - Success (including no matching files and quitting a prompt)
  1  - General error
  2  - CLI usage error (invalid arguments, extension or sort order)
  3  - Panic or unexpected system error
  10 - Directory not found or unreadable
  11 - Invalid configuration
  12 - No file could be processed`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().String("config", "",
		"Path to the configuration file\n"+
			"Precedence: --config > $EXTSCAN_CONFIG > ./"+extscan.ConfigFileName)
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output (also honours $NO_COLOR)")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

// colorEnabled reports whether w should receive ANSI styling.
func colorEnabled(cmd *cobra.Command, w io.Writer) bool {
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// newLogger builds the console logger for a command, writing to its stderr.
func newLogger(cmd *cobra.Command) extscan.Logger {
	errOut := cmd.ErrOrStderr()
	return logging.NewConsoleLoggerWithWriter(errOut, getVerboseFlag(cmd), colorEnabled(cmd, errOut))
}
