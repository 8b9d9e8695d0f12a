package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireDirectoryAndExtension validates the <directory> <extension> pair of search.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireDirectoryAndExtension(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		missing := "<directory> <extension>"
		if len(args) == 1 {
			missing = "<extension>"
		}
		return fmt.Errorf(`missing required argument: %s

Usage: %s

Example:
  %s ./notes txt --sort-order desc`, missing, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 2 {
		return fmt.Errorf("accepts 2 arg(s), received %d", len(args))
	}
	return nil
}

// RequireDirectory validates that exactly one directory argument is provided.
func RequireDirectory(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <directory>

Usage: %s

Example:
  %s ~/Downloads`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}
