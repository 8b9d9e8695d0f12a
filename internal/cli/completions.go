package cli

import (
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/extscan/pkg/extscan"
)

// completeSortOrders provides shell completion for --sort-order values.
func completeSortOrders(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, order := range extscan.SortOrders() {
		if strings.HasPrefix(string(order), toComplete) {
			matches = append(matches, string(order))
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeDirectories provides shell completion for directory paths.
func completeDirectories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	// Let the shell handle directory completion
	return nil, cobra.ShellCompDirectiveFilterDirs
}

// completeSearchArgs completes the directory, then the extensions present
// directly inside it.
func completeSearchArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return completeDirectories(cmd, args, toComplete)
	case 1:
		return extensionsIn(args[0], toComplete), cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

func extensionsIn(dir, prefix string) []string {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	prefix = extscan.NormalizeExtension(prefix)

	var exts []string
	for _, e := range dirEntries {
		if !e.Type().IsRegular() {
			continue
		}
		raw := extscan.ExtensionOf(e.Name())
		ext, err := extscan.ParseExtension(raw)
		// Suffixes a search argument cannot spell, such as " txt", are not offered.
		if err != nil || ext != raw {
			continue
		}
		if strings.HasPrefix(ext, prefix) && !slices.Contains(exts, ext) {
			exts = append(exts, ext)
		}
	}
	slices.Sort(exts)
	return exts
}
