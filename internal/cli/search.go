package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vvka-141/extscan/internal/actions"
	"github.com/vvka-141/extscan/internal/files/filesystem"
	"github.com/vvka-141/extscan/internal/files/scanner"
	"github.com/vvka-141/extscan/internal/ordering"
	"github.com/vvka-141/extscan/internal/trash"
	"github.com/vvka-141/extscan/internal/tui"
	"github.com/vvka-141/extscan/internal/ui"
	"github.com/vvka-141/extscan/pkg/extscan"
)

var searchCmd = &cobra.Command{
	Use:   "search <directory> <extension>",
	Short: "Find files by extension and list, display or trash them",
	Long: `Search walks <directory> recursively and selects every regular file whose
extension matches <extension> (case-insensitive, with or without the leading dot).
Symbolic links are never followed.

Without --display or --delete the matching files are listed. With --display
each file's content is printed (binary files are reported and skipped). With
--delete each file is moved to the trash. Add --confirm to be asked before each
file is shown or trashed: [y]es, [n]o, [a]ll remaining, [q]uit.

Examples:
  # List every .txt file in reverse path order
  extscan search ./notes txt --sort-order desc

  # Print the content of every .log file
  extscan search /var/tmp/app log --display --limit 2000

  # Move .tmp files to the trash, asking for each one
  extscan search ~/Downloads .tmp --delete --confirm`,
	Args:              RequireDirectoryAndExtension,
	ValidArgsFunction: completeSearchArgs,
	RunE:              runSearch,
}

type searchFlagValues struct {
	delete, confirm, display, yes bool
	sortOrder                     string
	limit                         int
}

var searchFlags searchFlagValues

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().BoolVarP(&searchFlags.delete, "delete", "d", false,
		"Move every matching file to the trash")
	searchCmd.Flags().BoolVarP(&searchFlags.confirm, "confirm", "c", false,
		"Ask before displaying or trashing each file (with --display or --delete)")
	searchCmd.Flags().BoolVarP(&searchFlags.display, "display", "p", false,
		"Print the content of every matching file")
	searchCmd.Flags().StringVarP(&searchFlags.sortOrder, "sort-order", "s", string(extscan.SortAscending),
		"Processing order: asc|desc|random\n"+
			"Precedence: --sort-order > $EXTSCAN_SORT_ORDER > config file > asc")
	searchCmd.Flags().BoolVarP(&searchFlags.yes, "yes", "y", false,
		"Answer yes to every confirmation prompt")
	searchCmd.Flags().IntVar(&searchFlags.limit, "limit", extscan.DefaultDisplayLimit,
		"Maximum bytes of content displayed per file (0 = unlimited)\n"+
			"Precedence: --limit > $EXTSCAN_DISPLAY_LIMIT > config file")

	_ = searchCmd.RegisterFlagCompletionFunc("sort-order", completeSortOrders)
}

// searchConfig is the fully resolved input of a search run.
type searchConfig struct {
	Root        string
	Extension   string
	Order       extscan.SortOrder
	Options     extscan.ActionOptions
	Yes         bool
	ExcludeDirs []string
	TrashDir    string
}

// buildSearchConfig merges arguments, flags, environment and config file.
func buildSearchConfig(cmd *cobra.Command, args []string) (searchConfig, error) {
	ext, err := extscan.ParseExtension(args[1])
	if err != nil {
		return searchConfig{}, err
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return searchConfig{}, err
	}

	order := settings.SortOrder
	if cmd.Flags().Changed("sort-order") {
		order, err = extscan.ParseSortOrder(searchFlags.sortOrder)
		if err != nil {
			return searchConfig{}, err
		}
	}

	limit := settings.DisplayLimit
	if cmd.Flags().Changed("limit") {
		if searchFlags.limit < 0 {
			return searchConfig{}, fmt.Errorf("%w: --limit must be >= 0, got %d", extscan.ErrInvalidArgument, searchFlags.limit)
		}
		limit = searchFlags.limit
	}

	return searchConfig{
		Root:      args[0],
		Extension: ext,
		Order:     order,
		Options: extscan.ActionOptions{
			Display:      searchFlags.display,
			Delete:       searchFlags.delete,
			Confirm:      searchFlags.confirm || settings.Confirm,
			DisplayLimit: limit,
		},
		Yes:         searchFlags.yes,
		ExcludeDirs: settings.ExcludeDirs,
		TrashDir:    settings.TrashDir,
	}, nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	cfg, err := buildSearchConfig(cmd, args)
	if err != nil {
		return err
	}
	if searchFlags.confirm && !cfg.Options.HasAction() {
		logger.Warn("--confirm has no effect without --delete or --display")
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Verbose("Searching %s for .%s files (order: %s)", cfg.Root, cfg.Extension, cfg.Order)
	fsProvider := filesystem.NewOSFileSystem()
	sc := scanner.NewScannerWithFS(fsProvider, logger).ExcludeDirs(cfg.ExcludeDirs...)
	result, err := sc.ScanDirectory(cfg.Root, extscan.MatchExtension(cfg.Extension))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(result.Files) == 0 {
		fmt.Fprintf(out, "No files with extension .%s found in %s.\n", cfg.Extension, cfg.Root)
		return nil
	}

	entries := ordering.SortEntries(result.Files, cfg.Order, nil)
	fmt.Fprintf(out, "Files with extension .%s in %s:\n", cfg.Extension, cfg.Root)

	deps := actions.Dependencies{Out: out, FS: fsProvider, Logger: logger}
	if cfg.Options.Delete {
		trasher, err := trash.New(trash.Options{Dir: cfg.TrashDir})
		if err != nil {
			return err
		}
		deps.Trasher = trasher
	}
	if cfg.Options.Confirm {
		confirmer := newConfirmer(cmd, cfg.Yes)
		if c, ok := confirmer.(io.Closer); ok {
			defer c.Close()
		}
		deps.Confirmer = confirmer
	}

	report, err := actions.NewRunner(deps, cfg.Options).Run(ctx, entries)
	logger.Verbose("Run finished: %d matched, %d displayed, %d trashed, %d skipped, %d failed, %d untouched",
		report.Matched, report.Displayed, report.Deleted, report.Skipped,
		report.DisplayFailed+report.DeleteFailed, report.Remaining)
	return err
}

// newConfirmer picks the prompt implementation: scripted with --yes, the
// bubbletea prompt on a terminal, the line prompt otherwise.
func newConfirmer(cmd *cobra.Command, yes bool) extscan.Confirmer {
	if yes {
		return ui.AlwaysYes()
	}
	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	if in == os.Stdin && out == os.Stdout && tui.IsInteractive() {
		return tui.NewConfirmer(in, out)
	}
	return ui.NewConsolePrompt(in, cmd.ErrOrStderr())
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
