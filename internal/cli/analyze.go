package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vvka-141/extscan/internal/analysis"
	"github.com/vvka-141/extscan/internal/files/scanner"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <directory>",
	Short: "Count files per extension",
	Long: `Analyze walks <directory> recursively and prints how many regular files
carry each extension, most frequent first. Files without an extension are
counted under "(no extension)". Symbolic links are never followed.

Example:
  extscan analyze ~/Downloads`,
	Args:              RequireDirectory,
	ValidArgsFunction: completeDirectories,
	RunE:              runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	root := args[0]
	logger := newLogger(cmd)

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	sc := scanner.NewScanner(logger).ExcludeDirs(settings.ExcludeDirs...)
	report, err := analysis.AnalyzeDirectory(sc, root)
	if err != nil {
		return err
	}
	if n := len(report.Skipped); n > 0 {
		logger.Warn("%d directory(ies) could not be read and were skipped", n)
	}

	out := cmd.OutOrStdout()
	style := analysis.PlainStyle()
	if colorEnabled(cmd, out) {
		style = analysis.ColorStyle(lipgloss.NewRenderer(out))
	}
	return analysis.Render(out, report, style)
}
