package analysis

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vvka-141/extscan/internal/tui"
	"github.com/vvka-141/extscan/pkg/extscan"
)

// Style controls how Render draws the report table.
type Style struct {
	Header lipgloss.Style
	Cell   lipgloss.Style
	Total  lipgloss.Style
	Border lipgloss.Style
}

// PlainStyle draws the table without colors.
func PlainStyle() Style {
	cell := lipgloss.NewStyle().Padding(0, 1)
	return Style{Header: cell, Cell: cell, Total: cell, Border: lipgloss.NewStyle()}
}

// ColorStyle draws the table with the palette used across the CLI.
func ColorStyle(r *lipgloss.Renderer) Style {
	cell := r.NewStyle().Padding(0, 1)
	return Style{
		Header: cell.Bold(true).Foreground(tui.ColorPrimary),
		Cell:   cell,
		Total:  cell.Bold(true),
		Border: r.NewStyle().Foreground(tui.ColorMuted),
	}
}

// Render writes the report: a heading, one row per extension and a total row.
// An empty report prints a single "No files found" line.
func Render(w io.Writer, report extscan.DistributionReport, style Style) error {
	if report.Total == 0 {
		_, err := fmt.Fprintf(w, "No files found in %s.\n", report.Root)
		return err
	}

	rows := make([][]string, 0, len(report.Entries))
	for _, e := range report.Entries {
		rows = append(rows, []string{
			e.Label(),
			strconv.Itoa(e.Count),
			fmt.Sprintf("%.1f%%", report.Share(e)),
		})
	}
	totalRow := len(rows)
	rows = append(rows, []string{"Total", strconv.Itoa(report.Total), "100.0%"})

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(style.Border).
		Headers("Extension", "Files", "Share").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			var s lipgloss.Style
			switch row {
			case table.HeaderRow:
				return style.Header
			case totalRow:
				s = style.Total
			default:
				s = style.Cell
			}
			if col > 0 {
				s = s.Align(lipgloss.Right)
			}
			return s
		})

	if _, err := fmt.Fprintf(w, "Files by extension in %s:\n", report.Root); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}
