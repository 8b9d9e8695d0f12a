// Package analysis counts files per extension across a directory tree.
package analysis

import (
	"cmp"
	"slices"

	"github.com/vvka-141/extscan/pkg/extscan"
)

// Analyze builds a distribution from already scanned entries.
// Entries are ordered by count descending, ties by extension ascending;
// files without an extension form their own "" bucket.
func Analyze(entries []extscan.FileEntry) extscan.DistributionReport {
	counts := make(map[string]int)
	for _, e := range entries {
		counts[e.Extension]++
	}
	return fromCounts(counts, len(entries))
}

// AnalyzeDirectory walks root once and counts every regular file.
// Nothing is materialized per file, so large trees cost one map entry per extension.
func AnalyzeDirectory(scanner extscan.FileScanner, root string) (extscan.DistributionReport, error) {
	counts := make(map[string]int)
	stats, err := scanner.Walk(root, extscan.MatchAll(), func(e extscan.FileEntry) error {
		counts[e.Extension]++
		return nil
	})
	if err != nil {
		return extscan.DistributionReport{Root: root}, err
	}

	report := fromCounts(counts, stats.Matched)
	report.Root = root
	report.Skipped = stats.Skipped
	return report, nil
}

func fromCounts(counts map[string]int, total int) extscan.DistributionReport {
	rows := make([]extscan.ExtensionCount, 0, len(counts))
	for ext, n := range counts {
		rows = append(rows, extscan.ExtensionCount{Extension: ext, Count: n})
	}
	slices.SortFunc(rows, func(a, b extscan.ExtensionCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Extension, b.Extension)
	})
	return extscan.DistributionReport{Entries: rows, Total: total}
}
