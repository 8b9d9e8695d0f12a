package extscan

import (
	"fmt"
	"strings"
)

// SortOrder selects how matched paths are ordered before actions run.
type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
	SortRandom     SortOrder = "random"
)

// SortOrders lists the accepted values in help order.
func SortOrders() []SortOrder {
	return []SortOrder{SortAscending, SortDescending, SortRandom}
}

// ParseSortOrder accepts asc, desc or random (case-insensitive).
// The empty string is rejected; callers apply the default when no value was given.
func ParseSortOrder(raw string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(raw))) {
	case SortAscending:
		return SortAscending, nil
	case SortDescending:
		return SortDescending, nil
	case SortRandom:
		return SortRandom, nil
	}
	return "", fmt.Errorf("%w: sort order %q must be one of asc, desc, random", ErrInvalidArgument, raw)
}

// ActionOptions selects what happens to each matched file.
type ActionOptions struct {
	// Display prints each file's content.
	Display bool
	// Delete moves each file to the trash.
	Delete bool
	// Confirm asks before each display and each deletion.
	Confirm bool
	// DisplayLimit caps printed content bytes per file; 0 means unlimited.
	DisplayLimit int
}

// HasAction reports whether any per-file action was requested.
// Without one, a run only lists the matched paths.
func (o ActionOptions) HasAction() bool {
	return o.Display || o.Delete
}

// DeletionState is the terminal deletion state of a single file.
type DeletionState int

const (
	// DeletionNotRequested means the run had no delete flag.
	DeletionNotRequested DeletionState = iota
	// DeletionDeleted means the file was moved to the trash.
	DeletionDeleted
	// DeletionSkipped means the user declined.
	DeletionSkipped
	// DeletionFailed means the trash move failed.
	DeletionFailed
	// DeletionNotReached means the run stopped before this file.
	DeletionNotReached
)

func (s DeletionState) String() string {
	switch s {
	case DeletionDeleted:
		return "deleted"
	case DeletionSkipped:
		return "skipped"
	case DeletionFailed:
		return "failed"
	case DeletionNotReached:
		return "not reached"
	default:
		return "not requested"
	}
}

// FileOutcome records what happened to one file during a run.
type FileOutcome struct {
	Path      string
	Displayed bool
	// DisplaySkipped means the user declined to see the content.
	DisplaySkipped bool
	DisplayErr     error
	Deletion       DeletionState
	DeleteErr      error
	Trash          *TrashRecord
}

// RunReport aggregates the outcomes of a run.
type RunReport struct {
	Matched        int
	Displayed      int
	DisplaySkipped int
	DisplayFailed  int
	Deleted        int
	Skipped        int
	DeleteFailed   int
	// Remaining counts files never reached because of quit or interruption.
	Remaining int
	Aborted   bool
	Outcomes  []FileOutcome
}

// Attempted reports how many actions were tried, successful or not.
func (r RunReport) Attempted() int {
	return r.Displayed + r.DisplayFailed + r.Deleted + r.DeleteFailed
}

// Succeeded reports how many actions succeeded or were resolved by the user.
func (r RunReport) Succeeded() int {
	return r.Displayed + r.DisplaySkipped + r.Deleted + r.Skipped
}

// ExtensionCount is one row of a DistributionReport.
type ExtensionCount struct {
	// Extension is the normalized token, "" for files without one.
	Extension string
	Count     int
}

// Label renders the row's extension for display.
func (c ExtensionCount) Label() string {
	return ExtensionLabel(c.Extension)
}

// DistributionReport is the per-extension file count of a directory tree.
// Entries are ordered by count descending, then extension ascending.
type DistributionReport struct {
	Root    string
	Entries []ExtensionCount
	Total   int
	Skipped []string
}

// Count returns the number of files with the given token (normalized).
func (r DistributionReport) Count(token string) int {
	token = NormalizeExtension(token)
	for _, e := range r.Entries {
		if e.Extension == token {
			return e.Count
		}
	}
	return 0
}

// Share returns the fraction of files in the row, in percent.
func (r DistributionReport) Share(c ExtensionCount) float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(c.Count) * 100 / float64(r.Total)
}
