package extscan

import "time"

// TrashRecord describes where a trashed file went.
type TrashRecord struct {
	// OriginalPath is the absolute path the file had before the move.
	OriginalPath string
	// TrashedPath is the file's location inside the trash.
	TrashedPath string
	// InfoPath is the metadata file written next to the trash, if any.
	InfoPath string
	// DeletedAt is the time of the move.
	DeletedAt time.Time
}

// Trasher moves files to a recoverable location. A successful Trash
// leaves nothing at the original path; a failed one leaves the file untouched.
type Trasher interface {
	Trash(path string) (TrashRecord, error)
}
