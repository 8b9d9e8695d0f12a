package extscan

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := scanner.ScanDirectory(root, extscan.MatchExtension("txt"))
//	if errors.Is(err, extscan.ErrDirectoryNotFound) {
//	    // Handle missing root
//	}
var (
	// ErrInvalidArgument indicates a malformed extension or sort order.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDirectoryNotFound indicates the root directory does not exist.
	ErrDirectoryNotFound = errors.New("directory not found")

	// ErrDirectoryUnreadable indicates the root exists but cannot be listed.
	ErrDirectoryUnreadable = errors.New("directory unreadable")

	// ErrSubdirectoryUnreadable indicates a directory below the root was skipped.
	ErrSubdirectoryUnreadable = errors.New("subdirectory unreadable")

	// ErrFileUnreadable indicates a matched file could not be read for display.
	ErrFileUnreadable = errors.New("file unreadable")

	// ErrUndecodableContent indicates a file's content is not text.
	ErrUndecodableContent = errors.New("content is not decodable as text")

	// ErrTrashUnavailable indicates no trash location can receive the file.
	ErrTrashUnavailable = errors.New("trash unavailable")

	// ErrDeleteFailed indicates the move to the trash failed.
	ErrDeleteFailed = errors.New("delete failed")

	// ErrInvalidConfig indicates the configuration file or environment is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNothingProcessed indicates that every requested action failed.
	ErrNothingProcessed = errors.New("no file could be processed")

	// ErrStopScan may be returned by a walk callback to end the scan early
	// without reporting an error.
	ErrStopScan = errors.New("stop scan")
)

// usageErrorPatterns are fragments of cobra/pflag argument errors.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"missing required argument",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidArgument):
		return ExitUsageError
	case errors.Is(err, ErrDirectoryNotFound), errors.Is(err, ErrDirectoryUnreadable):
		return ExitDirectoryError
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrNothingProcessed):
		return ExitNothingProcessed
	}

	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
