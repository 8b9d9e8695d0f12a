package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/vvka-141/extscan/internal/files/filesystem"
	"github.com/vvka-141/extscan/pkg/extscan"
)

// Scanner discovers files from a directory tree.
// A Scanner holds no state between scans; each Walk is a single pass.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
	logger     extscan.Logger
	excluded   map[string]bool
}

// NewScanner creates a new file scanner over the OS filesystem.
// Panics if logger is nil.
func NewScanner(logger extscan.Logger) *Scanner {
	return NewScannerWithFS(filesystem.NewOSFileSystem(), logger)
}

// NewScannerWithFS creates a new file scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider or logger is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider, logger extscan.Logger) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Scanner{
		fsProvider: fsProvider,
		logger:     logger,
		excluded:   map[string]bool{},
	}
}

// ExcludeDirs makes the scanner skip directories with any of the given base names.
// The root itself is never excluded.
func (s *Scanner) ExcludeDirs(names ...string) *Scanner {
	for _, name := range names {
		if name != "" {
			s.excluded[name] = true
		}
	}
	return s
}

// Walk traverses root and calls fn for every regular file whose extension passes filter.
//
// Symbolic links are counted but never followed or reported. Unreadable
// subdirectories are logged, recorded in ScanStats.Skipped and skipped.
// The scan fails only when the root itself is missing or unreadable, or when
// fn returns an error other than extscan.ErrStopScan.
func (s *Scanner) Walk(root string, filter extscan.Filter, fn func(extscan.FileEntry) error) (extscan.ScanStats, error) {
	var stats extscan.ScanStats

	dir, err := s.fsProvider.Open(root)
	if err != nil {
		return stats, classifyRootError(root, err)
	}

	errStopped := errors.New("stopped")
	var callbackErr error

	err = dir.Walk(func(file filesystem.File, walkErr error) error {
		if walkErr != nil {
			if file == nil {
				return walkErr
			}
			if file.RelativePath() == "." {
				return fmt.Errorf("%w: %s: %v", extscan.ErrDirectoryUnreadable, root, walkErr)
			}
			s.logger.Warn("Skipping %s: %v", file.Path(), walkErr)
			stats.Skipped = append(stats.Skipped, file.Path())
			if info := file.Info(); info != nil && info.IsDir() {
				return filesystem.SkipDir
			}
			return nil
		}

		info := file.Info()
		mode := info.Mode()
		switch {
		case mode&fs.ModeSymlink != 0:
			stats.Symlinks++
			s.logger.Verbose("Not following symlink %s", file.Path())
			return nil
		case info.IsDir():
			if file.RelativePath() != "." && s.excluded[path.Base(file.RelativePath())] {
				s.logger.Verbose("Excluding directory %s", file.Path())
				return filesystem.SkipDir
			}
			return nil
		case !mode.IsRegular():
			return nil
		}

		stats.Files++
		ext := extscan.ExtensionOf(info.Name())
		if !filter(ext) {
			return nil
		}
		stats.Matched++

		entry := extscan.FileEntry{
			Path:         file.Path(),
			RelativePath: file.RelativePath(),
			Extension:    ext,
			Size:         info.Size(),
		}
		if err := fn(entry); err != nil {
			callbackErr = err
			return errStopped
		}
		return nil
	})

	if errors.Is(err, errStopped) {
		if errors.Is(callbackErr, extscan.ErrStopScan) {
			return stats, nil
		}
		return stats, callbackErr
	}
	if err != nil {
		return stats, err
	}

	s.logger.Verbose("Scanned %s: %d file(s), %d matched, %d directory(ies) skipped",
		root, stats.Files, stats.Matched, len(stats.Skipped))
	return stats, nil
}

// ScanDirectory collects every matching file under root, in walk order.
func (s *Scanner) ScanDirectory(root string, filter extscan.Filter) (extscan.ScanResult, error) {
	var files []extscan.FileEntry
	stats, err := s.Walk(root, filter, func(entry extscan.FileEntry) error {
		files = append(files, entry)
		return nil
	})
	if err != nil {
		return extscan.ScanResult{}, err
	}
	return extscan.ScanResult{Files: files, Stats: stats}, nil
}

// classifyRootError maps a failure to open the root to the fatal sentinels.
func classifyRootError(root string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", extscan.ErrDirectoryNotFound, root)
	}
	return fmt.Errorf("%w: %s: %v", extscan.ErrDirectoryUnreadable, root, err)
}

// Verify Scanner implements the interface at compile time
var _ extscan.FileScanner = (*Scanner)(nil)
