package trash

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/google/uuid"

	"github.com/vvka-141/extscan/pkg/extscan"
)

// maxNameAttempts bounds the search for a free name inside the trash.
const maxNameAttempts = 16

// Options selects the trash used by New.
type Options struct {
	// Dir forces a freedesktop-style trash directory (holding files/ and info/)
	// on every platform. Empty selects the platform default.
	Dir string
	// GOOS overrides runtime.GOOS; used by tests.
	GOOS string
}

// TrashDirEnv overrides the trash directory on every platform.
const TrashDirEnv = "EXTSCAN_TRASH_DIR"

// Default returns the platform trash, honouring $EXTSCAN_TRASH_DIR.
func Default() (extscan.Trasher, error) {
	return New(Options{Dir: os.Getenv(TrashDirEnv)})
}

// New returns the trash for the current platform.
func New(opts Options) (extscan.Trasher, error) {
	if opts.Dir != "" {
		return NewFreedesktop(opts.Dir), nil
	}

	goos := opts.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}

	switch goos {
	case "windows":
		return recycleBin(goos), nil
	case "plan9", "js", "wasip1", "android", "ios":
		return Unsupported{Platform: goos}, nil
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("%w: cannot locate home directory: %v", extscan.ErrTrashUnavailable, err)
		}
		return NewMacOS(filepath.Join(home, ".Trash")), nil
	default:
		dir, err := HomeTrashDir()
		if err != nil {
			return nil, err
		}
		return NewFreedesktop(dir), nil
	}
}

// HomeTrashDir returns $XDG_DATA_HOME/Trash, defaulting XDG_DATA_HOME to ~/.local/share.
func HomeTrashDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" || !filepath.IsAbs(dataHome) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("%w: cannot locate home directory: %v", extscan.ErrTrashUnavailable, err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "Trash"), nil
}

// Restore moves a trashed file back to its original path and removes its info file.
// It refuses to overwrite an existing file.
func Restore(rec extscan.TrashRecord) error {
	if rec.TrashedPath == "" {
		return fmt.Errorf("cannot restore %s: its location in the trash is unknown", rec.OriginalPath)
	}
	if _, err := os.Lstat(rec.OriginalPath); err == nil {
		return fmt.Errorf("cannot restore %s: path already exists", rec.OriginalPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot restore %s: %w", rec.OriginalPath, err)
	}
	if err := os.MkdirAll(filepath.Dir(rec.OriginalPath), 0755); err != nil {
		return fmt.Errorf("cannot restore %s: %w", rec.OriginalPath, err)
	}
	if err := os.Rename(rec.TrashedPath, rec.OriginalPath); err != nil {
		return fmt.Errorf("cannot restore %s: %w", rec.OriginalPath, err)
	}
	if rec.InfoPath != "" {
		if err := os.Remove(rec.InfoPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("restored %s but could not remove %s: %w", rec.OriginalPath, rec.InfoPath, err)
		}
	}
	return nil
}

// candidateName returns base for the first attempt and base with a short
// random tag before its extension afterwards ("report.3f2a9c1b.txt").
func candidateName(base string, attempt int) string {
	if attempt == 0 {
		return base
	}
	tag := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	idx := strings.LastIndexByte(base, '.')
	if idx <= 0 {
		return base + "." + tag
	}
	return base[:idx] + "." + tag + base[idx:]
}

// statForTrash resolves p to an absolute path and checks that something is there.
func statForTrash(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", extscan.ErrDeleteFailed, p, err)
	}
	if _, err := os.Lstat(abs); err != nil {
		return "", fmt.Errorf("%w: %s: %v", extscan.ErrDeleteFailed, p, err)
	}
	return abs, nil
}
