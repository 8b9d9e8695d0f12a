package trash

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vvka-141/extscan/pkg/extscan"
)

// MacOS moves files into the user's ~/.Trash folder.
type MacOS struct {
	dir string
}

// NewMacOS creates a trash rooted at dir (usually ~/.Trash).
func NewMacOS(dir string) *MacOS {
	return &MacOS{dir: dir}
}

// Trash renames path into the trash folder under a free name.
func (t *MacOS) Trash(path string) (extscan.TrashRecord, error) {
	abs, err := statForTrash(path)
	if err != nil {
		return extscan.TrashRecord{}, err
	}
	if err := os.MkdirAll(t.dir, 0700); err != nil {
		return extscan.TrashRecord{}, fmt.Errorf("%w: cannot create %s: %v", extscan.ErrTrashUnavailable, t.dir, err)
	}

	base := filepath.Base(abs)
	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		dest := filepath.Join(t.dir, candidateName(base, attempt))
		if _, err := os.Lstat(dest); err == nil {
			continue
		}
		if err := os.Rename(abs, dest); err != nil {
			if isCrossDevice(err) {
				return extscan.TrashRecord{}, fmt.Errorf("%w: %s is on another volume than %s", extscan.ErrTrashUnavailable, path, t.dir)
			}
			return extscan.TrashRecord{}, fmt.Errorf("%w: %s: %v", extscan.ErrDeleteFailed, path, err)
		}
		return extscan.TrashRecord{OriginalPath: abs, TrashedPath: dest, DeletedAt: time.Now()}, nil
	}
	return extscan.TrashRecord{}, fmt.Errorf("%w: no free name for %s in %s", extscan.ErrTrashUnavailable, base, t.dir)
}

var _ extscan.Trasher = (*MacOS)(nil)
