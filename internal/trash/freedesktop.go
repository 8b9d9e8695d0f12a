package trash

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vvka-141/extscan/pkg/extscan"
)

const trashInfoDateLayout = "2006-01-02T15:04:05"

// Freedesktop implements the freedesktop.org Trash specification.
// Files are renamed into <dir>/files and described by <dir>/info/<name>.trashinfo.
type Freedesktop struct {
	dir string
	now func() time.Time
}

// NewFreedesktop creates a trash rooted at dir (usually $XDG_DATA_HOME/Trash).
func NewFreedesktop(dir string) *Freedesktop {
	return &Freedesktop{dir: dir, now: time.Now}
}

// Dir returns the home trash directory.
func (t *Freedesktop) Dir() string {
	return t.dir
}

// Trash moves path into the home trash. When the home trash lives on another
// filesystem, the per-volume $topdir/.Trash-$uid directory is used instead.
func (t *Freedesktop) Trash(path string) (extscan.TrashRecord, error) {
	abs, err := statForTrash(path)
	if err != nil {
		return extscan.TrashRecord{}, err
	}

	rec, err := t.moveInto(t.dir, abs, abs)
	if err == nil || !isCrossDevice(err) {
		return rec, err
	}

	top, topErr := mountPoint(abs)
	if topErr != nil {
		return extscan.TrashRecord{}, fmt.Errorf("%w: %s is on another filesystem than %s: %v",
			extscan.ErrTrashUnavailable, path, t.dir, topErr)
	}
	rel, relErr := filepath.Rel(top, abs)
	if relErr != nil {
		return extscan.TrashRecord{}, fmt.Errorf("%w: %s: %v", extscan.ErrTrashUnavailable, path, relErr)
	}

	volumeTrash := filepath.Join(top, fmt.Sprintf(".Trash-%d", os.Getuid()))
	rec, err = t.moveInto(volumeTrash, abs, rel)
	if err != nil && isCrossDevice(err) {
		return extscan.TrashRecord{}, fmt.Errorf("%w: no trash on the filesystem of %s", extscan.ErrTrashUnavailable, path)
	}
	return rec, err
}

// moveInto reserves a unique info file in trashDir, then renames abs into it.
// infoPath is the value written to the Path= key.
func (t *Freedesktop) moveInto(trashDir, abs, infoPath string) (extscan.TrashRecord, error) {
	filesDir := filepath.Join(trashDir, "files")
	infoDir := filepath.Join(trashDir, "info")
	for _, dir := range []string{filesDir, infoDir} {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return extscan.TrashRecord{}, fmt.Errorf("%w: cannot create %s: %v", extscan.ErrTrashUnavailable, dir, err)
		}
	}

	deletedAt := t.now()
	content := fmt.Sprintf("[Trash Info]\nPath=%s\nDeletionDate=%s\n",
		escapeTrashPath(infoPath), deletedAt.Format(trashInfoDateLayout))

	name, infoFile, err := reserveInfoFile(filesDir, infoDir, filepath.Base(abs), content)
	if err != nil {
		return extscan.TrashRecord{}, err
	}

	dest := filepath.Join(filesDir, name)
	if err := os.Rename(abs, dest); err != nil {
		os.Remove(infoFile)
		if isCrossDevice(err) {
			return extscan.TrashRecord{}, err
		}
		return extscan.TrashRecord{}, fmt.Errorf("%w: %s: %v", extscan.ErrDeleteFailed, abs, err)
	}

	return extscan.TrashRecord{
		OriginalPath: abs,
		TrashedPath:  dest,
		InfoPath:     infoFile,
		DeletedAt:    deletedAt,
	}, nil
}

// reserveInfoFile creates <name>.trashinfo with O_EXCL so concurrent trashers
// never pick the same name.
func reserveInfoFile(filesDir, infoDir, base, content string) (string, string, error) {
	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		name := candidateName(base, attempt)
		if _, err := os.Lstat(filepath.Join(filesDir, name)); err == nil {
			continue
		}

		infoFile := filepath.Join(infoDir, name+".trashinfo")
		f, err := os.OpenFile(infoFile, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", "", fmt.Errorf("%w: cannot write %s: %v", extscan.ErrTrashUnavailable, infoFile, err)
		}
		_, writeErr := f.WriteString(content)
		closeErr := f.Close()
		if writeErr != nil || closeErr != nil {
			os.Remove(infoFile)
			return "", "", fmt.Errorf("%w: cannot write %s: %v", extscan.ErrTrashUnavailable, infoFile, errors.Join(writeErr, closeErr))
		}
		return name, infoFile, nil
	}
	return "", "", fmt.Errorf("%w: no free name for %s after %d attempts", extscan.ErrTrashUnavailable, base, maxNameAttempts)
}

// escapeTrashPath percent-encodes each path segment and keeps the separators.
func escapeTrashPath(p string) string {
	segments := strings.Split(filepath.ToSlash(p), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

// ParseTrashInfo reads the Path and DeletionDate keys of a .trashinfo file.
func ParseTrashInfo(data []byte) (string, time.Time, error) {
	lines := strings.Split(string(data), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "[Trash Info]" {
		return "", time.Time{}, errors.New("missing [Trash Info] header")
	}

	var rawPath, rawDate string
	for _, line := range lines[1:] {
		key, value, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok {
			continue
		}
		switch key {
		case "Path":
			rawPath = value
		case "DeletionDate":
			rawDate = value
		}
	}
	if rawPath == "" {
		return "", time.Time{}, errors.New("missing Path key")
	}

	p, err := url.PathUnescape(rawPath)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("invalid Path %q: %w", rawPath, err)
	}
	deletedAt, err := time.ParseInLocation(trashInfoDateLayout, rawDate, time.Local)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("invalid DeletionDate %q: %w", rawDate, err)
	}
	return filepath.FromSlash(p), deletedAt, nil
}

var _ extscan.Trasher = (*Freedesktop)(nil)
