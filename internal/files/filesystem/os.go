package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// osFile implements File interface for OS filesystem
type osFile struct {
	path    string
	relPath string
	info    fs.FileInfo
}

func (f *osFile) Path() string         { return f.path }
func (f *osFile) RelativePath() string { return f.relPath }
func (f *osFile) Info() FileInfo       { return f.info }

// osDirectory implements Directory interface for OS filesystem
type osDirectory struct {
	path     string // as opened, cleaned
	walkRoot string // path with a root symlink resolved
}

func (d *osDirectory) Path() string { return d.path }

func (d *osDirectory) Walk(fn WalkFunc) error {
	return filepath.WalkDir(d.walkRoot, func(p string, entry fs.DirEntry, walkErr error) error {
		rel, relErr := filepath.Rel(d.walkRoot, p)
		if relErr != nil {
			return fn(nil, fmt.Errorf("failed to get relative path: %w", relErr))
		}

		file := &osFile{
			path:    d.join(rel),
			relPath: filepath.ToSlash(rel),
		}
		if entry != nil {
			info, infoErr := entry.Info()
			if infoErr != nil && walkErr == nil {
				walkErr = infoErr
			}
			file.info = info
		}

		var callbackErr error
		func() {
			defer func() {
				if r := recover(); r != nil {
					callbackErr = fmt.Errorf("walk callback panicked at %s: %v", p, r)
				}
			}()
			callbackErr = fn(file, walkErr)
		}()
		return callbackErr
	})
}

func (d *osDirectory) join(rel string) string {
	if rel == "." {
		return d.path
	}
	return filepath.Join(d.path, rel)
}

// OSFileSystem implements FileSystemProvider for the OS filesystem
type OSFileSystem struct{}

// NewOSFileSystem creates a new OS filesystem provider
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (p *OSFileSystem) Open(path string) (Directory, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}

	walkRoot := path
	if linfo, err := os.Lstat(path); err == nil && linfo.Mode()&fs.ModeSymlink != 0 {
		resolved, err := filepath.EvalSymlinks(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve root symlink: %w", err)
		}
		walkRoot = resolved
	}

	return &osDirectory{path: filepath.Clean(path), walkRoot: walkRoot}, nil
}

func (p *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (p *OSFileSystem) Stat(path string) (FileInfo, error) {
	return os.Lstat(path)
}
