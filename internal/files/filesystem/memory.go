package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.mode.IsDir() }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryEntry is a file, directory or symlink of the in-memory filesystem
type memoryEntry struct {
	absPath    string
	content    []byte
	target     string // symlink target, absolute
	unreadable bool
	info       *memoryFileInfo
}

// memoryFile implements File for a walked in-memory entry
type memoryFile struct {
	path    string
	relPath string
	info    FileInfo
}

func (f *memoryFile) Path() string         { return f.path }
func (f *memoryFile) RelativePath() string { return f.relPath }
func (f *memoryFile) Info() FileInfo       { return f.info }

// memoryDirectory implements Directory interface for in-memory filesystem
type memoryDirectory struct {
	absPath  string
	walkRoot string
	fs       *MemoryFileSystem
}

func (d *memoryDirectory) Path() string { return d.absPath }

func (d *memoryDirectory) Walk(fn WalkFunc) error {
	entries := d.fs.getEntriesUnder(d.walkRoot)

	// Order like filepath.WalkDir: lexical per path component, parents first
	sort.Slice(entries, func(i, j int) bool {
		return walkKey(entries[i].absPath) < walkKey(entries[j].absPath)
	})

	var skipped []string
	for _, entry := range entries {
		if isUnder(entry.absPath, skipped) {
			continue
		}

		rel := "."
		if entry.absPath != d.walkRoot {
			rel = strings.TrimPrefix(entry.absPath, strings.TrimSuffix(d.walkRoot, "/")+"/")
		}
		file := &memoryFile{
			path:    d.join(rel),
			relPath: rel,
			info:    entry.info,
		}

		err := callWalkFunc(fn, file, nil)
		if err == SkipDir {
			if entry.info.IsDir() {
				skipped = append(skipped, entry.absPath)
			} else {
				skipped = append(skipped, path.Dir(entry.absPath))
			}
			continue
		}
		if err != nil {
			return err
		}

		if entry.info.IsDir() && entry.unreadable {
			skipped = append(skipped, entry.absPath)
			readErr := &fs.PathError{Op: "open", Path: entry.absPath, Err: fs.ErrPermission}
			if err := callWalkFunc(fn, file, readErr); err != nil && err != SkipDir {
				return err
			}
		}
	}

	return nil
}

func (d *memoryDirectory) join(rel string) string {
	if rel == "." {
		return d.absPath
	}
	return path.Join(d.absPath, rel)
}

// callWalkFunc recovers from panics in the callback to prevent crashing the entire walk
func callWalkFunc(fn WalkFunc, file File, walkErr error) (callbackErr error) {
	defer func() {
		if r := recover(); r != nil {
			callbackErr = fmt.Errorf("walk callback panicked at %s: %v", file.Path(), r)
		}
	}()
	return fn(file, walkErr)
}

func walkKey(p string) string {
	return strings.ReplaceAll(p, "/", "\x00")
}

func isUnder(p string, dirs []string) bool {
	for _, dir := range dirs {
		if strings.HasPrefix(p, strings.TrimSuffix(dir, "/")+"/") {
			return true
		}
	}
	return false
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing
type MemoryFileSystem struct {
	entries map[string]*memoryEntry // map of absolute path -> entry
	root    string                  // root directory path
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		entries: make(map[string]*memoryEntry),
		root:    root,
	}
	mfs.entries[root] = newDirEntry(root)

	return mfs
}

func newDirEntry(absPath string) *memoryEntry {
	return &memoryEntry{
		absPath: absPath,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
		},
	}
}

// Root returns the root directory of the filesystem.
func (mfs *MemoryFileSystem) Root() string {
	return mfs.root
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(path string, content string) {
	mfs.AddFileBytes(path, []byte(content))
}

// AddFileBytes adds a file with raw content, such as binary data
func (mfs *MemoryFileSystem) AddFileBytes(filePath string, content []byte) {
	absPath := mfs.resolve(filePath)
	mfs.entries[absPath] = &memoryEntry{
		absPath: absPath,
		content: content,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    0644,
			modTime: time.Now(),
		},
	}
	mfs.ensureDirectoriesExist(absPath)
}

// AddDir adds an empty directory
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	absPath := mfs.resolve(dirPath)
	if _, exists := mfs.entries[absPath]; !exists {
		mfs.entries[absPath] = newDirEntry(absPath)
	}
	mfs.ensureDirectoriesExist(absPath)
}

// AddSymlink adds a symbolic link at linkPath pointing to target.
// Relative targets are resolved against the link's directory.
func (mfs *MemoryFileSystem) AddSymlink(linkPath, target string) {
	absPath := mfs.resolve(linkPath)
	target = filepath.ToSlash(target)
	if !path.IsAbs(target) {
		target = path.Join(path.Dir(absPath), target)
	}
	mfs.entries[absPath] = &memoryEntry{
		absPath: absPath,
		target:  path.Clean(target),
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(target)),
			mode:    0777 | fs.ModeSymlink,
			modTime: time.Now(),
		},
	}
	mfs.ensureDirectoriesExist(absPath)
}

// SetUnreadable makes a file's content or a directory's listing fail with fs.ErrPermission
func (mfs *MemoryFileSystem) SetUnreadable(entryPath string) {
	if entry, ok := mfs.entries[mfs.resolve(entryPath)]; ok {
		entry.unreadable = true
	}
}

// Remove deletes a file and returns its content
func (mfs *MemoryFileSystem) Remove(filePath string) ([]byte, error) {
	absPath := mfs.resolve(filePath)
	entry, exists := mfs.entries[absPath]
	if !exists {
		return nil, fmt.Errorf("file not found: %s: %w", filePath, fs.ErrNotExist)
	}
	if entry.info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	delete(mfs.entries, absPath)
	return entry.content, nil
}

// Exists reports whether an entry exists at the path
func (mfs *MemoryFileSystem) Exists(entryPath string) bool {
	_, ok := mfs.entries[mfs.resolve(entryPath)]
	return ok
}

// resolve calculates the absolute path within the virtual filesystem
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "." || p == "" {
		return mfs.root
	}
	if path.IsAbs(p) {
		return path.Clean(p)
	}
	return path.Join(mfs.root, p)
}

// ensureDirectoriesExist creates directory entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(entryPath string) {
	dir := path.Dir(entryPath)
	if dir == "." || dir == "/" || dir == entryPath {
		return
	}
	if _, exists := mfs.entries[dir]; exists {
		return
	}
	mfs.entries[dir] = newDirEntry(dir)
	mfs.ensureDirectoriesExist(dir)
}

// getEntriesUnder returns all entries at or under the given path
func (mfs *MemoryFileSystem) getEntriesUnder(basePath string) []*memoryEntry {
	var entries []*memoryEntry
	for p, entry := range mfs.entries {
		var matched bool
		if basePath == "/" {
			matched = strings.HasPrefix(p, "/")
		} else {
			matched = p == basePath || strings.HasPrefix(p, basePath+"/")
		}
		if matched {
			entries = append(entries, entry)
		}
	}
	return entries
}

// Open implements FileSystemProvider.Open
func (mfs *MemoryFileSystem) Open(openPath string) (Directory, error) {
	absPath := mfs.resolve(openPath)

	entry, exists := mfs.entries[absPath]
	if !exists {
		return nil, fmt.Errorf("directory not found: %s: %w", openPath, fs.ErrNotExist)
	}

	walkRoot := absPath
	if entry.target != "" {
		target, ok := mfs.entries[entry.target]
		if !ok {
			return nil, fmt.Errorf("dangling symlink: %s: %w", openPath, fs.ErrNotExist)
		}
		entry = target
		walkRoot = target.absPath
	}
	if !entry.info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, openPath)
	}

	return &memoryDirectory{
		absPath:  absPath,
		walkRoot: walkRoot,
		fs:       mfs,
	}, nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	entry, exists := mfs.entries[mfs.resolve(filePath)]
	if exists && entry.target != "" {
		entry, exists = mfs.entries[entry.target]
	}
	if !exists {
		return nil, fmt.Errorf("file not found: %s: %w", filePath, fs.ErrNotExist)
	}
	if entry.info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	if entry.unreadable {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrPermission}
	}
	return entry.content, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	entry, exists := mfs.entries[mfs.resolve(statPath)]
	if !exists {
		return nil, fmt.Errorf("path not found: %s: %w", statPath, fs.ErrNotExist)
	}
	return entry.info, nil
}
