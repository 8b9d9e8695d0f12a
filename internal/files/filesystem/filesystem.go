package filesystem

import (
	"errors"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// SkipDir may be returned by a walk callback for a directory to skip its contents.
var SkipDir = fs.SkipDir

// ErrNotDirectory is returned by Open when the path exists but is not a directory.
var ErrNotDirectory = errors.New("path is not a directory")

// File represents a directory entry reached by a walk.
type File interface {
	// Path returns the root path as opened joined with the entry's relative path
	Path() string

	// RelativePath returns the slash-separated path relative to the walk root ("." for the root)
	RelativePath() string

	// Info returns the entry's metadata without following symbolic links.
	// It is nil when the walk callback receives an error for an entry that could not be stat'ed.
	Info() FileInfo
}

// WalkFunc is called for every entry reached by Directory.Walk.
//
// A directory that cannot be read is reported twice: once with a nil error
// before its contents are read, then again with the read error. Returning nil
// from the second call continues with the directory's siblings.
// If file is nil the error concerns the walk itself.
type WalkFunc func(file File, err error) error

// Directory represents a directory that can be traversed to discover files
type Directory interface {
	// Path returns the directory path as it was opened
	Path() string

	// Walk traverses the tree in lexical order without following symbolic links.
	// If the callback returns SkipDir for a directory, its contents are skipped;
	// any other non-nil error stops the walk and is returned.
	Walk(fn WalkFunc) error
}

// FileSystemProvider is a factory for creating Directory instances
type FileSystemProvider interface {
	// Open opens a directory at the specified path.
	// Missing paths yield an error matching fs.ErrNotExist; files yield ErrNotDirectory.
	// A symbolic link given as the root is followed.
	Open(path string) (Directory, error)

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path without following symbolic links
	Stat(path string) (FileInfo, error)
}
