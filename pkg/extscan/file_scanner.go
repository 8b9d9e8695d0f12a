package extscan

// FileEntry is a regular file found by a scan.
type FileEntry struct {
	// Path is the root argument joined with the file's relative path.
	Path string
	// RelativePath is relative to the scan root, slash separated.
	RelativePath string
	// Extension is the normalized extension token ("" when none).
	Extension string
	// Size in bytes at scan time.
	Size int64
}

// ScanStats summarizes a walk.
type ScanStats struct {
	// Files is the number of regular files visited, matched or not.
	Files int
	// Matched is the number of files passed to the callback.
	Matched int
	// Symlinks is the number of symbolic links seen and not followed.
	Symlinks int
	// Skipped lists directories that could not be read.
	Skipped []string
}

// ScanResult contains the materialized results of scanning a directory.
type ScanResult struct {
	Files []FileEntry
	Stats ScanStats
}

// Paths returns the entry paths in scan order.
func (r ScanResult) Paths() []string {
	paths := make([]string, len(r.Files))
	for i, f := range r.Files {
		paths[i] = f.Path
	}
	return paths
}

// Filter decides whether a file with the given normalized extension matches.
type Filter func(extension string) bool

// MatchExtension matches files whose extension equals the normalized token.
func MatchExtension(token string) Filter {
	want := NormalizeExtension(token)
	return func(extension string) bool {
		return extension == want
	}
}

// MatchAll matches every regular file, including files without an extension.
func MatchAll() Filter {
	return func(string) bool { return true }
}

// FileScanner discovers files under a root directory.
type FileScanner interface {
	// Walk calls fn for each matching regular file as it is reached.
	Walk(root string, filter Filter, fn func(FileEntry) error) (ScanStats, error)

	// ScanDirectory collects every matching file.
	ScanDirectory(root string, filter Filter) (ScanResult, error)
}
