// Package scanner provides extension-based file discovery over a directory tree.
//
// The scanner package is responsible for:
//   - Recursively discovering regular files under a root directory
//   - Matching them against a normalized extension token (case-insensitive)
//   - Skipping unreadable subdirectories with a warning instead of failing
//   - Never following symbolic links below the root
//
// The scanner is designed to be filesystem-agnostic through the use of
// filesystem.FileSystemProvider interface, enabling both production use
// with the OS filesystem and testing with in-memory filesystems.
package scanner
