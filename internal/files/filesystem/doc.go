// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// This package defines interfaces for directory traversal and file reads, enabling
// testability through in-memory implementations while maintaining compatibility
// with the OS filesystem.
//
// Key interfaces:
//   - FileSystemProvider: Factory for creating directory instances
//   - Directory: Represents a directory that can be traversed
//   - File: Represents a single entry reached by a walk
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing, with support
//     for symbolic links and unreadable directories
package filesystem
