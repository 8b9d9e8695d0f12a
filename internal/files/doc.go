// Package files groups the file-related sub-packages.
//
//   - filesystem: filesystem abstraction with OS and in-memory implementations
//   - scanner: recursive discovery of regular files filtered by extension
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/extscan/internal/files/filesystem"
//	    "github.com/vvka-141/extscan/internal/files/scanner"
//	)
//
//	sc := scanner.NewScannerWithFS(filesystem.NewOSFileSystem(), logger)
//	result, err := sc.ScanDirectory("./notes", extscan.MatchExtension("txt"))
package files
