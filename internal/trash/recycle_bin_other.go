//go:build !windows

package trash

import "github.com/vvka-141/extscan/pkg/extscan"

// recycleBin is only reachable from a Windows build.
func recycleBin(goos string) extscan.Trasher {
	return Unsupported{Platform: goos}
}
