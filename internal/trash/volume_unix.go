//go:build unix

package trash

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

func isCrossDevice(err error) bool {
	return errors.Is(err, syscall.EXDEV)
}

// mountPoint returns the topmost ancestor of p that is on the same device as p's directory.
func mountPoint(p string) (string, error) {
	dir := filepath.Dir(p)
	dev, err := deviceOf(dir)
	if err != nil {
		return "", err
	}
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir, nil
		}
		parentDev, err := deviceOf(parent)
		if err != nil || parentDev != dev {
			return dir, nil
		}
		dir = parent
	}
}

func deviceOf(p string) (uint64, error) {
	info, err := os.Stat(p)
	if err != nil {
		return 0, err
	}
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, fmt.Errorf("no device information for %s", p)
	}
	return uint64(st.Dev), nil
}
