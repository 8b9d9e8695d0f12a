//go:build !unix

package trash

import "errors"

func isCrossDevice(error) bool {
	return false
}

func mountPoint(string) (string, error) {
	return "", errors.New("volume trash directories are not supported on this platform")
}
