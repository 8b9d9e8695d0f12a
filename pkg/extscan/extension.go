package extscan

import (
	"fmt"
	"path/filepath"
	"strings"
)

// NormalizeExtension turns user input like "txt", ".txt", "..TXT" and " .Txt "
// into "txt". It applies to arguments only; file names go through ExtensionOf.
func NormalizeExtension(raw string) string {
	token := strings.TrimSpace(raw)
	token = strings.TrimLeft(token, ".")
	return strings.ToLower(token)
}

// ParseExtension normalizes a user supplied extension and rejects tokens
// that can never match a single filename suffix.
func ParseExtension(raw string) (string, error) {
	token := NormalizeExtension(raw)
	if token == "" {
		return "", fmt.Errorf("%w: extension %q is empty", ErrInvalidArgument, raw)
	}
	if strings.ContainsAny(token, `/\.`) || strings.IndexFunc(token, isSpace) >= 0 {
		return "", fmt.Errorf("%w: extension %q must be a single suffix without separators, dots or spaces", ErrInvalidArgument, raw)
	}
	return token, nil
}

// ExtensionOf returns the lower-cased suffix after the last dot of a file
// name or path. The suffix is otherwise kept as is, so "a. txt" has the
// extension " txt" and never matches "txt". Dotfiles without a further dot
// (".bashrc"), names ending in a dot and names without a dot yield "".
func ExtensionOf(name string) string {
	base := filepath.Base(name)
	idx := strings.LastIndexByte(base, '.')
	if idx <= 0 || idx == len(base)-1 {
		return ""
	}
	return strings.ToLower(base[idx+1:])
}

// ExtensionLabel renders a token for humans: ".txt", or NoExtensionLabel.
func ExtensionLabel(token string) string {
	if token == "" {
		return NoExtensionLabel
	}
	return "." + token
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
}
