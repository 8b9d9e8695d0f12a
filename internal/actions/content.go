package actions

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/vvka-141/extscan/pkg/extscan"
)

// checkText rejects content that cannot be shown as text.
func checkText(data []byte) error {
	head := data
	if len(head) > extscan.BinarySniffLength {
		head = head[:extscan.BinarySniffLength]
	}
	if bytes.IndexByte(head, 0) >= 0 {
		return fmt.Errorf("%w: binary content", extscan.ErrUndecodableContent)
	}
	if !utf8.Valid(data) {
		return fmt.Errorf("%w: not valid UTF-8", extscan.ErrUndecodableContent)
	}
	return nil
}

// truncate cuts valid UTF-8 data to at most limit bytes on a rune boundary.
func truncate(data []byte, limit int) ([]byte, bool) {
	if limit <= 0 || len(data) <= limit {
		return data, false
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(data[cut]) {
		cut--
	}
	return data[:cut], true
}
