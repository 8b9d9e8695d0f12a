package trash

import (
	"fmt"

	"github.com/vvka-141/extscan/pkg/extscan"
)

// Unsupported is the trash of platforms without a supported trash mechanism.
type Unsupported struct {
	Platform string
}

// Trash always fails; files are never unlinked as a fallback.
func (u Unsupported) Trash(path string) (extscan.TrashRecord, error) {
	return extscan.TrashRecord{}, fmt.Errorf("%w: no trash support on %s, %s left in place",
		extscan.ErrTrashUnavailable, u.Platform, path)
}

var _ extscan.Trasher = Unsupported{}
