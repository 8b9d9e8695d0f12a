//go:build windows

package trash

import (
	"fmt"
	"time"

	"github.com/Bios-Marcel/wastebasket/v2"

	"github.com/vvka-141/extscan/pkg/extscan"
)

// RecycleBin moves files to the Windows recycle bin through the shell.
// The shell names the entry inside the bin, so records carry no TrashedPath
// and are restored from Explorer rather than by Restore.
type RecycleBin struct{}

func (RecycleBin) Trash(path string) (extscan.TrashRecord, error) {
	abs, err := statForTrash(path)
	if err != nil {
		return extscan.TrashRecord{}, err
	}
	if err := wastebasket.Trash(abs); err != nil {
		return extscan.TrashRecord{}, fmt.Errorf("%w: %s: %v", extscan.ErrDeleteFailed, abs, err)
	}
	return extscan.TrashRecord{OriginalPath: abs, DeletedAt: time.Now()}, nil
}

func recycleBin(string) extscan.Trasher {
	return RecycleBin{}
}

var _ extscan.Trasher = RecycleBin{}
