package bmerge

import (
	"os"

	"github.com/google/renameio/v2"
)

// writeAtomic creates a temporary file next to path, passes it to write and
// renames it over path once write returns without error. Readers see either
// the previous file or the complete new one. The temporary file is removed if
// anything fails.
func writeAtomic(path string, perm os.FileMode, write func(f *os.File) error) error {
	pf, err := renameio.NewPendingFile(path, renameio.WithPermissions(perm))
	if err != nil {
		return err
	}
	defer pf.Cleanup()

	if err := write(pf.File); err != nil {
		return err
	}
	return pf.CloseAtomicallyReplace()
}
