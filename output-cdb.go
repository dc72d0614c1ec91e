package bmerge

import (
	"io"

	"github.com/colinmarc/cdb"
	"github.com/pkg/errors"
)

// CDBRenderer writes a constant database with one key per host and an empty
// value, as used by dnsdist's CDBKVStore.
type CDBRenderer struct{}

var _ Renderer = CDBRenderer{}

func (CDBRenderer) Render(w io.Writer, hosts []Host) error {
	ws, ok := w.(io.WriteSeeker)
	if !ok {
		return errors.New("cdb output requires a seekable destination")
	}
	// Hide Close from the cdb writer, the file is closed by the caller.
	cw, err := cdb.NewWriter(struct{ io.WriteSeeker }{ws}, nil)
	if err != nil {
		return err
	}
	for _, h := range hosts {
		if err := cw.Put([]byte(h), nil); err != nil {
			return err
		}
	}
	return cw.Close()
}
