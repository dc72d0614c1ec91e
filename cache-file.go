package bmerge

import (
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// BlocklistCache holds the last successfully fetched content of blocklists.
type BlocklistCache interface {
	// Put stores the content for a source, replacing any previous entry.
	Put(src Source, content string) error

	// Get returns the stored content. ok is false if there is no entry for the
	// source, err is only set for failures other than a missing entry.
	Get(src Source) (content string, ok bool, err error)
}

// FileCache stores one file per source in a single directory. Entries are
// never expired.
type FileCache struct {
	dir string
}

var _ BlocklistCache = &FileCache{}

func NewFileCache(dir string) *FileCache {
	return &FileCache{dir: dir}
}

func (c *FileCache) Put(src Source, content string) error {
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return WrapError(KindCache, err, "could not create cache dir in %s", c.dir)
	}
	path := c.path(src)
	err := writeAtomic(path, 0644, func(f *os.File) error {
		_, err := f.WriteString(content)
		return err
	})
	return WrapError(KindCache, err, "failed writing to cache file in %s", path)
}

func (c *FileCache) Get(src Source) (string, bool, error) {
	path := c.path(src)
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, WrapError(KindCache, err, "failed reading cached file in %s", path)
	}
	return string(b), true, nil
}

// path returns the cache file of a source. Escaping the whole URL keeps the
// directory flat and, since '%' is escaped too, maps different URLs to
// different names.
func (c *FileCache) path(src Source) string {
	return filepath.Join(c.dir, url.PathEscape(src.String()))
}
