package bmerge

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileCache(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "not", "yet", "there")
	c := NewFileCache(dir)
	src := Source("https://example.com/lists/hosts.txt")

	// Nothing cached yet, that's not an error
	_, ok, err := c.Get(src)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, c.Put(src, "first"))
	content, ok, err := c.Get(src)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "first", content)

	// Overwrite
	require.NoError(t, c.Put(src, "second"))
	content, _, err = c.Get(src)
	require.NoError(t, err)
	require.Equal(t, "second", content)

	// One flat file per source and no leftover temp files
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.False(t, entries[0].IsDir())
}

func TestFileCacheDistinctNames(t *testing.T) {
	c := NewFileCache(t.TempDir())
	a := Source("https://example.com/a/b")
	b := Source("https://example.com/a_b")
	require.NotEqual(t, c.path(a), c.path(b))
	require.Equal(t, c.dir, filepath.Dir(c.path(a)))

	require.NoError(t, c.Put(a, "a"))
	require.NoError(t, c.Put(b, "b"))
	content, _, err := c.Get(a)
	require.NoError(t, err)
	require.Equal(t, "a", content)
}

func TestFileCacheErrors(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permissions are not enforced")
	}
	dir := t.TempDir()
	c := NewFileCache(dir)
	src := Source("https://example.com/hosts")
	require.NoError(t, c.Put(src, "content"))

	require.NoError(t, os.Chmod(c.path(src), 0))
	_, ok, err := c.Get(src)
	require.Error(t, err)
	require.False(t, ok)
	require.True(t, IsKind(err, KindCache))

	require.NoError(t, os.Chmod(dir, 0500))
	defer os.Chmod(dir, 0755)
	err = c.Put(Source("https://example.com/other"), "content")
	require.Error(t, err)
	require.True(t, IsKind(err, KindCache))
}
