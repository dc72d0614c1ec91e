package bmerge

import (
	"net/url"
	"os"
	"unicode/utf8"
)

// FileLoader reads blocklists referenced by file:// URLs from the local machine.
type FileLoader struct{}

var _ BlocklistLoader = FileLoader{}

func (FileLoader) Load(src Source) (string, error) {
	u, err := url.Parse(src.String())
	if err != nil {
		return "", WrapError(KindFetch, err, "invalid blocklist url %s", src)
	}
	if u.Scheme != "file" {
		return "", NewError(KindFetch, "%s is not a file url", src)
	}
	b, err := os.ReadFile(u.Path)
	if err != nil {
		return "", WrapError(KindFetch, err, "could not read blocklist %s", src)
	}
	if !utf8.Valid(b) {
		return "", NewError(KindFetch, "blocklist %s is not valid utf-8", src)
	}
	return string(b), nil
}
