package bmerge

import (
	"net/url"
)

// SchemeLoader picks a loader based on the URL scheme of the source.
type SchemeLoader struct {
	loaders map[string]BlocklistLoader
}

var _ BlocklistLoader = &SchemeLoader{}

// NewSchemeLoader returns a loader that handles http and https with an HTTPLoader
// and file URLs with a FileLoader.
func NewSchemeLoader(opt HTTPLoaderOptions) *SchemeLoader {
	httpLoader := NewHTTPLoader(opt)
	return &SchemeLoader{
		loaders: map[string]BlocklistLoader{
			"http":  httpLoader,
			"https": httpLoader,
			"file":  FileLoader{},
		},
	}
}

func (l *SchemeLoader) Load(src Source) (string, error) {
	u, err := url.Parse(src.String())
	if err != nil {
		return "", WrapError(KindFetch, err, "invalid blocklist url %s", src)
	}
	loader, ok := l.loaders[u.Scheme]
	if !ok {
		return "", NewError(KindFetch, "unsupported scheme %q in %s", u.Scheme, src)
	}
	return loader.Load(src)
}
