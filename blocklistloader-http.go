package bmerge

import (
	"context"
	"io"
	"net/http"
	"runtime/debug"
	"time"
	"unicode/utf8"
)

// HTTPLoader reads blocklists from a server via HTTP(S). Every call issues
// exactly one request, there are no retries.
type HTTPLoader struct {
	client *http.Client
	opt    HTTPLoaderOptions
}

// HTTPLoaderOptions holds options for the HTTP blocklist loader.
type HTTPLoaderOptions struct {
	// Time allowed for the whole request including reading the body.
	// Defaults to 5 seconds.
	Timeout time.Duration

	// Largest body that is accepted. Defaults to 10MiB.
	MaxSize int64

	// Value of the User-Agent header.
	UserAgent string
}

var _ BlocklistLoader = &HTTPLoader{}

const (
	defaultHTTPTimeout = 5 * time.Second
	defaultHTTPMaxSize = 10 << 20
)

func NewHTTPLoader(opt HTTPLoaderOptions) *HTTPLoader {
	if opt.Timeout <= 0 {
		opt.Timeout = defaultHTTPTimeout
	}
	if opt.MaxSize <= 0 {
		opt.MaxSize = defaultHTTPMaxSize
	}
	if opt.UserAgent == "" {
		opt.UserAgent = userAgent()
	}
	return &HTTPLoader{
		client: &http.Client{},
		opt:    opt,
	}
}

func (l *HTTPLoader) Load(src Source) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), l.opt.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.String(), nil)
	if err != nil {
		return "", WrapError(KindFetch, err, "could not fetch blocklist %s", src)
	}
	req.Header.Set("User-Agent", l.opt.UserAgent)

	resp, err := l.client.Do(req)
	if err != nil {
		return "", WrapError(KindFetch, err, "could not fetch blocklist %s", src)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", NewError(KindFetch, "%s returned status %d", src, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, l.opt.MaxSize+1))
	if err != nil {
		return "", WrapError(KindFetch, err, "could not fetch blocklist %s", src)
	}
	if int64(len(body)) > l.opt.MaxSize {
		return "", NewError(KindFetch, "blocklist %s is larger than %d bytes", src, l.opt.MaxSize)
	}
	if !utf8.Valid(body) {
		return "", NewError(KindFetch, "blocklist %s is not valid utf-8", src)
	}
	return string(body), nil
}

// userAgent identifies this tool to blocklist operators.
func userAgent() string {
	version := "devel"
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		version = bi.Main.Version
	}
	return "blockmerge/" + version
}
