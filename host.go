package bmerge

import (
	"net/url"
	"strings"
	"unicode"
)

// Host is a domain name that can be written safely into any of the output
// formats. The zero value is not a valid Host, use NewHost to create one.
type Host string

// NewHost validates raw and returns it as a Host. No normalization is done,
// the caller is expected to have trimmed the value already. Empty strings and
// strings containing whitespace, '/' or '"' are rejected.
func NewHost(raw string) (Host, error) {
	if raw == "" || strings.IndexFunc(raw, invalidHostRune) >= 0 {
		return "", NewError(KindValidation, "%q is not a valid domain name", raw)
	}
	return Host(raw), nil
}

func invalidHostRune(r rune) bool {
	return unicode.IsSpace(r) || r == '/' || r == '"'
}

func (h Host) String() string {
	return string(h)
}

// Source identifies a remote blocklist. It's used to fetch the list as well as
// the key for the cache.
type Source string

// ParseSource validates a blocklist location. Only absolute http, https and
// file URLs are accepted.
func ParseSource(raw string) (Source, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", WrapError(KindValidation, err, "invalid blocklist url %q", raw)
	}
	switch u.Scheme {
	case "http", "https":
		if u.Host == "" {
			return "", NewError(KindValidation, "blocklist url %q has no host", raw)
		}
	case "file":
		if u.Path == "" {
			return "", NewError(KindValidation, "blocklist url %q has no path", raw)
		}
	default:
		return "", NewError(KindValidation, "unsupported scheme in blocklist url %q", raw)
	}
	return Source(u.String()), nil
}

func (s Source) String() string {
	return string(s)
}
