package bmerge

import (
	"net/netip"
	"strings"
)

// ParseResult is produced for every line of a blocklist that isn't blank,
// a comment, or a loopback entry. Exactly one of Host and Err is set.
type ParseResult struct {
	Line int // 1-based line number in the blocklist
	Host Host
	Err  error
}

// ParseBlocklist parses hosts-file style blocklist content. Lines can hold just
// a hostname or an IP followed by a hostname. Entries pointing to the
// unspecified address are accepted, loopback entries are skipped and any other
// address is reported as an error since those aren't block directives.
func ParseBlocklist(content string) []ParseResult {
	var results []ParseResult
	for i, line := range strings.Split(content, "\n") {
		host, ok, err := ParseLine(strings.TrimSuffix(line, "\r"))
		if !ok {
			continue
		}
		results = append(results, ParseResult{Line: i + 1, Host: host, Err: err})
	}
	return results
}

// ParseLine parses a single blocklist line. ok is false if the line produced
// no result, either because it's blank after removing comments or because it's
// a loopback entry.
func ParseLine(line string) (host Host, ok bool, err error) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	if strings.TrimSpace(line) == "" {
		return "", false, nil
	}
	// An optional IP followed by the hostname. Anything else on the line is an error.
	var ipString, hostString string
	switch fields := strings.Fields(line); len(fields) {
	case 1:
		hostString = fields[0]
	case 2:
		ipString, hostString = fields[0], fields[1]
	default:
		return "", true, NewError(KindParse, "failed parsing blocklist entry %q", line)
	}
	if ipString != "" {
		ip, err := netip.ParseAddr(ipString)
		switch {
		case err != nil:
			return "", true, WrapError(KindParse, err, "malformed ip in %q", line)
		case ip.IsUnspecified():
		case ip.IsLoopback():
			return "", false, nil
		default:
			return "", true, NewError(KindParse, "suspicious ip %s in %q", ip, line)
		}
	}
	host, err = NewHost(hostString)
	if err != nil {
		return "", true, WrapError(KindParse, err, "invalid host in %q", line)
	}
	return host, true, nil
}
