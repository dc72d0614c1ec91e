package bmerge

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Format is the name of an output grammar.
type Format string

const (
	FormatUnbound Format = "unbound"
	FormatDnsmasq Format = "dnsmasq"
	FormatHosts   Format = "hosts"
	FormatRPZ     Format = "rpz"
	FormatCDB     Format = "cdb"
)

// Formats lists all supported output formats.
var Formats = []Format{FormatUnbound, FormatDnsmasq, FormatHosts, FormatRPZ, FormatCDB}

// ParseFormat returns the format with the given name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	names := make([]string, 0, len(Formats))
	for _, f := range Formats {
		names = append(names, string(f))
	}
	return "", NewError(KindConfig, "unknown format: %s, valid formats are: %s", s, strings.Join(names, ", "))
}

func (f *Format) String() string {
	return string(*f)
}

// Set implements pflag.Value so the format can be validated while parsing flags.
func (f *Format) Set(s string) error {
	v, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (f *Format) Type() string {
	return "format"
}

// RequiresFile returns true for binary formats that can't be written to stdout.
func (f Format) RequiresFile() bool {
	return f == FormatCDB
}

// Renderer returns a renderer for the format, nil if the format is unknown.
func (f Format) Renderer() Renderer {
	switch f {
	case FormatUnbound:
		return LineRenderer{Template: `local-zone: "%s" always_nxdomain`}
	case FormatDnsmasq:
		return LineRenderer{Template: "address=/%s/"}
	case FormatHosts:
		return LineRenderer{Template: "0.0.0.0 %s"}
	case FormatRPZ:
		return RPZRenderer{Serial: uint32(time.Now().Unix())}
	case FormatCDB:
		return CDBRenderer{}
	}
	return nil
}

// Renderer serializes a list of hosts.
type Renderer interface {
	Render(w io.Writer, hosts []Host) error
}

// LineRenderer writes one line per host, produced by formatting Template
// with the host.
type LineRenderer struct {
	Template string
}

var _ Renderer = LineRenderer{}

func (r LineRenderer) Render(w io.Writer, hosts []Host) error {
	bw := bufio.NewWriter(w)
	for _, h := range hosts {
		if _, err := fmt.Fprintf(bw, r.Template+"\n", h); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteOutput renders the hosts into the file at path. The file is replaced
// atomically. With an empty path the output goes to stdout.
func WriteOutput(path string, hosts []Host, r Renderer) error {
	if path == "" {
		if _, ok := r.(CDBRenderer); ok {
			return NewError(KindOutput, "cdb output can't be written to stdout")
		}
		return WrapError(KindOutput, r.Render(os.Stdout, hosts), "could not write to stdout")
	}
	err := writeAtomic(path, 0644, func(f *os.File) error {
		return r.Render(f, hosts)
	})
	return WrapError(KindOutput, err, "could not write to %s", path)
}
