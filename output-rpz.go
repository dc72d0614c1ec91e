package bmerge

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/miekg/dns"
)

// RPZRenderer writes a response policy zone in which every host is answered
// with NXDOMAIN (CNAME to the root).
type RPZRenderer struct {
	// Zone origin, defaults to "blockmerge.rpz."
	Zone string

	// Defaults to 300 seconds.
	TTL uint32

	// SOA serial.
	Serial uint32
}

var _ Renderer = RPZRenderer{}

const (
	defaultRPZZone = "blockmerge.rpz."
	defaultRPZTTL  = 300
)

func (r RPZRenderer) Render(w io.Writer, hosts []Host) error {
	zone := r.Zone
	if zone == "" {
		zone = defaultRPZZone
	}
	zone = dns.Fqdn(zone)
	ttl := r.TTL
	if ttl == 0 {
		ttl = defaultRPZTTL
	}

	header := func(typ uint16) dns.RR_Header {
		return dns.RR_Header{Name: zone, Rrtype: typ, Class: dns.ClassINET, Ttl: ttl}
	}
	soa := &dns.SOA{
		Hdr:     header(dns.TypeSOA),
		Ns:      "localhost.",
		Mbox:    "hostmaster.localhost.",
		Serial:  r.Serial,
		Refresh: 3600,
		Retry:   600,
		Expire:  86400,
		Minttl:  ttl,
	}
	ns := &dns.NS{Hdr: header(dns.TypeNS), Ns: "localhost."}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "$TTL %d\n", ttl)
	fmt.Fprintln(bw, soa.String())
	fmt.Fprintln(bw, ns.String())
	for _, h := range hosts {
		rr := &dns.CNAME{
			Hdr: dns.RR_Header{
				Name:   strings.TrimSuffix(h.String(), ".") + "." + zone,
				Rrtype: dns.TypeCNAME,
				Class:  dns.ClassINET,
				Ttl:    ttl,
			},
			Target: ".",
		}
		if _, err := fmt.Fprintln(bw, rr.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}
