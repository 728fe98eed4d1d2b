// Package probe checks that the DNS server the console manages answers
// queries.
package probe

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/miekg/dns"

	"github.com/maksimkurb/keen-console/src/internal/log"
)

const (
	defaultDNSPort = "53"
	versionQuery   = "version.bind."
)

// Result describes one probe of a DNS server.
type Result struct {
	Address   string        `json:"address"`
	Reachable bool          `json:"reachable"`
	RTT       time.Duration `json:"rtt"`
	Rcode     string        `json:"rcode,omitempty"`
	Version   string        `json:"version,omitempty"`
}

// DNS queries version.bind CH TXT at addr. When the server refuses to tell
// its version, a root NS query confirms that it answers at all. A server
// that replies with any rcode is reachable; only transport errors are
// returned as errors.
func DNS(ctx context.Context, addr string, timeout time.Duration) (Result, error) {
	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = net.JoinHostPort(addr, defaultDNSPort)
	}

	client := &dns.Client{Net: "udp", Timeout: timeout}
	result := Result{Address: addr}

	req := new(dns.Msg)
	req.SetQuestion(versionQuery, dns.TypeTXT)
	req.Question[0].Qclass = dns.ClassCHAOS

	resp, rtt, err := client.ExchangeContext(ctx, req, addr)
	if err != nil {
		log.Debugf("[%04x] Probe of %s failed: %v", req.Id, addr, err)
		return result, fmt.Errorf("failed to query %s: %w", addr, err)
	}

	result.Reachable = true
	result.RTT = rtt
	result.Rcode = dns.RcodeToString[resp.Rcode]
	result.Version = versionFrom(resp)

	if result.Version != "" {
		return result, nil
	}

	// version.bind is often disabled; ask something every resolver answers
	req = new(dns.Msg)
	req.SetQuestion(".", dns.TypeNS)
	resp, rtt, err = client.ExchangeContext(ctx, req, addr)
	if err != nil {
		log.Debugf("[%04x] Root NS probe of %s failed: %v", req.Id, addr, err)
		return result, nil
	}
	result.RTT = rtt
	result.Rcode = dns.RcodeToString[resp.Rcode]
	return result, nil
}

func versionFrom(resp *dns.Msg) string {
	if resp.Rcode != dns.RcodeSuccess {
		return ""
	}
	for _, rr := range resp.Answer {
		if txt, ok := rr.(*dns.TXT); ok {
			return strings.Join(txt.Txt, " ")
		}
	}
	return ""
}
