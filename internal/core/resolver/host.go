package resolver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"
	"strings"
	"time"

	"github.com/miekg/dns"

	pkgif "github.com/dep2p/go-sockprov/pkg/interfaces"
)

// ErrNoRecords 名字没有 IPv4 地址
var ErrNoRecords = errors.New("no IPv4 records found")

// ============================================================================
//                              SystemResolver
// ============================================================================

// SystemResolver 使用系统解析器
type SystemResolver struct {
	resolver *net.Resolver
}

var _ pkgif.HostResolver = (*SystemResolver)(nil)

// NewSystemResolver 创建系统解析器，r 为 nil 时使用 net.DefaultResolver
func NewSystemResolver(r *net.Resolver) *SystemResolver {
	if r == nil {
		r = net.DefaultResolver
	}
	return &SystemResolver{resolver: r}
}

// LookupIPv4 查询主机的 IPv4 地址
func (s *SystemResolver) LookupIPv4(ctx context.Context, host string) ([]netip.Addr, error) {
	addrs, err := s.resolver.LookupNetIP(ctx, "ip4", host)
	if err != nil {
		return nil, err
	}
	out := make([]netip.Addr, 0, len(addrs))
	for _, a := range addrs {
		if a = a.Unmap(); a.Is4() {
			out = append(out, a)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w", host, ErrNoRecords)
	}
	return out, nil
}

// ============================================================================
//                              DNSResolver
// ============================================================================

// DNSResolver 向指定服务器查询 A 记录
//
// localhost 与字面 IPv4 地址在本地应答，不发出查询。
type DNSResolver struct {
	server string
	client *dns.Client
}

var _ pkgif.HostResolver = (*DNSResolver)(nil)

// NewDNSResolver 创建 DNS 解析器，server 格式为 "ip:port"
func NewDNSResolver(server string, timeout time.Duration) *DNSResolver {
	return &DNSResolver{
		server: server,
		client: &dns.Client{Net: "udp", Timeout: timeout},
	}
}

// Server 返回 DNS 服务器地址
func (r *DNSResolver) Server() string {
	return r.server
}

// LookupIPv4 查询主机的 IPv4 地址
func (r *DNSResolver) LookupIPv4(ctx context.Context, host string) ([]netip.Addr, error) {
	name := strings.TrimSuffix(host, ".")
	if strings.EqualFold(name, "localhost") {
		return []netip.Addr{netip.AddrFrom4([4]byte{127, 0, 0, 1})}, nil
	}
	if a, err := netip.ParseAddr(name); err == nil {
		if a = a.Unmap(); a.Is4() {
			return []netip.Addr{a}, nil
		}
		return nil, fmt.Errorf("%s: %w", host, ErrNoRecords)
	}

	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(name), dns.TypeA)
	m.RecursionDesired = true

	in, _, err := r.client.ExchangeContext(ctx, m, r.server)
	if err != nil {
		return nil, fmt.Errorf("query %s via %s: %w", host, r.server, err)
	}
	if in.Rcode != dns.RcodeSuccess {
		return nil, fmt.Errorf("query %s: %s: %w", host, dns.RcodeToString[in.Rcode], ErrNoRecords)
	}

	var out []netip.Addr
	for _, rr := range in.Answer {
		a, ok := rr.(*dns.A)
		if !ok {
			continue
		}
		if addr, ok := netip.AddrFromSlice(a.A.To4()); ok {
			out = append(out, addr)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w", host, ErrNoRecords)
	}
	return out, nil
}
