package resolver

import (
	"context"
	"fmt"
	"net"
	"net/netip"
	"os"
	"strconv"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dep2p/go-sockprov/config"
	"github.com/dep2p/go-sockprov/internal/util/logger"
	pkgif "github.com/dep2p/go-sockprov/pkg/interfaces"
	"github.com/dep2p/go-sockprov/pkg/types"
)

var log = logger.Logger("resolver")

var (
	anyIPv4      = netip.AddrFrom4([4]byte{0, 0, 0, 0})
	loopbackIPv4 = netip.AddrFrom4([4]byte{127, 0, 0, 1})
)

// HostnameFunc 返回本机主机名
type HostnameFunc func() (string, error)

// DialFunc 创建连接，签名与 net.Dialer.DialContext 一致
type DialFunc func(ctx context.Context, network, address string) (net.Conn, error)

// PortLookupFunc 查询服务名对应的端口
type PortLookupFunc func(ctx context.Context, network, service string) (int, error)

// Resolver 地址解析器
type Resolver struct {
	host       pkgif.HostResolver
	hostname   HostnameFunc
	dial       DialFunc
	lookupPort PortLookupFunc
	ports      *lru.Cache[string, uint16]
	timeout    time.Duration
}

// Option 解析器选项
type Option func(*Resolver)

// WithHostname 替换主机名来源
func WithHostname(fn HostnameFunc) Option {
	return func(r *Resolver) {
		if fn != nil {
			r.hostname = fn
		}
	}
}

// WithDialFunc 替换获取源地址时使用的拨号函数
func WithDialFunc(fn DialFunc) Option {
	return func(r *Resolver) {
		if fn != nil {
			r.dial = fn
		}
	}
}

// WithPortLookup 替换服务名查询函数
func WithPortLookup(fn PortLookupFunc) Option {
	return func(r *Resolver) {
		if fn != nil {
			r.lookupPort = fn
		}
	}
}

// New 创建解析器
//
// host 为 nil 时按配置选择：设置了 NameServer 用 DNSResolver，否则用系统解析器。
func New(cfg config.ResolverConfig, host pkgif.HostResolver, opts ...Option) (*Resolver, error) {
	if host == nil {
		host = HostResolverFromConfig(cfg)
	}
	size := cfg.ServiceCacheSize
	if size <= 0 {
		size = config.DefaultResolverConfig().ServiceCacheSize
	}
	ports, err := lru.New[string, uint16](size)
	if err != nil {
		return nil, fmt.Errorf("create service cache: %w", err)
	}

	d := &net.Dialer{Timeout: cfg.Timeout.Duration()}
	r := &Resolver{
		host:       host,
		hostname:   os.Hostname,
		dial:       d.DialContext,
		lookupPort: net.DefaultResolver.LookupPort,
		ports:      ports,
		timeout:    cfg.Timeout.Duration(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// HostResolverFromConfig 按配置创建名字解析器
func HostResolverFromConfig(cfg config.ResolverConfig) pkgif.HostResolver {
	if cfg.NameServer != "" {
		return NewDNSResolver(cfg.NameServer, cfg.Timeout.Duration())
	}
	return NewSystemResolver(nil)
}

// withTimeout 为名字查询附加超时
func (r *Resolver) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

// ============================================================================
//                              本机地址
// ============================================================================

// Hostname 返回本机主机名
func (r *Resolver) Hostname() (string, error) {
	name, err := r.hostname()
	if err != nil {
		return "", types.NewOSError("gethostname", err)
	}
	return name, nil
}

// HostnameAddr 返回本机主机名解析出的第一个 IPv4 地址，端口为 0
func (r *Resolver) HostnameAddr(ctx context.Context) (netip.AddrPort, error) {
	name, err := r.Hostname()
	if err != nil {
		return netip.AddrPort{}, err
	}
	addr, err := r.lookupHost(ctx, name, 0)
	if err != nil {
		return netip.AddrPort{}, err
	}
	return netip.AddrPortFrom(addr, 0), nil
}

// SourceAddr 返回到达 dest 时本机使用的源地址，端口为 0
//
// 通过 connect 一个临时 UDP 套接字获得，不发送数据。
// connect 失败时回退到 HostnameAddr。
func (r *Resolver) SourceAddr(ctx context.Context, dest netip.AddrPort) (netip.AddrPort, error) {
	conn, err := r.dial(ctx, "udp4", dest.String())
	if err != nil {
		log.Debug("UDP 套接字 connect 失败，使用主机名地址", "dest", dest, "error", err)
		return r.HostnameAddr(ctx)
	}
	defer conn.Close()

	local, err := netip.ParseAddrPort(conn.LocalAddr().String())
	if err != nil {
		log.Debug("获取套接字本地地址失败", "error", err)
		return netip.AddrPort{}, types.NewOSError("getsockname", err)
	}
	return netip.AddrPortFrom(local.Addr().Unmap(), 0), nil
}

// ============================================================================
//                              getaddrinfo 语义
// ============================================================================

// Lookup 解析 node 与 service 为 IPv4 套接字地址
//
// passive 表示解析本地（监听）端。node 与 service 都为空时返回 types.ErrNoData。
func (r *Resolver) Lookup(ctx context.Context, node, service string, flags types.GetInfoFlags, passive bool) (netip.AddrPort, error) {
	if node == "" && service == "" {
		return netip.AddrPort{}, fmt.Errorf("node or service required: %w", types.ErrNoData)
	}

	port, err := r.lookupService(ctx, service)
	if err != nil {
		log.Debug("服务解析失败", "service", service, "error", err)
		return netip.AddrPort{}, fmt.Errorf("service %q: %w", service, types.ErrNoData)
	}

	var addr netip.Addr
	switch {
	case node == "" && passive:
		addr = anyIPv4
	case node == "":
		addr = loopbackIPv4
	default:
		if a, perr := netip.ParseAddr(node); perr == nil {
			if a = a.Unmap(); !a.Is4() {
				log.Debug("不是 IPv4 地址", "node", node)
				return netip.AddrPort{}, fmt.Errorf("node %q: %w", node, types.ErrNoData)
			}
			addr = a
			break
		}
		if flags.Has(types.FlagNumericHost) {
			log.Debug("要求数字地址", "node", node)
			return netip.AddrPort{}, fmt.Errorf("node %q is not numeric: %w", node, types.ErrNoData)
		}
		addr, err = r.lookupHost(ctx, node, port)
		if err != nil {
			return netip.AddrPort{}, err
		}
	}
	return netip.AddrPortFrom(addr, port), nil
}

func (r *Resolver) lookupHost(ctx context.Context, host string, port uint16) (netip.Addr, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	addrs, err := r.host.LookupIPv4(ctx, host)
	if err != nil || len(addrs) == 0 {
		log.Debug("名字解析失败", "node", host, "port", port, "error", err)
		return netip.Addr{}, fmt.Errorf("resolve %q: %w", host, types.ErrNoData)
	}
	return addrs[0], nil
}

func (r *Resolver) lookupService(ctx context.Context, service string) (uint16, error) {
	if service == "" {
		return 0, nil
	}
	if n, err := strconv.ParseUint(service, 10, 16); err == nil {
		return uint16(n), nil
	}
	if port, ok := r.ports.Get(service); ok {
		return port, nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	n, err := r.lookupPort(ctx, "tcp", service)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > 0xffff {
		return 0, fmt.Errorf("port %d out of range", n)
	}
	r.ports.Add(service, uint16(n))
	return uint16(n), nil
}

// CachedServices 返回服务名缓存中的条目数
func (r *Resolver) CachedServices() int {
	return r.ports.Len()
}

// ============================================================================
//                              Resolve
// ============================================================================

// Resolve 确定一次发现使用的源地址和目的地址
//
// FlagSource 时 node/service 描述本地端，目的地址取自 hints；
// 否则 node/service 描述远端，源地址取自 hints。
// 只有目的地址时由 SourceAddr 推导源地址，推导失败时源地址保持缺省。
func (r *Resolver) Resolve(ctx context.Context, node, service string, flags types.GetInfoFlags, hints *types.Info) (src, dest netip.AddrPort, err error) {
	if flags.Has(types.FlagSource) {
		src, err = r.Lookup(ctx, node, service, flags, true)
		if err != nil {
			return netip.AddrPort{}, netip.AddrPort{}, err
		}
		if hints != nil {
			dest = hints.DestAddr
		}
	} else {
		if node != "" || service != "" {
			dest, err = r.Lookup(ctx, node, service, flags, false)
			if err != nil {
				return netip.AddrPort{}, netip.AddrPort{}, err
			}
		} else if hints != nil {
			dest = hints.DestAddr
		}
		if hints != nil {
			src = hints.SrcAddr
		}
	}

	if dest.IsValid() && !src.IsValid() {
		if s, serr := r.SourceAddr(ctx, dest); serr == nil {
			src = s
		} else {
			log.Debug("无法确定源地址", "dest", dest, "error", serr)
		}
	}

	log.Debug("地址已解析", "src", src, "dest", dest)
	return src, dest, nil
}
