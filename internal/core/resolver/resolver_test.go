package resolver

import (
	"context"
	"errors"
	"net"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"golang.org/x/net/nettest"

	"github.com/dep2p/go-sockprov/config"
	pkgif "github.com/dep2p/go-sockprov/pkg/interfaces"
	"github.com/dep2p/go-sockprov/pkg/types"
)

// stubHost 固定应答的名字解析器
type stubHost struct {
	addrs map[string][]netip.Addr
	calls int
}

func (s *stubHost) LookupIPv4(_ context.Context, host string) ([]netip.Addr, error) {
	s.calls++
	if a, ok := s.addrs[host]; ok {
		return a, nil
	}
	return nil, ErrNoRecords
}

func newStubHost() *stubHost {
	return &stubHost{addrs: map[string][]netip.Addr{
		"node1":     {netip.MustParseAddr("10.0.0.1"), netip.MustParseAddr("10.0.0.2")},
		"localhost": {netip.MustParseAddr("127.0.0.1")},
		"myhost":    {netip.MustParseAddr("10.1.1.1")},
	}}
}

func failDial(context.Context, string, string) (net.Conn, error) {
	return nil, errors.New("network unreachable")
}

func newTestResolver(t *testing.T, host pkgif.HostResolver, opts ...Option) *Resolver {
	t.Helper()
	opts = append([]Option{
		WithHostname(func() (string, error) { return "myhost", nil }),
		WithPortLookup(func(_ context.Context, _, service string) (int, error) {
			if service == "http" {
				return 80, nil
			}
			return 0, errors.New("unknown service")
		}),
	}, opts...)
	r, err := New(config.DefaultResolverConfig(), host, opts...)
	require.NoError(t, err)
	return r
}

// ============================================================================
//                              Lookup
// ============================================================================

// TestLookup 测试 getaddrinfo 语义
func TestLookup(t *testing.T) {
	r := newTestResolver(t, newStubHost())
	ctx := context.Background()

	tests := []struct {
		name    string
		node    string
		service string
		flags   types.GetInfoFlags
		passive bool
		want    string
		noData  bool
	}{
		{"numeric", "192.168.0.5", "7471", 0, false, "192.168.0.5:7471", false},
		{"name", "node1", "", 0, false, "10.0.0.1:0", false},
		{"named service", "node1", "http", 0, false, "10.0.0.1:80", false},
		{"passive wildcard", "", "7471", 0, true, "0.0.0.0:7471", false},
		{"active loopback", "", "7471", 0, false, "127.0.0.1:7471", false},
		{"numeric flag ok", "10.9.9.9", "", types.FlagNumericHost, false, "10.9.9.9:0", false},
		{"numeric flag name", "node1", "", types.FlagNumericHost, false, "", true},
		{"unknown name", "nowhere", "", 0, false, "", true},
		{"ipv6 literal", "::1", "80", 0, false, "", true},
		{"unknown service", "node1", "gopher-ish", 0, false, "", true},
		{"service too large", "node1", "70000", 0, false, "", true},
		{"nothing", "", "", 0, true, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Lookup(ctx, tt.node, tt.service, tt.flags, tt.passive)
			if tt.noData {
				assert.ErrorIs(t, err, types.ErrNoData)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, netip.MustParseAddrPort(tt.want), got)
		})
	}
}

// TestLookup_ServiceCache 测试服务名缓存
func TestLookup_ServiceCache(t *testing.T) {
	calls := 0
	r := newTestResolver(t, newStubHost(), WithPortLookup(func(context.Context, string, string) (int, error) {
		calls++
		return 443, nil
	}))

	for i := 0; i < 3; i++ {
		got, err := r.Lookup(context.Background(), "", "https", 0, false)
		require.NoError(t, err)
		assert.Equal(t, uint16(443), got.Port())
	}
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, r.CachedServices())
}

// ============================================================================
//                              本机地址
// ============================================================================

// TestHostnameAddr 测试主机名地址
func TestHostnameAddr(t *testing.T) {
	r := newTestResolver(t, newStubHost())

	name, err := r.Hostname()
	require.NoError(t, err)
	assert.Equal(t, "myhost", name)

	addr, err := r.HostnameAddr(context.Background())
	require.NoError(t, err)
	assert.Equal(t, netip.MustParseAddrPort("10.1.1.1:0"), addr)
}

// TestHostname_Error 测试主机名错误
func TestHostname_Error(t *testing.T) {
	boom := errors.New("boom")
	r := newTestResolver(t, newStubHost(), WithHostname(func() (string, error) { return "", boom }))

	_, err := r.Hostname()
	var osErr *types.OSError
	require.ErrorAs(t, err, &osErr)
	assert.ErrorIs(t, err, boom)

	_, err = r.HostnameAddr(context.Background())
	assert.Error(t, err)
}

// TestSourceAddr_UDP 测试通过 UDP connect 获取源地址
func TestSourceAddr_UDP(t *testing.T) {
	if !nettest.TestableNetwork("udp4") {
		t.Skip("udp4 不可用")
	}
	r := newTestResolver(t, newStubHost())

	src, err := r.SourceAddr(context.Background(), netip.MustParseAddrPort("127.0.0.1:9"))
	require.NoError(t, err)
	assert.Equal(t, netip.MustParseAddrPort("127.0.0.1:0"), src, "端口清零")
}

// TestSourceAddr_Fallback 测试 connect 失败回退到主机名
func TestSourceAddr_Fallback(t *testing.T) {
	r := newTestResolver(t, newStubHost(), WithDialFunc(failDial))

	src, err := r.SourceAddr(context.Background(), netip.MustParseAddrPort("203.0.113.1:80"))
	require.NoError(t, err)
	assert.Equal(t, netip.MustParseAddrPort("10.1.1.1:0"), src)
}

// ============================================================================
//                              Resolve
// ============================================================================

// TestResolve 测试源/目的地址的确定
func TestResolve(t *testing.T) {
	r := newTestResolver(t, newStubHost(), WithDialFunc(failDial))
	ctx := context.Background()

	hintSrc := netip.MustParseAddrPort("10.5.5.5:0")
	hintDest := netip.MustParseAddrPort("10.6.6.6:9000")

	t.Run("remote node", func(t *testing.T) {
		src, dest, err := r.Resolve(ctx, "node1", "7471", 0, nil)
		require.NoError(t, err)
		assert.Equal(t, netip.MustParseAddrPort("10.0.0.1:7471"), dest)
		assert.Equal(t, netip.MustParseAddrPort("10.1.1.1:0"), src, "connect 失败后用主机名地址")
	})

	t.Run("remote node keeps hint src", func(t *testing.T) {
		src, _, err := r.Resolve(ctx, "node1", "", 0, &types.Info{SrcAddr: hintSrc})
		require.NoError(t, err)
		assert.Equal(t, hintSrc, src)
	})

	t.Run("hints only", func(t *testing.T) {
		src, dest, err := r.Resolve(ctx, "", "", 0, &types.Info{DestAddr: hintDest})
		require.NoError(t, err)
		assert.Equal(t, hintDest, dest)
		assert.Equal(t, netip.MustParseAddrPort("10.1.1.1:0"), src)
	})

	t.Run("source mode", func(t *testing.T) {
		src, dest, err := r.Resolve(ctx, "", "7471", types.FlagSource, &types.Info{DestAddr: hintDest, SrcAddr: hintSrc})
		require.NoError(t, err)
		assert.Equal(t, netip.MustParseAddrPort("0.0.0.0:7471"), src)
		assert.Equal(t, hintDest, dest)
	})

	t.Run("source mode no dest", func(t *testing.T) {
		src, dest, err := r.Resolve(ctx, "myhost", "", types.FlagSource, nil)
		require.NoError(t, err)
		assert.Equal(t, netip.MustParseAddrPort("10.1.1.1:0"), src)
		assert.False(t, dest.IsValid())
	})

	t.Run("lookup failure", func(t *testing.T) {
		_, _, err := r.Resolve(ctx, "nowhere", "", 0, nil)
		assert.ErrorIs(t, err, types.ErrNoData)
	})

	t.Run("nothing", func(t *testing.T) {
		src, dest, err := r.Resolve(ctx, "", "", 0, nil)
		require.NoError(t, err)
		assert.False(t, src.IsValid())
		assert.False(t, dest.IsValid())
	})
}

// TestResolve_SourceUnknown 测试源地址无法确定时保持缺省
func TestResolve_SourceUnknown(t *testing.T) {
	r := newTestResolver(t, &stubHost{addrs: map[string][]netip.Addr{}},
		WithDialFunc(failDial))

	src, dest, err := r.Resolve(context.Background(), "10.0.0.9", "80", 0, nil)
	require.NoError(t, err)
	assert.Equal(t, netip.MustParseAddrPort("10.0.0.9:80"), dest)
	assert.False(t, src.IsValid())
}

// ============================================================================
//                              HostResolver
// ============================================================================

// TestHostResolverFromConfig 测试按配置选择解析器
func TestHostResolverFromConfig(t *testing.T) {
	cfg := config.DefaultResolverConfig()
	_, ok := HostResolverFromConfig(cfg).(*SystemResolver)
	assert.True(t, ok)

	cfg.NameServer = "127.0.0.1:53"
	dr, ok := HostResolverFromConfig(cfg).(*DNSResolver)
	require.True(t, ok)
	assert.Equal(t, "127.0.0.1:53", dr.Server())
}

// TestSystemResolver_Literal 测试系统解析器处理字面地址
func TestSystemResolver_Literal(t *testing.T) {
	addrs, err := NewSystemResolver(nil).LookupIPv4(context.Background(), "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, []netip.Addr{netip.MustParseAddr("127.0.0.1")}, addrs)
}

// TestModule 测试 Fx 模块
func TestModule(t *testing.T) {
	host := newStubHost()
	var r *Resolver
	app := fxtest.New(t,
		fx.Provide(func() pkgif.HostResolver { return host }),
		fx.Provide(func() HostnameFunc { return func() (string, error) { return "myhost", nil } }),
		Module(),
		fx.Populate(&r),
	)
	defer app.RequireStart().RequireStop()

	addr, err := r.HostnameAddr(context.Background())
	require.NoError(t, err)
	assert.Equal(t, netip.MustParseAddrPort("10.1.1.1:0"), addr)
	assert.Equal(t, 1, host.calls)
}
