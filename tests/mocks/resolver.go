package mocks

import (
	"context"
	"errors"
	"net/netip"
	"sync"

	"github.com/dep2p/go-sockprov/pkg/interfaces"
	"github.com/dep2p/go-sockprov/pkg/types"
)

// ErrHostNotFound Mock 中未配置的主机
var ErrHostNotFound = errors.New("mock: host not found")

// MockHostResolver 模拟 HostResolver 接口实现
type MockHostResolver struct {
	Hosts map[string][]netip.Addr

	// 可覆盖的方法
	LookupIPv4Func func(ctx context.Context, host string) ([]netip.Addr, error)

	// 调用记录
	mu          sync.Mutex
	LookupCalls []string
}

var _ interfaces.HostResolver = (*MockHostResolver)(nil)

// NewMockHostResolver 创建以 hosts 应答的 Mock
func NewMockHostResolver(hosts map[string]string) *MockHostResolver {
	m := &MockHostResolver{Hosts: make(map[string][]netip.Addr, len(hosts))}
	for name, ip := range hosts {
		m.Hosts[name] = []netip.Addr{netip.MustParseAddr(ip)}
	}
	return m
}

// LookupIPv4 查询主机地址
func (m *MockHostResolver) LookupIPv4(ctx context.Context, host string) ([]netip.Addr, error) {
	m.mu.Lock()
	m.LookupCalls = append(m.LookupCalls, host)
	m.mu.Unlock()

	if m.LookupIPv4Func != nil {
		return m.LookupIPv4Func(ctx, host)
	}
	if addrs, ok := m.Hosts[host]; ok {
		return addrs, nil
	}
	return nil, ErrHostNotFound
}

// MockObjectLookup 模拟 ObjectLookup 接口实现
type MockObjectLookup struct {
	Fabrics map[types.FabricID]bool
	Domains map[types.DomainID]bool
}

var _ interfaces.ObjectLookup = (*MockObjectLookup)(nil)

// NewMockObjectLookup 创建空的 Mock
func NewMockObjectLookup() *MockObjectLookup {
	return &MockObjectLookup{
		Fabrics: make(map[types.FabricID]bool),
		Domains: make(map[types.DomainID]bool),
	}
}

// HasFabric 检查 fabric
func (m *MockObjectLookup) HasFabric(id types.FabricID) bool {
	return m.Fabrics[id]
}

// HasDomain 检查 domain
func (m *MockObjectLookup) HasDomain(id types.DomainID) bool {
	return m.Domains[id]
}
