package mocks

import (
	"net/netip"
	"sync"

	"github.com/dep2p/go-sockprov/pkg/interfaces"
	"github.com/dep2p/go-sockprov/pkg/types"
)

// BuildInfoCall 记录一次 BuildInfo 调用
type BuildInfoCall struct {
	Src   netip.AddrPort
	Dest  netip.AddrPort
	Hints *types.Info
}

// MockEndpointKind 模拟 EndpointKind 接口实现
type MockEndpointKind struct {
	TypeValue types.EndpointType
	CapsValue types.Caps

	// 可覆盖的方法
	VerifyAttrFunc func(ep *types.EPAttr, tx *types.TxAttr, rx *types.RxAttr) error
	BuildInfoFunc  func(src, dest netip.AddrPort, hints *types.Info) ([]*types.Info, error)

	// 调用记录
	mu             sync.Mutex
	VerifyCalls    int
	BuildInfoCalls []BuildInfoCall
}

var _ interfaces.EndpointKind = (*MockEndpointKind)(nil)

// NewMockEndpointKind 创建默认支持全部能力、每次构建一个描述符的 Mock
func NewMockEndpointKind(ep types.EndpointType) *MockEndpointKind {
	return &MockEndpointKind{
		TypeValue: ep,
		CapsValue: ^types.Caps(0),
	}
}

// Type 返回端点类型
func (m *MockEndpointKind) Type() types.EndpointType {
	return m.TypeValue
}

// Caps 返回能力集
func (m *MockEndpointKind) Caps() types.Caps {
	return m.CapsValue
}

// VerifyAttr 校验属性
func (m *MockEndpointKind) VerifyAttr(ep *types.EPAttr, tx *types.TxAttr, rx *types.RxAttr) error {
	m.mu.Lock()
	m.VerifyCalls++
	m.mu.Unlock()

	if m.VerifyAttrFunc != nil {
		return m.VerifyAttrFunc(ep, tx, rx)
	}
	return nil
}

// BuildInfo 构建描述符
func (m *MockEndpointKind) BuildInfo(src, dest netip.AddrPort, hints *types.Info) ([]*types.Info, error) {
	m.mu.Lock()
	m.BuildInfoCalls = append(m.BuildInfoCalls, BuildInfoCall{Src: src, Dest: dest, Hints: hints})
	m.mu.Unlock()

	if m.BuildInfoFunc != nil {
		return m.BuildInfoFunc(src, dest, hints)
	}
	return []*types.Info{{
		AddrFormat: types.FormatSockaddrIn,
		SrcAddr:    src,
		DestAddr:   dest,
		EPAttr:     &types.EPAttr{Type: m.TypeValue},
	}}, nil
}

// Calls 返回 BuildInfo 调用记录的副本
func (m *MockEndpointKind) Calls() []BuildInfoCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]BuildInfoCall, len(m.BuildInfoCalls))
	copy(out, m.BuildInfoCalls)
	return out
}
