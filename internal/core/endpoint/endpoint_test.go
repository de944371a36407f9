package endpoint

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/dep2p/go-sockprov/pkg/types"
)

var (
	src4  = netip.MustParseAddrPort("192.168.1.10:0")
	dest4 = netip.MustParseAddrPort("192.168.1.20:7471")
	src6  = netip.MustParseAddrPort("[fe80::1]:0")
)

// TestKindTable_Order 测试类型表顺序
func TestKindTable_Order(t *testing.T) {
	table := DefaultKindTable()

	var order []types.EndpointType
	for _, k := range table.All() {
		order = append(order, k.Type())
	}
	assert.Equal(t, []types.EndpointType{types.EPMsg, types.EPDgram, types.EPRDM}, order)

	k, ok := table.Lookup(types.EPRDM)
	require.True(t, ok)
	assert.Equal(t, types.EPRDM, k.Type())

	_, ok = table.Lookup(types.EPUnspec)
	assert.False(t, ok)
}

// TestKindTable_Dedup 测试重复类型只保留第一个
func TestKindTable_Dedup(t *testing.T) {
	first := NewKind(RDMProfile())
	table := NewKindTable(first, NewKind(RDMProfile()), NewKind(MsgProfile()))

	require.Len(t, table.All(), 2)
	k, _ := table.Lookup(types.EPRDM)
	assert.Same(t, first, k)
}

// TestProfile_Caps 测试各类型能力集
func TestProfile_Caps(t *testing.T) {
	msg, dgram, rdm := MsgProfile().Caps(), DgramProfile().Caps(), RDMProfile().Caps()

	assert.True(t, msg.Has(types.CapRMA))
	assert.False(t, msg.Has(types.CapDirectedRecv))
	assert.False(t, msg.Has(types.CapNamedRxCtx))

	assert.True(t, dgram.Has(types.CapMsg|types.CapTagged|types.CapSend|types.CapRecv))
	assert.False(t, dgram.Has(types.CapRMA))
	assert.False(t, dgram.Has(types.CapAtomic))

	assert.True(t, rdm.Has(types.CapDirectedRecv|types.CapRMA|types.CapAtomic))
	assert.True(t, msg.Subset(rdm))

	for _, c := range []types.Caps{msg, dgram, rdm} {
		assert.False(t, c.Has(types.CapMulticast))
	}
}

// TestVerifyAttr 测试端点属性校验
func TestVerifyAttr(t *testing.T) {
	rdm := NewKind(RDMProfile())
	dgram := NewKind(DgramProfile())

	tests := []struct {
		name string
		kind *Kind
		ep   *types.EPAttr
		tx   *types.TxAttr
		rx   *types.RxAttr
		ok   bool
	}{
		{"nil", rdm, nil, nil, nil, true},
		{"zero", rdm, &types.EPAttr{}, &types.TxAttr{}, &types.RxAttr{}, true},
		{"tcp", rdm, &types.EPAttr{Protocol: types.ProtoSockTCP}, nil, nil, true},
		{"udp on rdm", rdm, &types.EPAttr{Protocol: types.ProtoSockUDP}, nil, nil, false},
		{"udp on dgram", dgram, &types.EPAttr{Protocol: types.ProtoSockUDP}, nil, nil, true},
		{"proto version", rdm, &types.EPAttr{ProtocolVersion: WireProtoVersion + 1}, nil, nil, false},
		{"max msg", rdm, &types.EPAttr{MaxMsgSize: MaxMsgSize}, nil, nil, true},
		{"max msg over", rdm, &types.EPAttr{MaxMsgSize: MaxMsgSize + 1}, nil, nil, false},
		{"msg prefix", rdm, &types.EPAttr{MsgPrefixSize: 8}, nil, nil, false},
		{"tx ctx", rdm, &types.EPAttr{TxCtxCount: MaxTxCtxCount}, nil, nil, true},
		{"tx ctx over", rdm, &types.EPAttr{TxCtxCount: MaxTxCtxCount + 1}, nil, nil, false},
		{"shared rx ctx", rdm, &types.EPAttr{RxCtxCount: SharedContext}, nil, nil, true},
		{"negative rx ctx", rdm, &types.EPAttr{RxCtxCount: -2}, nil, nil, false},
		{"tx caps", rdm, nil, &types.TxAttr{Caps: types.CapMsg | types.CapSend}, nil, true},
		{"tx caps dgram rma", dgram, nil, &types.TxAttr{Caps: types.CapRMA}, nil, false},
		{"tx msg order", rdm, nil, &types.TxAttr{MsgOrder: types.OrderSAS}, nil, true},
		{"tx msg order war", rdm, nil, &types.TxAttr{MsgOrder: types.OrderWAR}, nil, false},
		{"tx comp order", rdm, nil, &types.TxAttr{CompOrder: types.OrderStrict}, nil, true},
		{"inject", rdm, nil, &types.TxAttr{InjectSize: MaxInjectSize + 1}, nil, false},
		{"tx size", rdm, nil, &types.TxAttr{Size: TxSize + 1}, nil, false},
		{"tx iov", rdm, nil, &types.TxAttr{IOVLimit: MaxIOVLimit + 1}, nil, false},
		{"rma iov dgram", dgram, nil, &types.TxAttr{RMAIOVLimit: 1}, nil, false},
		{"rx caps", rdm, nil, nil, &types.RxAttr{Caps: types.CapDirectedRecv}, true},
		{"rx buffered", rdm, nil, nil, &types.RxAttr{TotalBufferedRecv: MaxBufferedRecv + 1}, false},
		{"rx size", rdm, nil, nil, &types.RxAttr{Size: RxSize + 1}, false},
		{"rx iov", rdm, nil, nil, &types.RxAttr{IOVLimit: MaxIOVLimit + 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.kind.VerifyAttr(tt.ep, tt.tx, tt.rx)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, types.ErrNoData)
			}
		})
	}
}

// TestBuildInfo_Defaults 测试无 hints 时的描述符
func TestBuildInfo_Defaults(t *testing.T) {
	k := NewKind(RDMProfile())

	infos, err := k.BuildInfo(src4, dest4, nil)
	require.NoError(t, err)
	require.Len(t, infos, 1)

	info := infos[0]
	assert.Equal(t, types.FormatSockaddrIn, info.AddrFormat)
	assert.Equal(t, src4, info.SrcAddr)
	assert.Equal(t, dest4, info.DestAddr)
	assert.Equal(t, types.EPRDM, info.EndpointType())
	assert.Equal(t, RDMProfile().Caps(), info.Caps)
	assert.Equal(t, types.ProtoSockTCP, info.EPAttr.Protocol)

	require.NotNil(t, info.DomainAttr)
	assert.Equal(t, types.DomainName, info.DomainAttr.Name)
	assert.True(t, info.DomainAttr.Domain.IsZero())

	require.NotNil(t, info.FabricAttr)
	assert.Equal(t, types.FabricName, info.FabricAttr.Name)
	assert.Equal(t, types.ProviderName, info.FabricAttr.ProvName)
	assert.Equal(t, types.ProviderVersion, info.FabricAttr.ProvVersion)
}

// TestBuildInfo_HintCaps 测试能力按 hints 收窄
func TestBuildInfo_HintCaps(t *testing.T) {
	p := RDMProfile()
	k := NewKind(p)

	hints := &types.Info{Caps: types.CapTagged | types.CapSend}
	infos, err := k.BuildInfo(src4, dest4, hints)
	require.NoError(t, err)

	info := infos[0]
	assert.Equal(t, p.SecondaryCaps|types.CapTagged|types.CapSend, info.Caps)
	assert.Equal(t, p.SecondaryCaps|types.CapTagged|types.CapSend, info.TxAttr.Caps)
	assert.False(t, info.RxAttr.Caps.Has(types.CapRMA))
	assert.Equal(t, types.CapTagged|types.CapSend, hints.Caps, "hints 不被修改")
}

// TestBuildInfo_HintAttrs 测试合并 hints 中的属性
func TestBuildInfo_HintAttrs(t *testing.T) {
	fabID := types.NewFabricID()
	domID := types.NewDomainID()
	hints := &types.Info{
		EPAttr:     &types.EPAttr{Type: types.EPMsg, TxCtxCount: 4, RxCtxCount: SharedContext},
		TxAttr:     &types.TxAttr{OpFlags: 1 << 3},
		RxAttr:     &types.RxAttr{OpFlags: 1 << 4},
		DomainAttr: &types.DomainAttr{Domain: domID},
		FabricAttr: &types.FabricAttr{Fabric: fabID},
	}

	infos, err := NewKind(MsgProfile()).BuildInfo(src4, dest4, hints)
	require.NoError(t, err)

	info := infos[0]
	assert.Equal(t, 4, info.EPAttr.TxCtxCount)
	assert.Equal(t, SharedContext, info.EPAttr.RxCtxCount)
	assert.Equal(t, uint64(1<<3), info.TxAttr.OpFlags)
	assert.Equal(t, uint64(1<<4), info.RxAttr.OpFlags)
	assert.Equal(t, domID, info.DomainAttr.Domain)
	assert.Equal(t, fabID, info.FabricAttr.Fabric)

	assert.NotSame(t, hints.EPAttr, info.EPAttr)
	assert.Equal(t, 4, hints.EPAttr.TxCtxCount)
}

// TestBuildInfo_Fresh 测试每次构建都是新对象
func TestBuildInfo_Fresh(t *testing.T) {
	k := NewKind(MsgProfile())
	a, err := k.BuildInfo(src4, dest4, nil)
	require.NoError(t, err)
	b, err := k.BuildInfo(src4, dest4, nil)
	require.NoError(t, err)

	assert.NotSame(t, a[0], b[0])
	assert.NotSame(t, a[0].EPAttr, b[0].EPAttr)

	a[0].EPAttr.TxCtxCount = 9
	assert.Equal(t, 1, b[0].EPAttr.TxCtxCount)
	assert.Equal(t, 1, k.Profile().EP.TxCtxCount)
}

// TestBuildInfo_Addresses 测试地址适用性
func TestBuildInfo_Addresses(t *testing.T) {
	msg := NewKind(MsgProfile())
	dgram := NewKind(DgramProfile())

	_, err := msg.BuildInfo(src6, dest4, nil)
	assert.ErrorIs(t, err, types.ErrNoData)

	_, err = msg.BuildInfo(src4, netip.MustParseAddrPort("[::1]:80"), nil)
	assert.ErrorIs(t, err, types.ErrNoData)

	infos, err := msg.BuildInfo(netip.AddrPort{}, dest4, nil)
	require.NoError(t, err)
	assert.False(t, infos[0].SrcAddr.IsValid())

	_, err = dgram.BuildInfo(netip.AddrPort{}, dest4, nil)
	assert.ErrorIs(t, err, types.ErrNoData, "dgram 需要源地址")

	mapped := netip.MustParseAddrPort("[::ffff:10.0.0.1]:0")
	infos, err = dgram.BuildInfo(mapped, netip.AddrPort{}, nil)
	require.NoError(t, err)
	assert.True(t, infos[0].SrcAddr.Addr().Is4())
	assert.Equal(t, types.ProtoSockUDP, infos[0].EPAttr.Protocol)
}

// TestBuildInfo_HintsOutsideKind 测试 hints 超出该类型时跳过
func TestBuildInfo_HintsOutsideKind(t *testing.T) {
	dgram := NewKind(DgramProfile())
	rdm := NewKind(RDMProfile())

	hints := &types.Info{Caps: types.CapRMA}
	_, err := dgram.BuildInfo(src4, dest4, hints)
	assert.ErrorIs(t, err, types.ErrNoData)
	_, err = rdm.BuildInfo(src4, dest4, hints)
	assert.NoError(t, err)

	hints = &types.Info{EPAttr: &types.EPAttr{Protocol: types.ProtoSockTCP}}
	_, err = dgram.BuildInfo(src4, dest4, hints)
	assert.ErrorIs(t, err, types.ErrNoData)
}

// TestModule 测试 Fx 模块
func TestModule(t *testing.T) {
	var table *KindTable
	app := fxtest.New(t,
		Module(),
		fx.Populate(&table),
	)
	defer app.RequireStart().RequireStop()

	require.NotNil(t, table)
	assert.Len(t, table.All(), 3)
}
