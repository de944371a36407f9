package types

import (
	"errors"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInfo_Clone 测试深拷贝
func TestInfo_Clone(t *testing.T) {
	var nilInfo *Info
	assert.Nil(t, nilInfo.Clone())

	orig := &Info{
		Caps:       CapMsg,
		SrcAddr:    netip.MustParseAddrPort("10.0.0.1:0"),
		EPAttr:     &EPAttr{Type: EPRDM},
		TxAttr:     &TxAttr{Size: 64},
		FabricAttr: &FabricAttr{Name: FabricName},
	}
	c := orig.Clone()
	require.NotNil(t, c)

	c.EPAttr.Type = EPDgram
	c.TxAttr.Size = 128
	c.FabricAttr.Name = "other"

	assert.Equal(t, EPRDM, orig.EPAttr.Type)
	assert.Equal(t, uint64(64), orig.TxAttr.Size)
	assert.Equal(t, FabricName, orig.FabricAttr.Name)
	assert.Nil(t, c.RxAttr)
	assert.Equal(t, orig.SrcAddr, c.SrcAddr)
}

// TestInfo_EndpointType 测试 hints 端点类型读取
func TestInfo_EndpointType(t *testing.T) {
	var hints *Info
	assert.Equal(t, EPUnspec, hints.EndpointType())
	assert.Equal(t, EPUnspec, (&Info{}).EndpointType())
	assert.Equal(t, EPDgram, (&Info{EPAttr: &EPAttr{Type: EPDgram}}).EndpointType())
}

// TestAddrLen 测试套接字地址长度
func TestAddrLen(t *testing.T) {
	assert.Equal(t, 0, AddrLen(netip.AddrPort{}))
	assert.Equal(t, SockaddrInLen, AddrLen(netip.MustParseAddrPort("192.168.1.1:80")))
	assert.Equal(t, SockaddrInLen, AddrLen(netip.MustParseAddrPort("[::ffff:192.168.1.1]:80")))
	assert.Equal(t, SockaddrIn6Len, AddrLen(netip.MustParseAddrPort("[fe80::1]:80")))

	assert.True(t, IsSockaddrIn(netip.MustParseAddrPort("127.0.0.1:1")))
	assert.False(t, IsSockaddrIn(netip.MustParseAddrPort("[::1]:1")))

	mapped := ToSockaddrIn(netip.MustParseAddrPort("[::ffff:10.1.2.3]:7"))
	assert.True(t, mapped.Addr().Is4())
	assert.Equal(t, uint16(7), mapped.Port())
}

// TestErrors 测试错误分类
func TestErrors(t *testing.T) {
	assert.True(t, errors.Is(ErrClosed, ErrInvalidArgument))
	assert.False(t, errors.Is(ErrBusy, ErrInvalidArgument))

	assert.Nil(t, NewOSError("hostname", nil))

	inner := errors.New("connection refused")
	err := NewOSError("dial udp4", inner)
	var osErr *OSError
	require.True(t, errors.As(err, &osErr))
	assert.Equal(t, "dial udp4", osErr.Op)
	assert.True(t, errors.Is(err, inner))
	assert.Contains(t, err.Error(), "connection refused")
}

// TestVersion 测试版本编码
func TestVersion(t *testing.T) {
	v := Version(2, 7)
	assert.Equal(t, uint32(2), VersionMajor(v))
	assert.Equal(t, uint32(7), VersionMinor(v))
	assert.Equal(t, "2.7", FormatVersion(v))
	assert.Equal(t, Version(MajorVersion, MinorVersion), ProviderVersion)
}
