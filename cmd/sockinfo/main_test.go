package main

import (
	"bytes"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-sockprov/pkg/types"
)

// TestBuildHints 测试命令行参数转换为 hints
func TestBuildHints(t *testing.T) {
	f, err := parseFlags([]string{"-n", "10.0.0.2", "-s", "7471"})
	require.NoError(t, err)
	hints, err := f.buildHints()
	require.NoError(t, err)
	assert.Nil(t, hints, "无约束时不传 hints")

	f, err = parseFlags([]string{"-t", "rdm", "-c", "msg,tagged", "-source", "-numeric"})
	require.NoError(t, err)
	hints, err = f.buildHints()
	require.NoError(t, err)
	require.NotNil(t, hints)
	assert.Equal(t, types.EPRDM, hints.EndpointType())
	assert.Equal(t, types.CapMsg|types.CapTagged, hints.Caps)
	assert.True(t, f.getInfoFlags().Has(types.FlagSource))
	assert.True(t, f.getInfoFlags().Has(types.FlagNumericHost))

	f, err = parseFlags([]string{"-t", "stream"})
	require.NoError(t, err)
	_, err = f.buildHints()
	assert.ErrorIs(t, err, types.ErrInvalidArgument)

	f, err = parseFlags([]string{"-c", "bogus"})
	require.NoError(t, err)
	_, err = f.buildHints()
	assert.ErrorIs(t, err, types.ErrInvalidArgument)
}

// TestPrintInfo 测试描述符输出
func TestPrintInfo(t *testing.T) {
	info := &types.Info{
		AddrFormat: types.FormatSockaddrIn,
		SrcAddr:    netip.MustParseAddrPort("10.1.1.1:0"),
		EPAttr:     &types.EPAttr{Type: types.EPMsg, Protocol: types.ProtoSockTCP},
		FabricAttr: &types.FabricAttr{Name: types.FabricName, ProvName: types.ProviderName},
		DomainAttr: &types.DomainAttr{Name: types.DomainName},
	}

	var buf bytes.Buffer
	printInfo(&buf, info)
	assert.Contains(t, buf.String(), "provider: sockets")
	assert.Contains(t, buf.String(), "fabric: IP")
	assert.Contains(t, buf.String(), "type: "+types.EPMsg.String())

	buf.Reset()
	printInfoVerbose(&buf, info)
	assert.Contains(t, buf.String(), "src_addr: 10.1.1.1:0")
	assert.Contains(t, buf.String(), "dest_addr: (none)")
	assert.Contains(t, buf.String(), "fabric_attr:")
}

// TestRunVersion 测试版本输出
func TestRunVersion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run([]string{"-version"}, &buf))
	assert.Contains(t, buf.String(), "sockprov")
}
