package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEndpointType_String 测试端点类型字符串
func TestEndpointType_String(t *testing.T) {
	assert.Equal(t, "unspec", EPUnspec.String())
	assert.Equal(t, "msg", EPMsg.String())
	assert.Equal(t, "dgram", EPDgram.String())
	assert.Equal(t, "rdm", EPRDM.String())
	assert.Equal(t, "ep_type(42)", EndpointType(42).String())
}

// TestParseEndpointType 测试端点类型解析
func TestParseEndpointType(t *testing.T) {
	tests := []struct {
		in   string
		want EndpointType
	}{
		{"", EPUnspec},
		{"msg", EPMsg},
		{"FI_EP_DGRAM", EPDgram},
		{" RDM ", EPRDM},
	}
	for _, tt := range tests {
		got, err := ParseEndpointType(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseEndpointType("sock_stream")
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

// TestGetInfoFlags_Has 测试标志判定
func TestGetInfoFlags_Has(t *testing.T) {
	f := FlagSource
	assert.True(t, f.Has(FlagSource))
	assert.False(t, f.Has(FlagNumericHost))
	assert.True(t, (f | FlagNumericHost).Has(FlagNumericHost))
}

// TestOrder_Subset 测试顺序位子集
func TestOrder_Subset(t *testing.T) {
	assert.True(t, OrderSAS.Subset(OrderStrict))
	assert.True(t, OrderNone.Subset(OrderNone))
	assert.False(t, OrderData.Subset(OrderStrict))
}
