package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCaps_Subset 测试能力子集判定
func TestCaps_Subset(t *testing.T) {
	mask := CapMsg | CapSend | CapRecv

	assert.True(t, Caps(0).Subset(mask))
	assert.True(t, CapMsg.Subset(mask))
	assert.True(t, mask.Subset(mask))
	assert.False(t, (CapMsg | CapRMA).Subset(mask))
	assert.False(t, CapAtomic.Subset(0))
}

// TestCaps_String 测试能力字符串
func TestCaps_String(t *testing.T) {
	assert.Equal(t, "0", Caps(0).String())
	assert.Equal(t, "FI_MSG | FI_RMA", (CapMsg | CapRMA).String())
}

// TestParseCaps 测试能力解析
func TestParseCaps(t *testing.T) {
	c, err := ParseCaps("FI_MSG|rma, tagged")
	require.NoError(t, err)
	assert.Equal(t, CapMsg|CapRMA|CapTagged, c)

	c, err = ParseCaps("")
	require.NoError(t, err)
	assert.Equal(t, Caps(0), c)

	_, err = ParseCaps("msg|teleport")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}
