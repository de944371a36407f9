package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFabricID 测试 FabricID 生成与零值
func TestFabricID(t *testing.T) {
	var zero FabricID
	assert.True(t, zero.IsZero())

	a, b := NewFabricID(), NewFabricID()
	assert.False(t, a.IsZero())
	assert.NotEqual(t, a, b)
	assert.Len(t, a.String(), 36)
}

// TestDomainID 测试 DomainID 生成与零值
func TestDomainID(t *testing.T) {
	var zero DomainID
	assert.True(t, zero.IsZero())

	id := NewDomainID()
	assert.False(t, id.IsZero())
	assert.Equal(t, id.String(), id.String())
}
