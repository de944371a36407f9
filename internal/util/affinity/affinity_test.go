package affinity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse 测试合法描述
func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want []int
	}{
		{"", nil},
		{"3", []int{3}},
		{"0-3", []int{0, 1, 2, 3}},
		{"0-7:2", []int{0, 2, 4, 6}},
		{"8,0-2,", []int{0, 1, 2, 8}},
		{" 1 , 1-2 ", []int{1, 2}},
	}
	for _, tt := range tests {
		got, err := Parse(tt.spec)
		require.NoError(t, err, tt.spec)
		assert.Equal(t, tt.want, got, tt.spec)
	}
}

// TestParse_Invalid 测试非法描述
func TestParse_Invalid(t *testing.T) {
	for _, spec := range []string{"a", "3-1", "1:2", "0-4:0", "-1", "0-4096", ",", "1-"} {
		_, err := Parse(spec)
		assert.True(t, errors.Is(err, ErrInvalidSpec), spec)
	}
}
