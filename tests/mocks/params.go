package mocks

import (
	"strconv"
	"sync"

	"github.com/dep2p/go-sockprov/pkg/interfaces"
)

// MockParamSource 模拟 ParamSource 接口实现
type MockParamSource struct {
	Values map[string]string

	// 可覆盖的方法
	GetIntFunc    func(name string) (int, bool, error)
	GetStringFunc func(name string) (string, bool, error)

	// 调用记录
	mu    sync.Mutex
	Reads []string
}

var _ interfaces.ParamSource = (*MockParamSource)(nil)

// NewMockParamSource 创建以 values 应答的 Mock
func NewMockParamSource(values map[string]string) *MockParamSource {
	return &MockParamSource{Values: values}
}

func (m *MockParamSource) record(name string) {
	m.mu.Lock()
	m.Reads = append(m.Reads, name)
	m.mu.Unlock()
}

// ReadCount 返回读取次数
func (m *MockParamSource) ReadCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Reads)
}

// GetInt 读取整数参数
func (m *MockParamSource) GetInt(name string) (int, bool, error) {
	m.record(name)
	if m.GetIntFunc != nil {
		return m.GetIntFunc(name)
	}
	v, ok := m.Values[name]
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.Atoi(v)
	return n, true, err
}

// GetString 读取字符串参数
func (m *MockParamSource) GetString(name string) (string, bool, error) {
	m.record(name)
	if m.GetStringFunc != nil {
		return m.GetStringFunc(name)
	}
	v, ok := m.Values[name]
	return v, ok, nil
}
