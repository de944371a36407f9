package fabric

import (
	"fmt"
	"sync"

	"github.com/dep2p/go-sockprov/pkg/types"
)

// ServiceTable fabric 内的服务号占用表
type ServiceTable struct {
	mu       sync.Mutex
	services map[int]struct{}
}

// NewServiceTable 创建空的服务表
func NewServiceTable() *ServiceTable {
	return &ServiceTable{services: make(map[int]struct{})}
}

// IsFree 服务号是否未被占用
func (t *ServiceTable) IsFree(service int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, taken := t.services[service]
	return !taken
}

// Add 记录服务号
func (t *ServiceTable) Add(service int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.services[service] = struct{}{}
}

// Remove 释放服务号，不存在时为空操作
func (t *ServiceTable) Remove(service int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.services, service)
}

// Reserve 原子地检查并占用服务号
func (t *ServiceTable) Reserve(service int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, taken := t.services[service]; taken {
		return fmt.Errorf("service %d: %w", service, types.ErrBusy)
	}
	t.services[service] = struct{}{}
	return nil
}

// Len 返回已占用服务号数量
func (t *ServiceTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.services)
}
