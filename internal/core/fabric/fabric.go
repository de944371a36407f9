package fabric

import (
	"sync"

	"github.com/dep2p/go-sockprov/pkg/types"
)

// Fabric 一个已打开的 fabric
type Fabric struct {
	refCount

	id      types.FabricID
	context any
	mgr     *Manager

	mu       sync.Mutex
	closed   bool
	services *ServiceTable
}

func newFabric(mgr *Manager, context any) *Fabric {
	return &Fabric{
		id:       types.NewFabricID(),
		context:  context,
		mgr:      mgr,
		services: NewServiceTable(),
	}
}

// ID 返回 fabric 身份
func (f *Fabric) ID() types.FabricID {
	return f.id
}

// Context 返回创建时传入的调用者上下文
func (f *Fabric) Context() any {
	return f.context
}

// Attr 返回 fabric 属性
func (f *Fabric) Attr() *types.FabricAttr {
	return &types.FabricAttr{
		Fabric:      f.id,
		Name:        types.FabricName,
		ProvName:    types.ProviderName,
		ProvVersion: types.ProviderVersion,
	}
}

// Services 返回服务表
func (f *Fabric) Services() *ServiceTable {
	return f.services
}

// CheckService 服务号是否可以使用
func (f *Fabric) CheckService(service int) bool {
	return f.services.IsFree(service)
}

// AddService 记录服务号
func (f *Fabric) AddService(service int) {
	f.services.Add(service)
}

// RemoveService 释放服务号
func (f *Fabric) RemoveService(service int) {
	f.services.Remove(service)
}

// Closed 是否已关闭
func (f *Fabric) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// Close 关闭 fabric
//
// 引用计数非零时返回 types.ErrBusy，fabric 保持注册。
func (f *Fabric) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return types.ErrClosed
	}
	if f.Refs() != 0 {
		log.Debug("fabric 忙，拒绝关闭", "fabric", f.id, "refs", f.Refs())
		return types.ErrBusy
	}

	f.closed = true
	f.mgr.fabricClosed(f)
	return nil
}

// acquire 在 fabric 存活时增加引用
func (f *Fabric) acquire() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return types.ErrClosed
	}
	f.Ref()
	return nil
}
