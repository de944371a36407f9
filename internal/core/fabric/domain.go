package fabric

import (
	"sync"

	"github.com/dep2p/go-sockprov/pkg/types"
)

// Domain 一个已打开的 domain，持有所属 fabric 的引用
type Domain struct {
	refCount

	id      types.DomainID
	context any
	fabric  *Fabric
	attr    types.DomainAttr

	mu     sync.Mutex
	closed bool
}

// ID 返回 domain 身份
func (d *Domain) ID() types.DomainID {
	return d.id
}

// Context 返回打开时传入的调用者上下文
func (d *Domain) Context() any {
	return d.context
}

// Fabric 返回所属 fabric
func (d *Domain) Fabric() *Fabric {
	return d.fabric
}

// Attr 返回协商后的 domain 属性
func (d *Domain) Attr() *types.DomainAttr {
	attr := d.attr
	return &attr
}

// Close 关闭 domain 并释放 fabric 引用
func (d *Domain) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return types.ErrClosed
	}
	if d.Refs() != 0 {
		log.Debug("domain 忙，拒绝关闭", "domain", d.id, "refs", d.Refs())
		return types.ErrBusy
	}

	d.closed = true
	d.fabric.mgr.domainClosed(d)
	d.fabric.Unref()
	return nil
}
