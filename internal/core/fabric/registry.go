package fabric

import (
	"sync"

	"github.com/dep2p/go-sockprov/internal/core/registry"
	pkgif "github.com/dep2p/go-sockprov/pkg/interfaces"
	"github.com/dep2p/go-sockprov/pkg/types"
)

// Registry 存活的 fabric 与 domain
type Registry struct {
	mu      sync.Mutex
	fabrics *registry.Set[types.FabricID, *Fabric]
	domains *registry.Set[types.DomainID, *Domain]
}

var _ pkgif.ObjectLookup = (*Registry)(nil)

// NewRegistry 创建对象注册表
func NewRegistry() *Registry {
	r := &Registry{}
	r.fabrics = registry.NewSet[types.FabricID, *Fabric](&r.mu)
	r.domains = registry.NewSet[types.DomainID, *Domain](&r.mu)
	return r
}

// ============================================================================
//                              Fabric
// ============================================================================

// AddFabric 注册 fabric
func (r *Registry) AddFabric(f *Fabric) {
	r.fabrics.Add(f.ID(), f)
}

// RemoveFabric 注销 fabric，不存在时为空操作
func (r *Registry) RemoveFabric(id types.FabricID) bool {
	return r.fabrics.Remove(id)
}

// HasFabric 检查 fabric 是否存活
func (r *Registry) HasFabric(id types.FabricID) bool {
	return r.fabrics.Contains(id)
}

// Fabric 按身份获取 fabric
func (r *Registry) Fabric(id types.FabricID) (*Fabric, bool) {
	return r.fabrics.Get(id)
}

// FirstFabric 返回最早注册且仍存活的 fabric
func (r *Registry) FirstFabric() (*Fabric, bool) {
	return r.fabrics.First()
}

// Fabrics 返回存活 fabric 的快照
func (r *Registry) Fabrics() []*Fabric {
	return r.fabrics.Snapshot()
}

// ============================================================================
//                              Domain
// ============================================================================

// AddDomain 注册 domain
func (r *Registry) AddDomain(d *Domain) {
	r.domains.Add(d.ID(), d)
}

// RemoveDomain 注销 domain，不存在时为空操作
func (r *Registry) RemoveDomain(id types.DomainID) bool {
	return r.domains.Remove(id)
}

// HasDomain 检查 domain 是否存活
func (r *Registry) HasDomain(id types.DomainID) bool {
	return r.domains.Contains(id)
}

// Domain 按身份获取 domain
func (r *Registry) Domain(id types.DomainID) (*Domain, bool) {
	return r.domains.Get(id)
}

// FirstDomain 返回最早注册且仍存活的 domain
func (r *Registry) FirstDomain() (*Domain, bool) {
	return r.domains.First()
}

// Domains 返回存活 domain 的快照
func (r *Registry) Domains() []*Domain {
	return r.domains.Snapshot()
}
