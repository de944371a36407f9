package fabric

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/dep2p/go-sockprov/internal/core/metrics"
	"github.com/dep2p/go-sockprov/internal/core/params"
	"github.com/dep2p/go-sockprov/internal/util/logger"
	"github.com/dep2p/go-sockprov/pkg/types"
)

var log = logger.Logger("fabric")

// Manager fabric 生命周期管理器
type Manager struct {
	registry *Registry
	loader   *params.Loader
	metrics  *metrics.Metrics
}

// NewManager 创建生命周期管理器
//
// metrics 可以为 nil。
func NewManager(reg *Registry, loader *params.Loader, m *metrics.Metrics) *Manager {
	if reg == nil {
		reg = NewRegistry()
	}
	return &Manager{
		registry: reg,
		loader:   loader,
		metrics:  m,
	}
}

// Registry 返回对象注册表
func (m *Manager) Registry() *Registry {
	return m.registry
}

// Params 返回已加载的可调参数
//
// 尚未创建过 fabric 时触发加载。
func (m *Manager) Params() *params.Params {
	p, _ := m.loader.Load()
	return p
}

// CreateFabric 创建并注册 fabric
//
// attr 为 nil 或名称不是 types.FabricName 时返回 types.ErrInvalidArgument。
func (m *Manager) CreateFabric(attr *types.FabricAttr, context any) (*Fabric, error) {
	if attr == nil {
		return nil, fmt.Errorf("fabric attr required: %w", types.ErrInvalidArgument)
	}
	if attr.Name != types.FabricName {
		return nil, fmt.Errorf("fabric name %q: %w", attr.Name, types.ErrInvalidArgument)
	}

	f := newFabric(m, context)

	if _, err := m.loader.Load(); err != nil {
		log.Debug("参数加载报告错误", "error", err)
	}

	m.registry.AddFabric(f)
	m.metrics.FabricOpened()

	log.Debug("fabric 已创建", "fabric", f.id)
	return f, nil
}

// OpenDomain 在 fabric 上打开 domain
func (m *Manager) OpenDomain(fab *Fabric, attr *types.DomainAttr, context any) (*Domain, error) {
	if fab == nil || !m.registry.HasFabric(fab.ID()) {
		return nil, fmt.Errorf("fabric not open: %w", types.ErrInvalidArgument)
	}
	if err := VerifyDomainAttr(attr); err != nil {
		return nil, err
	}
	if err := fab.acquire(); err != nil {
		return nil, err
	}

	d := &Domain{
		id:      types.NewDomainID(),
		context: context,
		fabric:  fab,
		attr:    mergeDomainAttr(attr),
	}
	d.attr.Domain = d.id

	m.registry.AddDomain(d)
	m.metrics.DomainOpened()

	log.Debug("domain 已打开", "domain", d.id, "fabric", fab.id)
	return d, nil
}

// Fabrics 返回存活 fabric 的快照
func (m *Manager) Fabrics() []*Fabric {
	return m.registry.Fabrics()
}

// Domains 返回存活 domain 的快照
func (m *Manager) Domains() []*Domain {
	return m.registry.Domains()
}

// Close 关闭所有空闲对象
//
// 先关闭 domain 再关闭 fabric；忙的对象保持注册，错误合并返回。
func (m *Manager) Close() error {
	var errs error
	for _, d := range m.registry.Domains() {
		if err := d.Close(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("close domain %s: %w", d.id, err))
		}
	}
	for _, f := range m.registry.Fabrics() {
		if err := f.Close(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("close fabric %s: %w", f.id, err))
		}
	}
	return errs
}

func (m *Manager) fabricClosed(f *Fabric) {
	if m.registry.RemoveFabric(f.id) {
		m.metrics.FabricClosed()
	}
	log.Debug("fabric 已关闭", "fabric", f.id)
}

func (m *Manager) domainClosed(d *Domain) {
	if m.registry.RemoveDomain(d.id) {
		m.metrics.DomainClosed()
	}
	log.Debug("domain 已关闭", "domain", d.id)
}
