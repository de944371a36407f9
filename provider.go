package sockprov

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/multierr"

	"github.com/dep2p/go-sockprov/internal/core/discovery"
	"github.com/dep2p/go-sockprov/internal/core/fabric"
	"github.com/dep2p/go-sockprov/internal/core/metrics"
	"github.com/dep2p/go-sockprov/internal/core/params"
	"github.com/dep2p/go-sockprov/internal/core/resolver"
	"github.com/dep2p/go-sockprov/internal/util/logger"
	"github.com/dep2p/go-sockprov/pkg/types"
)

var log = logger.Logger("sockprov")

// Params 已加载的可调参数
type Params = params.Params

// ════════════════════════════════════════════════════════════════════════════
//                              Provider 结构
// ════════════════════════════════════════════════════════════════════════════

// Provider sockets provider 实例
//
// 每个 Provider 拥有独立的 fabric/domain 注册表与参数加载器。
// 所有方法可并发调用。
type Provider struct {
	app      *fx.App
	gatherer prometheus.Gatherer

	// 由 Fx 注入
	discovery *discovery.Orchestrator
	manager   *fabric.Manager
	resolver  *resolver.Resolver
	metrics   *metrics.Metrics

	closed atomic.Bool
}

// New 创建 provider
//
// 示例：
//
//	prov, err := sockprov.New(
//	    sockprov.WithParamSource(params.MapSource{"def_cq_sz": "1024"}),
//	)
func New(opts ...Option) (*Provider, error) {
	o := newOptions()
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, fmt.Errorf("apply option: %w", err)
		}
	}
	if o.registerer == nil {
		o.registerer = prometheus.NewRegistry()
	}

	p := &Provider{}
	if g, ok := o.registerer.(prometheus.Gatherer); ok {
		p.gatherer = g
	}

	app, err := buildFxApp(o, p)
	if err != nil {
		return nil, fmt.Errorf("build fx app: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), app.StartTimeout())
	defer cancel()
	if err := app.Start(ctx); err != nil {
		return nil, fmt.Errorf("start provider: %w", err)
	}
	p.app = app

	log.Debug("provider 已创建",
		"fabric", types.FabricName,
		"version", types.FormatVersion(types.ProviderVersion),
		"metrics", p.metrics != nil)
	return p, nil
}

// ════════════════════════════════════════════════════════════════════════════
//                              发现
// ════════════════════════════════════════════════════════════════════════════

// GetInfo 返回与寻址信息和 hints 匹配的 info 描述符
//
// hints 只读；返回的描述符由调用者独占。
// 没有任何匹配时返回 ErrNoData。
func (p *Provider) GetInfo(ctx context.Context, node, service string, flags GetInfoFlags, hints *Info) ([]*Info, error) {
	if p.closed.Load() {
		return nil, ErrProviderClosed
	}
	return p.discovery.GetInfo(ctx, node, service, flags, hints)
}

// ════════════════════════════════════════════════════════════════════════════
//                              对象生命周期
// ════════════════════════════════════════════════════════════════════════════

// Fabric 创建并注册 fabric
//
// attr 通常取自 GetInfo 结果；名称必须是 types.FabricName。
// 第一次创建时加载可调参数。
func (p *Provider) Fabric(attr *FabricAttr, context any) (*Fabric, error) {
	if p.closed.Load() {
		return nil, ErrProviderClosed
	}
	return p.manager.CreateFabric(attr, context)
}

// Domain 在 fabric 上打开 domain
func (p *Provider) Domain(fab *Fabric, attr *DomainAttr, context any) (*Domain, error) {
	if p.closed.Load() {
		return nil, ErrProviderClosed
	}
	return p.manager.OpenDomain(fab, attr, context)
}

// Fabrics 返回已注册的 fabric（按创建顺序）
func (p *Provider) Fabrics() []*Fabric {
	return p.manager.Fabrics()
}

// Domains 返回已注册的 domain（按创建顺序）
func (p *Provider) Domains() []*Domain {
	return p.manager.Domains()
}

// Params 返回已加载的可调参数
func (p *Provider) Params() *Params {
	return p.manager.Params()
}

// ════════════════════════════════════════════════════════════════════════════
//                              其他
// ════════════════════════════════════════════════════════════════════════════

// Hostname 返回 provider 使用的本机主机名
func (p *Provider) Hostname() (string, error) {
	return p.resolver.Hostname()
}

// Metrics 返回指标采集器
//
// 通过 WithRegisterer 传入的注册器不是 Gatherer 时返回 nil。
func (p *Provider) Metrics() prometheus.Gatherer {
	return p.gatherer
}

// Close 关闭 provider
//
// 关闭全部空闲的 domain 和 fabric；仍被引用的对象导致 ErrBusy，
// 其余对象照常关闭，错误合并返回。
func (p *Provider) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return ErrProviderClosed
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.app.StopTimeout())
	defer cancel()

	var err error
	if stopErr := p.app.Stop(ctx); stopErr != nil {
		err = multierr.Append(err, fmt.Errorf("stop provider: %w", stopErr))
	}
	if n := len(p.manager.Fabrics()); n > 0 {
		log.Warn("provider 关闭时仍有 fabric 存活", "fabrics", n)
	}
	return err
}
