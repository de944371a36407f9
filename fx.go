package sockprov

import (
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/dep2p/go-sockprov/internal/core/discovery"
	"github.com/dep2p/go-sockprov/internal/core/endpoint"
	"github.com/dep2p/go-sockprov/internal/core/fabric"
	"github.com/dep2p/go-sockprov/internal/core/metrics"
	"github.com/dep2p/go-sockprov/internal/core/params"
	"github.com/dep2p/go-sockprov/internal/core/resolver"
	"github.com/dep2p/go-sockprov/internal/core/verifier"
	"github.com/dep2p/go-sockprov/internal/util/logger"
	pkgif "github.com/dep2p/go-sockprov/pkg/interfaces"
)

var fxLogger = logger.Logger("sockprov/fx")

// buildFxApp 构建 Fx 应用
//
// 加载顺序（按依赖）：
//  1. 配置与外部注入：Config、ParamSource、HostResolver、Registerer、Clock
//  2. 基础模块：params → metrics → endpoint
//  3. 对象管理：fabric（提供 ObjectLookup 与 DomainAttrVerifier）
//  4. 协商：verifier → resolver → discovery
func buildFxApp(o *options, p *Provider) (*fx.App, error) {
	// ════════════════════════════════════════════════════════════════════════
	// 1. 配置验证（前置）
	// ════════════════════════════════════════════════════════════════════════
	if err := o.config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// ════════════════════════════════════════════════════════════════════════
	// 2. 配置与外部注入
	// ════════════════════════════════════════════════════════════════════════
	modules := []fx.Option{
		fx.Supply(o.config),
		fx.Provide(func() prometheus.Registerer { return o.registerer }),
	}
	if o.paramSource != nil {
		modules = append(modules, fx.Provide(func() pkgif.ParamSource { return o.paramSource }))
	}
	if o.hostResolver != nil {
		modules = append(modules, fx.Provide(func() pkgif.HostResolver { return o.hostResolver }))
	}
	if o.hostname != nil {
		modules = append(modules, fx.Provide(func() resolver.HostnameFunc { return o.hostname }))
	}
	if o.clock != nil {
		modules = append(modules, fx.Provide(func() clock.Clock { return o.clock }))
	}

	// ════════════════════════════════════════════════════════════════════════
	// 3. 内部模块
	// ════════════════════════════════════════════════════════════════════════
	modules = append(modules,
		params.Module(),
		metrics.Module(),
		endpoint.Module(),
		fabric.Module(),
		verifier.Module(),
		resolver.Module(),
		discovery.Module(),
	)

	// ════════════════════════════════════════════════════════════════════════
	// 4. 用户扩展
	// ════════════════════════════════════════════════════════════════════════
	if len(o.fxOptions) > 0 {
		modules = append(modules, o.fxOptions...)
	}

	// ════════════════════════════════════════════════════════════════════════
	// 5. Provider 组件注入
	// ════════════════════════════════════════════════════════════════════════
	modules = append(modules, fx.Invoke(injectProviderComponents(p)))

	// ════════════════════════════════════════════════════════════════════════
	// 6. Fx 配置
	// ════════════════════════════════════════════════════════════════════════
	modules = append(modules,
		// 禁用 Fx 日志输出（避免干扰用户日志）
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: zap.NewNop()}
		}),
	)

	fxLogger.Debug("组装 provider 模块", "modules", len(modules))
	return fx.New(modules...), nil
}

// providerInjectParams Provider 组件注入参数
type providerInjectParams struct {
	fx.In

	Discovery *discovery.Orchestrator
	Manager   *fabric.Manager
	Resolver  *resolver.Resolver
	Metrics   *metrics.Metrics `optional:"true"`
}

// injectProviderComponents 创建 Provider 组件注入函数
func injectProviderComponents(p *Provider) interface{} {
	return func(params providerInjectParams) {
		p.discovery = params.Discovery
		p.manager = params.Manager
		p.resolver = params.Resolver
		p.metrics = params.Metrics
	}
}
