package discovery

import (
	"github.com/benbjohnson/clock"
	"go.uber.org/fx"

	"github.com/dep2p/go-sockprov/internal/core/endpoint"
	"github.com/dep2p/go-sockprov/internal/core/metrics"
	"github.com/dep2p/go-sockprov/internal/core/resolver"
	"github.com/dep2p/go-sockprov/internal/core/verifier"
)

// Params 发现模块依赖
type Params struct {
	fx.In

	Verifier *verifier.Verifier
	Resolver *resolver.Resolver
	Kinds    *endpoint.KindTable
	Clock    clock.Clock      `optional:"true"`
	Metrics  *metrics.Metrics `optional:"true"`
}

// NewFromParams 从 Fx 参数创建发现流程
func NewFromParams(p Params) *Orchestrator {
	return New(p.Verifier, p.Resolver, p.Kinds,
		WithClock(p.Clock),
		WithMetrics(p.Metrics),
	)
}

// Module 返回发现模块的 Fx 选项
func Module() fx.Option {
	return fx.Module("discovery",
		fx.Provide(NewFromParams),
	)
}
