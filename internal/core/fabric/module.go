package fabric

import (
	"context"

	"go.uber.org/fx"

	"github.com/dep2p/go-sockprov/internal/core/metrics"
	"github.com/dep2p/go-sockprov/internal/core/params"
	pkgif "github.com/dep2p/go-sockprov/pkg/interfaces"
)

// Params fabric 模块依赖
type Params struct {
	fx.In

	Loader  *params.Loader
	Metrics *metrics.Metrics `optional:"true"`
}

// NewManagerFromParams 从 Fx 参数创建管理器
func NewManagerFromParams(p Params) *Manager {
	return NewManager(NewRegistry(), p.Loader, p.Metrics)
}

// Module 返回 fabric 模块的 Fx 选项
//
// 同时以 interfaces.ObjectLookup 和 interfaces.DomainAttrVerifier 提供注册表与属性校验器。
func Module() fx.Option {
	return fx.Module("fabric",
		fx.Provide(
			NewManagerFromParams,
			func(m *Manager) *Registry { return m.Registry() },
			fx.Annotate(
				func(r *Registry) *Registry { return r },
				fx.As(new(pkgif.ObjectLookup)),
			),
			fx.Annotate(
				func() AttrVerifier { return AttrVerifier{} },
				fx.As(new(pkgif.DomainAttrVerifier)),
			),
		),
		fx.Invoke(registerLifecycle),
	)
}

func registerLifecycle(lc fx.Lifecycle, m *Manager) {
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return m.Close()
		},
	})
}
