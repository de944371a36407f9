package resolver

import (
	"go.uber.org/fx"

	"github.com/dep2p/go-sockprov/config"
	pkgif "github.com/dep2p/go-sockprov/pkg/interfaces"
)

// ConfigFromUnified 从统一配置提取解析配置
func ConfigFromUnified(cfg *config.Config) config.ResolverConfig {
	if cfg == nil {
		return config.DefaultResolverConfig()
	}
	return cfg.Resolver
}

// Params 解析模块依赖
type Params struct {
	fx.In

	UnifiedCfg *config.Config     `optional:"true"`
	Host       pkgif.HostResolver `optional:"true"`
	Hostname   HostnameFunc       `optional:"true"`
}

// NewFromParams 从 Fx 参数创建解析器
func NewFromParams(p Params) (*Resolver, error) {
	return New(ConfigFromUnified(p.UnifiedCfg), p.Host, WithHostname(p.Hostname))
}

// Module 返回解析模块的 Fx 选项
func Module() fx.Option {
	return fx.Module("resolver",
		fx.Provide(NewFromParams),
	)
}
