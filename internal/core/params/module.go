package params

import (
	"go.uber.org/fx"

	"github.com/dep2p/go-sockprov/config"
	pkgif "github.com/dep2p/go-sockprov/pkg/interfaces"
)

// ConfigFromUnified 从统一配置提取参数配置
func ConfigFromUnified(cfg *config.Config) config.ParamsConfig {
	if cfg == nil {
		return config.DefaultParamsConfig()
	}
	return cfg.Params
}

// ModuleParams 参数模块依赖
type ModuleParams struct {
	fx.In

	UnifiedCfg *config.Config     `optional:"true"`
	Source     pkgif.ParamSource `optional:"true"`
}

// NewLoaderFromParams 从 Fx 参数创建加载器
func NewLoaderFromParams(p ModuleParams) *Loader {
	return NewLoader(ConfigFromUnified(p.UnifiedCfg), p.Source)
}

// Module 返回参数模块的 Fx 选项
func Module() fx.Option {
	return fx.Module("params",
		fx.Provide(NewLoaderFromParams),
	)
}
