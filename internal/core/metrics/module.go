package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/dep2p/go-sockprov/config"
)

// ConfigFromUnified 从统一配置提取指标配置
func ConfigFromUnified(cfg *config.Config) config.MetricsConfig {
	if cfg == nil {
		return config.DefaultMetricsConfig()
	}
	return cfg.Metrics
}

// Params 指标模块依赖
type Params struct {
	fx.In

	UnifiedCfg *config.Config       `optional:"true"`
	Registerer prometheus.Registerer `optional:"true"`
}

// NewFromParams 从 Fx 参数创建指标
//
// 指标关闭时返回 nil；未提供 Registerer 时使用独立的 Registry，
// 同一进程中的多个 provider 不会重复注册。
func NewFromParams(p Params) (*Metrics, error) {
	cfg := ConfigFromUnified(p.UnifiedCfg)
	if !cfg.Enabled {
		return nil, nil
	}
	reg := p.Registerer
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	return New(cfg.Namespace, reg)
}

// Module 返回指标模块的 Fx 选项
func Module() fx.Option {
	return fx.Module("metrics",
		fx.Provide(NewFromParams),
	)
}
