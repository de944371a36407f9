package sockprov

import (
	"errors"
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/dep2p/go-sockprov/config"
	pkgif "github.com/dep2p/go-sockprov/pkg/interfaces"
)

// Option 用户配置选项函数
type Option func(*options) error

// options 内部选项结构
type options struct {
	// 统一配置
	config *config.Config

	// 可调参数来源，nil 时读取环境变量
	paramSource pkgif.ParamSource

	// 主机名解析，nil 时按配置选择系统解析器或 DNS
	hostResolver pkgif.HostResolver

	// 本机主机名来源
	hostname func() (string, error)

	// 指标注册器，nil 时使用独立的 Registry
	registerer prometheus.Registerer

	// 计时时钟
	clock clock.Clock

	// 用户自定义 Fx 选项
	fxOptions []fx.Option
}

// newOptions 创建默认选项
func newOptions() *options {
	return &options{
		config: config.NewConfig(),
	}
}

// WithConfig 使用指定的统一配置
//
// 配置会被复制，调用后修改 cfg 不影响 provider。
func WithConfig(cfg *config.Config) Option {
	return func(o *options) error {
		if cfg == nil {
			return errors.New("config is nil")
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		o.config = config.CloneConfig(cfg)
		return nil
	}
}

// WithConfigJSON 从 JSON 数据加载统一配置
func WithConfigJSON(data []byte) Option {
	return func(o *options) error {
		cfg, err := config.FromJSON(data)
		if err != nil {
			return err
		}
		o.config = cfg
		return nil
	}
}

// WithParamSource 指定可调参数来源
func WithParamSource(src pkgif.ParamSource) Option {
	return func(o *options) error {
		o.paramSource = src
		return nil
	}
}

// WithHostResolver 指定主机名解析器
func WithHostResolver(r pkgif.HostResolver) Option {
	return func(o *options) error {
		o.hostResolver = r
		return nil
	}
}

// WithHostname 指定本机主机名来源
func WithHostname(fn func() (string, error)) Option {
	return func(o *options) error {
		o.hostname = fn
		return nil
	}
}

// WithRegisterer 指定指标注册器
//
// 注册器同时实现 prometheus.Gatherer 时 Provider.Metrics 返回它。
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) error {
		o.registerer = reg
		return nil
	}
}

// WithClock 指定计时使用的时钟
func WithClock(c clock.Clock) Option {
	return func(o *options) error {
		o.clock = c
		return nil
	}
}

// WithMetrics 开关指标收集
func WithMetrics(enabled bool) Option {
	return func(o *options) error {
		o.config.Metrics.Enabled = enabled
		return nil
	}
}

// WithFxOptions 追加自定义 Fx 选项
func WithFxOptions(opts ...fx.Option) Option {
	return func(o *options) error {
		o.fxOptions = append(o.fxOptions, opts...)
		return nil
	}
}
