// Package config 提供统一的配置管理
//
// 本包采用混合配置模式：
//   - 主 Config 结构体嵌入所有子配置
//   - 每个子配置在独立文件中定义
//   - 支持从 JSON 加载和保存配置
//
// 使用示例：
//
//	cfg := config.NewConfig()
//	cfg.Params.DefCQSize = 1024
//	cfg.Resolver.NameServer = "10.0.0.53:53"
//
//	// 从 JSON 加载
//	cfg, err := config.FromJSON(data)
package config

// Config 是 sockets provider 的完整配置结构
//
// 配置按照功能模块组织：
//   - Params: 可调参数的内置默认值（可被参数来源覆盖）
//   - Resolver: 名字解析
//   - Metrics: 指标收集
type Config struct {
	// Params 可调参数默认值
	Params ParamsConfig `json:"params"`

	// Resolver 名字解析配置
	Resolver ResolverConfig `json:"resolver"`

	// Metrics 指标配置
	Metrics MetricsConfig `json:"metrics"`
}

// NewConfig 创建默认配置
func NewConfig() *Config {
	return &Config{
		Params:   DefaultParamsConfig(),
		Resolver: DefaultResolverConfig(),
		Metrics:  DefaultMetricsConfig(),
	}
}

// Validate 验证配置的有效性
func (c *Config) Validate() error {
	if err := c.Params.Validate(); err != nil {
		return err
	}
	if err := c.Resolver.Validate(); err != nil {
		return err
	}
	return c.Metrics.Validate()
}
