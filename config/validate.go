package config

import "errors"

// ValidateAll 验证整个配置的有效性
//
// 这是 Config.Validate() 的别名，额外处理 nil。
func ValidateAll(c *Config) error {
	if c == nil {
		return errors.New("config is nil")
	}
	return c.Validate()
}

// ValidateAndFix 验证配置并修复可修复的问题
//
// 可修复的问题：
//   - 非正的队列/表大小 -> 使用默认值
//   - 负的超时 -> 使用默认值
//   - 空的缓存容量 -> 使用默认值
func ValidateAndFix(c *Config) (*Config, error) {
	if c == nil {
		return NewConfig(), nil
	}

	def := DefaultParamsConfig()
	if c.Params.DefConnMapSize <= 0 {
		c.Params.DefConnMapSize = def.DefConnMapSize
	}
	if c.Params.DefAVSize <= 0 {
		c.Params.DefAVSize = def.DefAVSize
	}
	if c.Params.DefCQSize <= 0 {
		c.Params.DefCQSize = def.DefCQSize
	}
	if c.Params.DefEQSize <= 0 {
		c.Params.DefEQSize = def.DefEQSize
	}

	res := DefaultResolverConfig()
	if c.Resolver.Timeout < 0 {
		c.Resolver.Timeout = res.Timeout
	}
	if c.Resolver.ServiceCacheSize <= 0 {
		c.Resolver.ServiceCacheSize = res.ServiceCacheSize
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
