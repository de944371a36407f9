package config

import (
	"errors"
	"net"
	"time"
)

// ResolverConfig 名字解析配置
type ResolverConfig struct {
	// NameServer 自定义 DNS 服务器（格式: "ip:port"），空表示使用系统解析器
	NameServer string `json:"name_server,omitempty"`

	// Timeout 单次查询超时
	Timeout Duration `json:"timeout"`

	// ServiceCacheSize 服务名到端口缓存的容量
	ServiceCacheSize int `json:"service_cache_size"`
}

// DefaultResolverConfig 返回默认解析配置
func DefaultResolverConfig() ResolverConfig {
	return ResolverConfig{
		Timeout:          Duration(5 * time.Second),
		ServiceCacheSize: 64,
	}
}

// Validate 验证解析配置
func (c ResolverConfig) Validate() error {
	if c.NameServer != "" {
		if _, _, err := net.SplitHostPort(c.NameServer); err != nil {
			return errors.New("name_server must be host:port")
		}
	}
	if c.Timeout < 0 {
		return errors.New("resolver timeout must be non-negative")
	}
	if c.ServiceCacheSize <= 0 {
		return errors.New("service_cache_size must be positive")
	}
	return nil
}
