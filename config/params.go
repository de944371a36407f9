package config

import (
	"errors"
	"strings"
)

// 可调参数内置默认值
const (
	// DefaultPEWaitTime 进度引擎等待时自旋的毫秒数
	DefaultPEWaitTime = 10

	// DefaultMaxConnRetry 连接失败前的重试次数
	DefaultMaxConnRetry = 5

	// DefaultConnMapSize 默认连接表大小
	DefaultConnMapSize = 1 << 10

	// DefaultAVSize 默认地址向量大小
	DefaultAVSize = 1 << 8

	// DefaultCQSize 默认完成队列大小
	DefaultCQSize = 1 << 8

	// DefaultEQSize 默认事件队列大小
	DefaultEQSize = 1 << 8

	// DefaultEnvPrefix 环境变量参数前缀
	DefaultEnvPrefix = "FI_SOCKETS_"
)

// ParamsConfig 可调参数配置
//
// 字段值是参数来源中缺少对应键时使用的默认值。
type ParamsConfig struct {
	// PEWaitTime 进度引擎自旋等待毫秒数
	PEWaitTime int `json:"pe_waittime"`

	// MaxConnRetry 连接重试次数
	MaxConnRetry int `json:"max_conn_retry"`

	// DefConnMapSize 默认连接表大小
	DefConnMapSize int `json:"def_conn_map_sz"`

	// DefAVSize 默认地址向量大小
	DefAVSize int `json:"def_av_sz"`

	// DefCQSize 默认完成队列大小
	DefCQSize int `json:"def_cq_sz"`

	// DefEQSize 默认事件队列大小
	DefEQSize int `json:"def_eq_sz"`

	// PEAffinity 进度线程 CPU 亲和性，格式 id_start[-id_end[:stride]][,...]
	PEAffinity string `json:"pe_affinity,omitempty"`

	// DgramDropRate 每 N 个数据报帧丢弃一个（仅调试构建生效）
	DgramDropRate int `json:"dgram_drop_rate,omitempty"`

	// EnvPrefix 环境变量参数前缀
	EnvPrefix string `json:"env_prefix"`
}

// DefaultParamsConfig 返回默认参数配置
func DefaultParamsConfig() ParamsConfig {
	return ParamsConfig{
		PEWaitTime:     DefaultPEWaitTime,
		MaxConnRetry:   DefaultMaxConnRetry,
		DefConnMapSize: DefaultConnMapSize,
		DefAVSize:      DefaultAVSize,
		DefCQSize:      DefaultCQSize,
		DefEQSize:      DefaultEQSize,
		EnvPrefix:      DefaultEnvPrefix,
	}
}

// Validate 验证参数配置
func (c ParamsConfig) Validate() error {
	if c.PEWaitTime < 0 {
		return errors.New("pe_waittime must be non-negative")
	}
	if c.MaxConnRetry < 0 {
		return errors.New("max_conn_retry must be non-negative")
	}
	if c.DefConnMapSize <= 0 || c.DefAVSize <= 0 || c.DefCQSize <= 0 || c.DefEQSize <= 0 {
		return errors.New("default queue and map sizes must be positive")
	}
	if c.DgramDropRate < 0 {
		return errors.New("dgram_drop_rate must be non-negative")
	}
	if c.EnvPrefix != "" && strings.ContainsAny(c.EnvPrefix, "= ") {
		return errors.New("env_prefix must not contain '=' or spaces")
	}
	return nil
}
