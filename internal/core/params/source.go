package params

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	pkgif "github.com/dep2p/go-sockprov/pkg/interfaces"
	"github.com/dep2p/go-sockprov/pkg/types"
)

// ============================================================================
//                              EnvSource
// ============================================================================

// EnvSource 从环境变量读取参数
//
// 变量名为 Prefix + 大写参数名，例如 FI_SOCKETS_PE_WAITTIME。
type EnvSource struct {
	Prefix string

	// lookup 默认为 os.LookupEnv（测试可替换）
	lookup func(string) (string, bool)
}

// NewEnvSource 创建环境变量参数来源
func NewEnvSource(prefix string) *EnvSource {
	return &EnvSource{Prefix: prefix, lookup: os.LookupEnv}
}

// Key 返回参数对应的环境变量名
func (s *EnvSource) Key(name string) string {
	return s.Prefix + strings.ToUpper(name)
}

// GetInt 读取整数参数
func (s *EnvSource) GetInt(name string) (int, bool, error) {
	v, ok := s.get(name)
	if !ok {
		return 0, false, nil
	}
	return parseInt(s.Key(name), v)
}

// GetString 读取字符串参数
func (s *EnvSource) GetString(name string) (string, bool, error) {
	v, ok := s.get(name)
	return v, ok, nil
}

func (s *EnvSource) get(name string) (string, bool) {
	lookup := s.lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return lookup(s.Key(name))
}

// ============================================================================
//                              MapSource
// ============================================================================

// MapSource 从内存映射读取参数（键为参数名）
type MapSource map[string]string

// GetInt 读取整数参数
func (m MapSource) GetInt(name string) (int, bool, error) {
	v, ok := m[name]
	if !ok {
		return 0, false, nil
	}
	return parseInt(name, v)
}

// GetString 读取字符串参数
func (m MapSource) GetString(name string) (string, bool, error) {
	v, ok := m[name]
	return v, ok, nil
}

// ============================================================================
//                              Chain
// ============================================================================

// Chain 按顺序查询多个来源，第一个存在该键的来源生效
type Chain []pkgif.ParamSource

// GetInt 读取整数参数
func (c Chain) GetInt(name string) (int, bool, error) {
	for _, src := range c {
		if v, ok, err := src.GetInt(name); ok || err != nil {
			return v, ok, err
		}
	}
	return 0, false, nil
}

// GetString 读取字符串参数
func (c Chain) GetString(name string) (string, bool, error) {
	for _, src := range c {
		if v, ok, err := src.GetString(name); ok || err != nil {
			return v, ok, err
		}
	}
	return "", false, nil
}

func parseInt(key, v string) (int, bool, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, true, fmt.Errorf("param %s=%q is not an integer: %w", key, v, types.ErrInvalidArgument)
	}
	return n, true, nil
}

var (
	_ pkgif.ParamSource = (*EnvSource)(nil)
	_ pkgif.ParamSource = MapSource(nil)
	_ pkgif.ParamSource = Chain(nil)
)
