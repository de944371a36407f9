package params

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/multierr"

	"github.com/dep2p/go-sockprov/config"
	"github.com/dep2p/go-sockprov/internal/util/affinity"
	"github.com/dep2p/go-sockprov/internal/util/logger"
	pkgif "github.com/dep2p/go-sockprov/pkg/interfaces"
)

var log = logger.Logger("params")

// Params 已加载的可调参数
type Params struct {
	PEWaitTime     int
	MaxConnRetry   int
	DefConnMapSize int
	DefAVSize      int
	DefCQSize      int
	DefEQSize      int

	// PEAffinity 原始亲和性描述，无效时为空
	PEAffinity string

	// PEAffinityCPUs 解析后的 CPU 列表
	PEAffinityCPUs []int

	// DgramDropRate 仅调试构建从来源读取
	DgramDropRate int
}

// fromConfig 以配置默认值初始化参数
func fromConfig(cfg config.ParamsConfig) *Params {
	p := &Params{
		PEWaitTime:     cfg.PEWaitTime,
		MaxConnRetry:   cfg.MaxConnRetry,
		DefConnMapSize: cfg.DefConnMapSize,
		DefAVSize:      cfg.DefAVSize,
		DefCQSize:      cfg.DefCQSize,
		DefEQSize:      cfg.DefEQSize,
		DgramDropRate:  cfg.DgramDropRate,
	}
	if cpus, err := affinity.Parse(cfg.PEAffinity); err == nil && cpus != nil {
		p.PEAffinity = cfg.PEAffinity
		p.PEAffinityCPUs = cpus
	}
	return p
}

// ============================================================================
//                              Loader
// ============================================================================

// Loader 一次性参数加载器
//
// 第一次 Load 读取来源中的全部已定义参数，之后的调用直接返回同一结果，
// 即使第一次加载报告了错误也不会重读。
type Loader struct {
	cfg config.ParamsConfig
	src pkgif.ParamSource

	once   sync.Once
	params *Params
	err    error

	// reads 实际读取来源的次数
	reads atomic.Int32
}

// NewLoader 创建参数加载器
//
// src 为 nil 时从 cfg.EnvPrefix 指定前缀的环境变量读取。
func NewLoader(cfg config.ParamsConfig, src pkgif.ParamSource) *Loader {
	if src == nil {
		src = NewEnvSource(cfg.EnvPrefix)
	}
	return &Loader{cfg: cfg, src: src}
}

// Load 加载参数
//
// 返回的 *Params 总是可用；错误只说明哪些键的值被忽略。
func (l *Loader) Load() (*Params, error) {
	l.once.Do(func() {
		l.reads.Add(1)
		l.params, l.err = l.load()
		if l.err != nil {
			log.Warn("部分参数无效，使用默认值", "error", l.err)
		}
		log.Debug("参数已加载",
			"pe_waittime", l.params.PEWaitTime,
			"max_conn_retry", l.params.MaxConnRetry,
			"def_conn_map_sz", l.params.DefConnMapSize,
			"pe_affinity", l.params.PEAffinity)
	})
	return l.params, l.err
}

// Loaded 是否已完成加载
func (l *Loader) Loaded() bool {
	return l.reads.Load() > 0
}

// Reads 返回读取来源的次数（至多为 1）
func (l *Loader) Reads() int {
	return int(l.reads.Load())
}

func (l *Loader) load() (*Params, error) {
	p := fromConfig(l.cfg)
	var errs error

	ints := map[string]*int{
		NamePEWaitTime:     &p.PEWaitTime,
		NameMaxConnRetry:   &p.MaxConnRetry,
		NameDefConnMapSize: &p.DefConnMapSize,
		NameDefAVSize:      &p.DefAVSize,
		NameDefCQSize:      &p.DefCQSize,
		NameDefEQSize:      &p.DefEQSize,
		NameDgramDropRate:  &p.DgramDropRate,
	}

	for _, def := range Definitions() {
		switch def.Type {
		case TypeInt:
			dst, ok := ints[def.Name]
			if !ok {
				continue
			}
			v, found, err := l.src.GetInt(def.Name)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			if !found {
				continue
			}
			if v < 0 {
				errs = multierr.Append(errs, fmt.Errorf("param %s must be non-negative, got %d", def.Name, v))
				continue
			}
			*dst = v

		case TypeString:
			if def.Name != NamePEAffinity {
				continue
			}
			v, found, err := l.src.GetString(def.Name)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			if !found {
				continue
			}
			cpus, err := affinity.Parse(v)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("param %s: %w", def.Name, err))
				p.PEAffinity, p.PEAffinityCPUs = "", nil
				continue
			}
			p.PEAffinity, p.PEAffinityCPUs = v, cpus
		}
	}

	return p, errs
}

// ApplyAffinity 将当前线程绑定到 pe_affinity 指定的 CPU
//
// 未配置亲和性时为空操作；平台不支持时返回 affinity.ErrUnsupported。
func (p *Params) ApplyAffinity() error {
	if p == nil || len(p.PEAffinityCPUs) == 0 {
		return nil
	}
	if err := affinity.Apply(p.PEAffinityCPUs); err != nil {
		if errors.Is(err, affinity.ErrUnsupported) {
			log.Debug("平台不支持 CPU 亲和性", "pe_affinity", p.PEAffinity)
		}
		return err
	}
	return nil
}
