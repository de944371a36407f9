package discovery

import (
	"context"
	"errors"
	"fmt"
	"net/netip"

	"github.com/benbjohnson/clock"

	"github.com/dep2p/go-sockprov/internal/core/endpoint"
	"github.com/dep2p/go-sockprov/internal/core/metrics"
	"github.com/dep2p/go-sockprov/internal/util/logger"
	pkgif "github.com/dep2p/go-sockprov/pkg/interfaces"
	"github.com/dep2p/go-sockprov/pkg/types"
)

var log = logger.Logger("discovery")

// InfoVerifier 校验 hints
type InfoVerifier interface {
	VerifyInfo(hints *types.Info) error
}

// AddrResolver 确定发现使用的地址
type AddrResolver interface {
	Hostname() (string, error)
	Resolve(ctx context.Context, node, service string, flags types.GetInfoFlags, hints *types.Info) (src, dest netip.AddrPort, err error)
}

// Orchestrator 发现流程
type Orchestrator struct {
	verifier InfoVerifier
	resolver AddrResolver
	kinds    *endpoint.KindTable
	clock    clock.Clock
	metrics  *metrics.Metrics
}

// Option 发现流程选项
type Option func(*Orchestrator)

// WithClock 替换计时使用的时钟
func WithClock(c clock.Clock) Option {
	return func(o *Orchestrator) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithMetrics 设置指标
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *Orchestrator) {
		o.metrics = m
	}
}

// New 创建发现流程
func New(v InfoVerifier, r AddrResolver, kinds *endpoint.KindTable, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		verifier: v,
		resolver: r,
		kinds:    kinds,
		clock:    clock.New(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// GetInfo 返回与寻址信息和 hints 匹配的 info 描述符
//
// 没有任何匹配时返回 types.ErrNoData；hints 中地址不是 IPv4 套接字地址时
// 返回 types.ErrInvalidArgument 且不做任何解析。
func (o *Orchestrator) GetInfo(ctx context.Context, node, service string, flags types.GetInfoFlags, hints *types.Info) (infos []*types.Info, err error) {
	start := o.clock.Now()
	defer func() {
		o.metrics.ObserveGetInfo(err, o.clock.Since(start))
		if err == nil {
			o.metrics.AddDescriptors(infos)
		}
	}()

	if err := checkAddrShape(node, service, flags, hints); err != nil {
		return nil, err
	}

	if err := o.verifier.VerifyInfo(hints); err != nil {
		return nil, err
	}

	if node == "" && service == "" && hints == nil {
		flags |= types.FlagSource
		node = o.localHostname()
	}

	if node == "" && service == "" && !flags.Has(types.FlagSource) &&
		(hints == nil || !hints.DestAddr.IsValid()) {
		node = o.localHostname()
	}

	switch ep := hints.EndpointType(); ep {
	case types.EPMsg, types.EPDgram, types.EPRDM:
		kind, ok := o.kinds.Lookup(ep)
		if !ok {
			return nil, types.ErrNoData
		}
		return o.resolveForKind(ctx, kind, node, service, flags, hints)
	}

	for _, kind := range o.kinds.All() {
		cur, err := o.resolveForKind(ctx, kind, node, service, flags, hints)
		if err != nil {
			if errors.Is(err, types.ErrNoData) {
				log.Debug("端点类型无匹配", "ep_type", kind.Type())
				continue
			}
			return nil, err
		}
		infos = append(infos, cur...)
	}
	if len(infos) == 0 {
		return nil, types.ErrNoData
	}
	return infos, nil
}

// resolveForKind 为一种端点类型解析地址并构建描述符
func (o *Orchestrator) resolveForKind(ctx context.Context, kind pkgif.EndpointKind, node, service string, flags types.GetInfoFlags, hints *types.Info) ([]*types.Info, error) {
	src, dest, err := o.resolver.Resolve(ctx, node, service, flags, hints)
	if err != nil {
		return nil, err
	}
	return kind.BuildInfo(src, dest, hints)
}

func (o *Orchestrator) localHostname() string {
	name, err := o.resolver.Hostname()
	if err != nil {
		log.Debug("获取主机名失败", "error", err)
		return ""
	}
	return name
}

// checkAddrShape 检查 hints 中会被使用的地址是否为 IPv4 套接字地址
func checkAddrShape(node, service string, flags types.GetInfoFlags, hints *types.Info) error {
	if hints == nil {
		return nil
	}
	source := flags.Has(types.FlagSource)

	if !source && hints.SrcAddr.IsValid() && types.AddrLen(hints.SrcAddr) != types.SockaddrInLen {
		return fmt.Errorf("src addr %s: %w", hints.SrcAddr, types.ErrInvalidArgument)
	}
	if ((node == "" && service == "") || source) && hints.DestAddr.IsValid() &&
		types.AddrLen(hints.DestAddr) != types.SockaddrInLen {
		return fmt.Errorf("dest addr %s: %w", hints.DestAddr, types.ErrInvalidArgument)
	}
	return nil
}
