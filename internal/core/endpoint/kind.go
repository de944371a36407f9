package endpoint

import (
	"net/netip"

	"github.com/dep2p/go-sockprov/internal/core/fabric"
	"github.com/dep2p/go-sockprov/internal/util/logger"
	pkgif "github.com/dep2p/go-sockprov/pkg/interfaces"
	"github.com/dep2p/go-sockprov/pkg/types"
)

var log = logger.Logger("endpoint")

// Kind 基于 Profile 的端点类型实现
type Kind struct {
	profile Profile
}

var _ pkgif.EndpointKind = (*Kind)(nil)

// NewKind 创建端点类型
func NewKind(p Profile) *Kind {
	return &Kind{profile: p}
}

// Type 返回端点类型
func (k *Kind) Type() types.EndpointType {
	return k.profile.Type
}

// Caps 返回支持的能力集
func (k *Kind) Caps() types.Caps {
	return k.profile.Caps()
}

// Profile 返回默认属性描述
func (k *Kind) Profile() Profile {
	return k.profile
}

// ============================================================================
//                              属性校验
// ============================================================================

// VerifyAttr 校验请求的端点属性，任何不能满足的项返回 types.ErrNoData
func (k *Kind) VerifyAttr(ep *types.EPAttr, tx *types.TxAttr, rx *types.RxAttr) error {
	if err := k.verifyEP(ep); err != nil {
		return err
	}
	if err := k.verifyTx(tx); err != nil {
		return err
	}
	return k.verifyRx(rx)
}

func (k *Kind) verifyEP(ep *types.EPAttr) error {
	if ep == nil {
		return nil
	}
	def := k.profile.EP

	if ep.Protocol != types.ProtoUnspec && ep.Protocol != def.Protocol {
		return k.reject("protocol", ep.Protocol)
	}
	if ep.ProtocolVersion != 0 && ep.ProtocolVersion != def.ProtocolVersion {
		return k.reject("protocol_version", ep.ProtocolVersion)
	}
	switch {
	case ep.MaxMsgSize > def.MaxMsgSize:
		return k.reject("max_msg_size", ep.MaxMsgSize)
	case ep.MsgPrefixSize > def.MsgPrefixSize:
		return k.reject("msg_prefix_size", ep.MsgPrefixSize)
	case ep.MaxOrderRAWSize > def.MaxOrderRAWSize:
		return k.reject("max_order_raw_size", ep.MaxOrderRAWSize)
	case ep.MaxOrderWARSize > def.MaxOrderWARSize:
		return k.reject("max_order_war_size", ep.MaxOrderWARSize)
	case ep.MaxOrderWAWSize > def.MaxOrderWAWSize:
		return k.reject("max_order_waw_size", ep.MaxOrderWAWSize)
	}
	if ep.TxCtxCount > MaxTxCtxCount || (ep.TxCtxCount < 0 && ep.TxCtxCount != SharedContext) {
		return k.reject("tx_ctx_cnt", ep.TxCtxCount)
	}
	if ep.RxCtxCount > MaxRxCtxCount || (ep.RxCtxCount < 0 && ep.RxCtxCount != SharedContext) {
		return k.reject("rx_ctx_cnt", ep.RxCtxCount)
	}
	return nil
}

func (k *Kind) verifyTx(tx *types.TxAttr) error {
	if tx == nil {
		return nil
	}
	def := k.profile.Tx

	switch {
	case !tx.Caps.Subset(def.Caps):
		return k.reject("tx caps", tx.Caps)
	case !tx.MsgOrder.Subset(def.MsgOrder):
		return k.reject("tx msg_order", tx.MsgOrder)
	case !tx.CompOrder.Subset(def.CompOrder):
		return k.reject("tx comp_order", tx.CompOrder)
	case tx.InjectSize > def.InjectSize:
		return k.reject("inject_size", tx.InjectSize)
	case tx.Size > def.Size:
		return k.reject("tx size", tx.Size)
	case tx.IOVLimit > def.IOVLimit:
		return k.reject("tx iov_limit", tx.IOVLimit)
	case tx.RMAIOVLimit > def.RMAIOVLimit:
		return k.reject("rma_iov_limit", tx.RMAIOVLimit)
	}
	return nil
}

func (k *Kind) verifyRx(rx *types.RxAttr) error {
	if rx == nil {
		return nil
	}
	def := k.profile.Rx

	switch {
	case !rx.Caps.Subset(def.Caps):
		return k.reject("rx caps", rx.Caps)
	case !rx.MsgOrder.Subset(def.MsgOrder):
		return k.reject("rx msg_order", rx.MsgOrder)
	case !rx.CompOrder.Subset(def.CompOrder):
		return k.reject("rx comp_order", rx.CompOrder)
	case rx.TotalBufferedRecv > def.TotalBufferedRecv:
		return k.reject("total_buffered_recv", rx.TotalBufferedRecv)
	case rx.Size > def.Size:
		return k.reject("rx size", rx.Size)
	case rx.IOVLimit > def.IOVLimit:
		return k.reject("rx iov_limit", rx.IOVLimit)
	}
	return nil
}

func (k *Kind) reject(attr string, value any) error {
	log.Debug("端点属性不支持", "ep_type", k.profile.Type, "attr", attr, "value", value)
	return types.ErrNoData
}

// ============================================================================
//                              Info 构建
// ============================================================================

// BuildInfo 为地址对构建一个 info 描述符
//
// hints 的能力或属性超出该类型、地址不是 IPv4、
// 或该类型需要源地址而 src 缺省时返回 types.ErrNoData。
func (k *Kind) BuildInfo(src, dest netip.AddrPort, hints *types.Info) ([]*types.Info, error) {
	if hints != nil {
		if !hints.Caps.Subset(k.Caps()) {
			log.Debug("能力超出端点类型", "ep_type", k.profile.Type, "caps", hints.Caps)
			return nil, types.ErrNoData
		}
		if err := k.VerifyAttr(hints.EPAttr, hints.TxAttr, hints.RxAttr); err != nil {
			return nil, err
		}
	}
	if src.IsValid() && !types.IsSockaddrIn(src) {
		log.Debug("源地址不是 IPv4", "ep_type", k.profile.Type, "src", src)
		return nil, types.ErrNoData
	}
	if dest.IsValid() && !types.IsSockaddrIn(dest) {
		log.Debug("目的地址不是 IPv4", "ep_type", k.profile.Type, "dest", dest)
		return nil, types.ErrNoData
	}
	if k.profile.RequireSrc && !src.IsValid() {
		log.Debug("缺少源地址", "ep_type", k.profile.Type)
		return nil, types.ErrNoData
	}

	p := k.profile
	ep, tx, rx := p.EP, p.Tx, p.Rx

	info := &types.Info{
		AddrFormat: types.FormatSockaddrIn,
		SrcAddr:    types.ToSockaddrIn(src),
		DestAddr:   types.ToSockaddrIn(dest),
		Mode:       tx.Mode | rx.Mode,
		EPAttr:     &ep,
		TxAttr:     &tx,
		RxAttr:     &rx,
	}
	info.Caps = p.Caps() | rx.Caps | tx.Caps

	dom := fabric.DefaultDomainAttr()
	fab := types.FabricAttr{
		Name:        types.FabricName,
		ProvName:    types.ProviderName,
		ProvVersion: types.ProviderVersion,
	}

	if hints != nil {
		if hints.EPAttr != nil {
			if hints.EPAttr.TxCtxCount != 0 {
				ep.TxCtxCount = hints.EPAttr.TxCtxCount
			}
			if hints.EPAttr.RxCtxCount != 0 {
				ep.RxCtxCount = hints.EPAttr.RxCtxCount
			}
		}
		if hints.TxAttr != nil {
			tx.OpFlags |= hints.TxAttr.OpFlags
		}
		if hints.RxAttr != nil {
			rx.OpFlags |= hints.RxAttr.OpFlags
		}
		if hints.Caps != 0 {
			info.Caps = p.SecondaryCaps | hints.Caps
			tx.Caps = p.SecondaryCaps | (tx.Caps & info.Caps)
			rx.Caps = p.SecondaryCaps | (rx.Caps & info.Caps)
		}
		if hints.DomainAttr != nil {
			dom.Domain = hints.DomainAttr.Domain
		}
		if hints.FabricAttr != nil {
			fab.Fabric = hints.FabricAttr.Fabric
		}
	}

	info.DomainAttr = &dom
	info.FabricAttr = &fab
	return []*types.Info{info}, nil
}
