// Package verifier 检查调用者 hints 能否被 provider 满足
//
// 校验按固定顺序进行，遇到第一个失败立即返回：
// 端点属性、能力集、地址格式、domain、fabric。
package verifier

import (
	"github.com/dep2p/go-sockprov/internal/core/endpoint"
	"github.com/dep2p/go-sockprov/internal/util/logger"
	pkgif "github.com/dep2p/go-sockprov/pkg/interfaces"
	"github.com/dep2p/go-sockprov/pkg/types"
)

var log = logger.Logger("verifier")

// VerifyFabricAttr 检查请求的 fabric 属性
//
// nil 表示不关心；名称或 provider 版本不匹配时返回 types.ErrNoData。
func VerifyFabricAttr(attr *types.FabricAttr) error {
	if attr == nil {
		return nil
	}
	if attr.Name != "" && attr.Name != types.FabricName {
		log.Debug("fabric 名称不匹配", "name", attr.Name)
		return types.ErrNoData
	}
	if attr.ProvVersion != 0 && attr.ProvVersion != types.ProviderVersion {
		log.Debug("provider 版本不匹配", "version", types.FormatVersion(attr.ProvVersion))
		return types.ErrNoData
	}
	return nil
}

// Verifier hints 校验器
type Verifier struct {
	kinds   *endpoint.KindTable
	objects pkgif.ObjectLookup
	domains pkgif.DomainAttrVerifier
}

// New 创建校验器
func New(kinds *endpoint.KindTable, objects pkgif.ObjectLookup, domains pkgif.DomainAttrVerifier) *Verifier {
	return &Verifier{
		kinds:   kinds,
		objects: objects,
		domains: domains,
	}
}

// VerifyInfo 检查 hints 是否可能被满足
//
// nil hints 总是通过。未指定端点类型时按流式端点检查。
func (v *Verifier) VerifyInfo(hints *types.Info) error {
	if hints == nil {
		return nil
	}

	ep := hints.EndpointType()
	if ep == types.EPUnspec {
		ep = types.EPMsg
	}
	kind, ok := v.kinds.Lookup(ep)
	if !ok {
		log.Debug("不支持的端点类型", "ep_type", ep)
		return types.ErrNoData
	}
	if err := kind.VerifyAttr(hints.EPAttr, hints.TxAttr, hints.RxAttr); err != nil {
		return err
	}

	if !hints.Caps.Subset(kind.Caps()) {
		log.Debug("不支持的能力", "caps", hints.Caps, "supported", kind.Caps())
		return types.ErrNoData
	}

	switch hints.AddrFormat {
	case types.FormatUnspec, types.FormatSockaddr, types.FormatSockaddrIn:
	default:
		log.Debug("不支持的地址格式", "addr_format", hints.AddrFormat)
		return types.ErrNoData
	}

	if dom := hints.DomainAttr; dom != nil {
		if !dom.Domain.IsZero() && !v.objects.HasDomain(dom.Domain) {
			log.Debug("没有匹配的 domain", "domain", dom.Domain)
			return types.ErrNoData
		}
		if err := v.domains.VerifyDomainAttr(dom); err != nil {
			return err
		}
	}

	if fab := hints.FabricAttr; fab != nil {
		if !fab.Fabric.IsZero() && !v.objects.HasFabric(fab.Fabric) {
			log.Debug("没有匹配的 fabric", "fabric", fab.Fabric)
			return types.ErrNoData
		}
		if err := VerifyFabricAttr(fab); err != nil {
			return err
		}
	}

	return nil
}
