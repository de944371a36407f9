package fabric

import (
	pkgif "github.com/dep2p/go-sockprov/pkg/interfaces"
	"github.com/dep2p/go-sockprov/pkg/types"
)

// domain 能力上限
const (
	MaxCQCount    = 32
	MaxEPCount    = 128
	MaxTxCtxCount = 16
	MaxRxCtxCount = 16
	MRKeySize     = 8
	CQDataSize    = 8
)

// DefaultDomainAttr 返回 provider 提供的 domain 属性
func DefaultDomainAttr() types.DomainAttr {
	return types.DomainAttr{
		Name:            types.DomainName,
		Threading:       types.ThreadSafe,
		ControlProgress: types.ProgressAuto,
		DataProgress:    types.ProgressAuto,
		ResourceMgmt:    types.RMEnabled,
		AVType:          types.AVUnspec,
		MRMode:          types.MRScalable,
		MRKeySize:       MRKeySize,
		CQDataSize:      CQDataSize,
		CQCount:         MaxCQCount,
		EPCount:         MaxEPCount,
		TxCtxCount:      MaxTxCtxCount,
		RxCtxCount:      MaxRxCtxCount,
		MaxEPTxCtx:      MaxTxCtxCount,
		MaxEPRxCtx:      MaxRxCtxCount,
	}
}

// AttrVerifier domain 属性校验器
type AttrVerifier struct{}

var _ pkgif.DomainAttrVerifier = AttrVerifier{}

// VerifyDomainAttr 实现 interfaces.DomainAttrVerifier
func (AttrVerifier) VerifyDomainAttr(attr *types.DomainAttr) error {
	return VerifyDomainAttr(attr)
}

// VerifyDomainAttr 检查请求的 domain 属性是否能被满足
//
// nil 表示不关心。不支持的取值或超出上限的数量返回 types.ErrNoData。
func VerifyDomainAttr(attr *types.DomainAttr) error {
	if attr == nil {
		return nil
	}

	if attr.Name != "" && attr.Name != types.DomainName {
		log.Debug("domain 名称不匹配", "name", attr.Name)
		return types.ErrNoData
	}

	switch attr.Threading {
	case types.ThreadUnspec, types.ThreadSafe, types.ThreadFID,
		types.ThreadDomain, types.ThreadCompletion, types.ThreadEndpoint:
	default:
		log.Debug("不支持的线程模型", "threading", attr.Threading)
		return types.ErrNoData
	}

	for _, p := range []types.Progress{attr.ControlProgress, attr.DataProgress} {
		switch p {
		case types.ProgressUnspec, types.ProgressAuto, types.ProgressManual:
		default:
			log.Debug("不支持的进度模型", "progress", p)
			return types.ErrNoData
		}
	}

	switch attr.ResourceMgmt {
	case types.RMUnspec, types.RMDisabled, types.RMEnabled:
	default:
		log.Debug("不支持的资源管理模式", "resource_mgmt", attr.ResourceMgmt)
		return types.ErrNoData
	}

	switch attr.AVType {
	case types.AVUnspec, types.AVMap, types.AVTable:
	default:
		log.Debug("不支持的地址向量类型", "av_type", attr.AVType)
		return types.ErrNoData
	}

	switch attr.MRMode {
	case types.MRUnspec, types.MRBasic, types.MRScalable:
	default:
		log.Debug("不支持的内存注册模式", "mr_mode", attr.MRMode)
		return types.ErrNoData
	}

	limits := DefaultDomainAttr()
	switch {
	case attr.MRKeySize > limits.MRKeySize,
		attr.CQDataSize > limits.CQDataSize,
		attr.CQCount > limits.CQCount,
		attr.EPCount > limits.EPCount,
		attr.TxCtxCount > limits.TxCtxCount,
		attr.RxCtxCount > limits.RxCtxCount,
		attr.MaxEPTxCtx > limits.MaxEPTxCtx,
		attr.MaxEPRxCtx > limits.MaxEPRxCtx:
		log.Debug("domain 数量属性超出上限")
		return types.ErrNoData
	}

	return nil
}

// mergeDomainAttr 以请求覆盖默认 domain 属性
func mergeDomainAttr(req *types.DomainAttr) types.DomainAttr {
	out := DefaultDomainAttr()
	if req == nil {
		return out
	}
	if req.Threading != types.ThreadUnspec {
		out.Threading = req.Threading
	}
	if req.ControlProgress != types.ProgressUnspec {
		out.ControlProgress = req.ControlProgress
	}
	if req.DataProgress != types.ProgressUnspec {
		out.DataProgress = req.DataProgress
	}
	if req.ResourceMgmt != types.RMUnspec {
		out.ResourceMgmt = req.ResourceMgmt
	}
	if req.AVType != types.AVUnspec {
		out.AVType = req.AVType
	}
	if req.MRMode != types.MRUnspec {
		out.MRMode = req.MRMode
	}
	return out
}
