package endpoint

import "github.com/dep2p/go-sockprov/pkg/types"

// 端点能力上限
const (
	MaxMsgSize       = 1 << 23
	MaxInjectSize    = 1 << 12
	MaxBufferedRecv  = 1 << 26
	MaxIOVLimit      = 8
	TxSize           = 1 << 8
	RxSize           = 1 << 8
	MaxTxCtxCount    = 16
	MaxRxCtxCount    = 16
	WireProtoVersion = 1

	// MemTagFormat 通用标签格式
	MemTagFormat = 0xAAAAAAAAAAAAAAAA

	// SharedContext 表示使用共享上下文的上下文数量
	SharedContext = -1
)

// 顺序保证
const (
	MsgOrder  = types.OrderRAR | types.OrderRAW | types.OrderRAS | types.OrderWAW | types.OrderWAS | types.OrderSAW | types.OrderSAS
	CompOrder = types.OrderStrict | types.OrderData
)

// Profile 一种端点类型的默认属性与能力
type Profile struct {
	Type types.EndpointType

	// PrimaryCaps 需要调用者显式请求的能力
	PrimaryCaps types.Caps

	// SecondaryCaps 总是提供的附加能力
	SecondaryCaps types.Caps

	EP types.EPAttr
	Tx types.TxAttr
	Rx types.RxAttr

	// RequireSrc 构建时必须有源地址
	RequireSrc bool
}

// Caps 返回全部能力
func (p Profile) Caps() types.Caps {
	return p.PrimaryCaps | p.SecondaryCaps
}

func baseEPAttr(t types.EndpointType, proto types.Protocol) types.EPAttr {
	return types.EPAttr{
		Type:            t,
		Protocol:        proto,
		ProtocolVersion: WireProtoVersion,
		MaxMsgSize:      MaxMsgSize,
		MaxOrderRAWSize: MaxMsgSize,
		MaxOrderWARSize: MaxMsgSize,
		MaxOrderWAWSize: MaxMsgSize,
		MemTagFormat:    MemTagFormat,
		TxCtxCount:      1,
		RxCtxCount:      1,
	}
}

func baseTxAttr(caps types.Caps) types.TxAttr {
	return types.TxAttr{
		Caps:        caps,
		MsgOrder:    MsgOrder,
		CompOrder:   CompOrder,
		InjectSize:  MaxInjectSize,
		Size:        TxSize,
		IOVLimit:    MaxIOVLimit,
		RMAIOVLimit: MaxIOVLimit,
	}
}

func baseRxAttr(caps types.Caps) types.RxAttr {
	return types.RxAttr{
		Caps:              caps,
		MsgOrder:          MsgOrder,
		CompOrder:         CompOrder,
		TotalBufferedRecv: MaxBufferedRecv,
		Size:              RxSize,
		IOVLimit:          MaxIOVLimit,
	}
}

// ============================================================================
//                              预置 Profile
// ============================================================================

const (
	msgPrimaryCaps = types.CapMsg | types.CapRMA | types.CapTagged | types.CapAtomic |
		types.CapRead | types.CapWrite | types.CapRecv | types.CapSend |
		types.CapRemoteRead | types.CapRemoteWrite

	msgSecondaryCaps = types.CapMultiRecv | types.CapSource | types.CapRMAEvent |
		types.CapRemoteCQData | types.CapTrigger | types.CapFence

	dgramPrimaryCaps = types.CapMsg | types.CapTagged | types.CapNamedRxCtx |
		types.CapDirectedRecv | types.CapRecv | types.CapSend

	dgramSecondaryCaps = types.CapMultiRecv | types.CapSource

	rdmPrimaryCaps = msgPrimaryCaps | types.CapNamedRxCtx | types.CapDirectedRecv

	rdmSecondaryCaps = msgSecondaryCaps
)

// MsgProfile 面向连接的流式端点
func MsgProfile() Profile {
	return Profile{
		Type:          types.EPMsg,
		PrimaryCaps:   msgPrimaryCaps,
		SecondaryCaps: msgSecondaryCaps,
		EP:            baseEPAttr(types.EPMsg, types.ProtoSockTCP),
		Tx:            baseTxAttr(msgPrimaryCaps | msgSecondaryCaps),
		Rx:            baseRxAttr(msgPrimaryCaps | msgSecondaryCaps),
	}
}

// DgramProfile 不可靠数据报端点
func DgramProfile() Profile {
	caps := dgramPrimaryCaps | dgramSecondaryCaps
	tx := baseTxAttr(caps)
	tx.RMAIOVLimit = 0
	return Profile{
		Type:          types.EPDgram,
		PrimaryCaps:   dgramPrimaryCaps,
		SecondaryCaps: dgramSecondaryCaps,
		EP:            baseEPAttr(types.EPDgram, types.ProtoSockUDP),
		Tx:            tx,
		Rx:            baseRxAttr(caps),
		RequireSrc:    true,
	}
}

// RDMProfile 可靠无连接消息端点
func RDMProfile() Profile {
	return Profile{
		Type:          types.EPRDM,
		PrimaryCaps:   rdmPrimaryCaps,
		SecondaryCaps: rdmSecondaryCaps,
		EP:            baseEPAttr(types.EPRDM, types.ProtoSockTCP),
		Tx:            baseTxAttr(rdmPrimaryCaps | rdmSecondaryCaps),
		Rx:            baseRxAttr(rdmPrimaryCaps | rdmSecondaryCaps),
	}
}
