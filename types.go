package sockprov

import (
	"github.com/dep2p/go-sockprov/internal/core/fabric"
	"github.com/dep2p/go-sockprov/pkg/types"
)

// ════════════════════════════════════════════════════════════════════════════
//                              类型别名
// ════════════════════════════════════════════════════════════════════════════

// Info 传输配置描述符（作为输入时是 hints）
type Info = types.Info

// 属性描述符
type (
	FabricAttr = types.FabricAttr
	DomainAttr = types.DomainAttr
	EPAttr     = types.EPAttr
	TxAttr     = types.TxAttr
	RxAttr     = types.RxAttr
)

// 枚举与位掩码
type (
	Caps         = types.Caps
	EndpointType = types.EndpointType
	GetInfoFlags = types.GetInfoFlags
	FabricID     = types.FabricID
	DomainID     = types.DomainID
)

// Fabric 已注册的 fabric 对象
type Fabric = fabric.Fabric

// Domain 已注册的 domain 对象
type Domain = fabric.Domain

// 端点类型
const (
	EPUnspec = types.EPUnspec
	EPMsg    = types.EPMsg
	EPDgram  = types.EPDgram
	EPRDM    = types.EPRDM
)

// 发现标志
const (
	// FlagNumericHost node 必须是数字地址
	FlagNumericHost = types.FlagNumericHost
	// FlagSource node/service 描述本地端
	FlagSource = types.FlagSource
)
