package types

import "net/netip"

// ============================================================================
//                              属性描述符
// ============================================================================

// FabricAttr fabric 属性
type FabricAttr struct {
	// Fabric 指定的 fabric 对象（零值表示未指定）
	Fabric FabricID

	// Name fabric 名称（空表示不关心）
	Name string

	// ProvName provider 名称
	ProvName string

	// ProvVersion provider 版本（0 表示不关心）
	ProvVersion uint32
}

// DomainAttr domain 属性
type DomainAttr struct {
	// Domain 指定的 domain 对象（零值表示未指定）
	Domain DomainID

	// Name domain 名称（空表示不关心）
	Name string

	Threading       Threading
	ControlProgress Progress
	DataProgress    Progress
	ResourceMgmt    ResourceMgmt
	AVType          AVType
	MRMode          MRMode

	MRKeySize  int
	CQDataSize int
	CQCount    int
	EPCount    int
	TxCtxCount int
	RxCtxCount int
	MaxEPTxCtx int
	MaxEPRxCtx int
}

// EPAttr 端点属性
type EPAttr struct {
	// Type 端点类型
	Type EndpointType

	Protocol        Protocol
	ProtocolVersion uint32

	MaxMsgSize      uint64
	MsgPrefixSize   uint64
	MaxOrderRAWSize uint64
	MaxOrderWARSize uint64
	MaxOrderWAWSize uint64
	MemTagFormat    uint64

	TxCtxCount int
	RxCtxCount int
}

// TxAttr 发送上下文属性
type TxAttr struct {
	Caps      Caps
	Mode      Mode
	OpFlags   uint64
	MsgOrder  Order
	CompOrder Order

	InjectSize  uint64
	Size        uint64
	IOVLimit    int
	RMAIOVLimit int
}

// RxAttr 接收上下文属性
type RxAttr struct {
	Caps      Caps
	Mode      Mode
	OpFlags   uint64
	MsgOrder  Order
	CompOrder Order

	TotalBufferedRecv uint64
	Size              uint64
	IOVLimit          int
}

// ============================================================================
//                              Info - hints 与发现结果
// ============================================================================

// Info 描述一个传输配置
//
// 作为调用者输入时是 hints（只读，不会被修改）；
// 作为发现结果时每个 Info 对应一个可用的（地址，端点类型）组合。
type Info struct {
	Caps       Caps
	Mode       Mode
	AddrFormat AddrFormat

	// SrcAddr 源地址（无效值表示缺省）
	SrcAddr netip.AddrPort

	// DestAddr 目的地址（无效值表示缺省）
	DestAddr netip.AddrPort

	TxAttr     *TxAttr
	RxAttr     *RxAttr
	EPAttr     *EPAttr
	DomainAttr *DomainAttr
	FabricAttr *FabricAttr
}

// EndpointType 返回 hints 请求的端点类型，未指定时返回 EPUnspec
func (i *Info) EndpointType() EndpointType {
	if i == nil || i.EPAttr == nil {
		return EPUnspec
	}
	return i.EPAttr.Type
}

// Clone 深拷贝
func (i *Info) Clone() *Info {
	if i == nil {
		return nil
	}
	c := *i
	if i.TxAttr != nil {
		tx := *i.TxAttr
		c.TxAttr = &tx
	}
	if i.RxAttr != nil {
		rx := *i.RxAttr
		c.RxAttr = &rx
	}
	if i.EPAttr != nil {
		ep := *i.EPAttr
		c.EPAttr = &ep
	}
	if i.DomainAttr != nil {
		dom := *i.DomainAttr
		c.DomainAttr = &dom
	}
	if i.FabricAttr != nil {
		fab := *i.FabricAttr
		c.FabricAttr = &fab
	}
	return &c
}
