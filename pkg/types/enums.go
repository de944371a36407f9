package types

import (
	"fmt"
	"strings"
)

// ============================================================================
//                              EndpointType - 端点类型
// ============================================================================

// EndpointType 端点类型
type EndpointType int

const (
	// EPUnspec 未指定（协商时按流式端点检查属性）
	EPUnspec EndpointType = iota
	// EPMsg 面向连接的可靠有序字节流
	EPMsg
	// EPDgram 不可靠无序的数据报
	EPDgram
	// EPRDM 可靠无序的消息
	EPRDM
)

// String 返回端点类型的字符串表示
func (t EndpointType) String() string {
	switch t {
	case EPUnspec:
		return "unspec"
	case EPMsg:
		return "msg"
	case EPDgram:
		return "dgram"
	case EPRDM:
		return "rdm"
	default:
		return fmt.Sprintf("ep_type(%d)", int(t))
	}
}

// ParseEndpointType 解析端点类型名称（不区分大小写，接受 FI_EP_ 前缀）
func ParseEndpointType(s string) (EndpointType, error) {
	name := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "fi_ep_")
	switch name {
	case "", "unspec":
		return EPUnspec, nil
	case "msg":
		return EPMsg, nil
	case "dgram":
		return EPDgram, nil
	case "rdm":
		return EPRDM, nil
	default:
		return EPUnspec, fmt.Errorf("unknown endpoint type %q: %w", s, ErrInvalidArgument)
	}
}

// ============================================================================
//                              AddrFormat - 地址格式
// ============================================================================

// AddrFormat 地址格式
type AddrFormat int

const (
	// FormatUnspec 未指定
	FormatUnspec AddrFormat = iota
	// FormatSockaddr 通用套接字地址
	FormatSockaddr
	// FormatSockaddrIn IPv4 套接字地址
	FormatSockaddrIn
	// FormatSockaddrIn6 IPv6 套接字地址
	FormatSockaddrIn6
	// FormatSockaddrIB InfiniBand 套接字地址
	FormatSockaddrIB
	// FormatPSMX PSM 地址
	FormatPSMX
)

// String 返回地址格式的字符串表示
func (f AddrFormat) String() string {
	switch f {
	case FormatUnspec:
		return "FI_FORMAT_UNSPEC"
	case FormatSockaddr:
		return "FI_SOCKADDR"
	case FormatSockaddrIn:
		return "FI_SOCKADDR_IN"
	case FormatSockaddrIn6:
		return "FI_SOCKADDR_IN6"
	case FormatSockaddrIB:
		return "FI_SOCKADDR_IB"
	case FormatPSMX:
		return "FI_ADDR_PSMX"
	default:
		return fmt.Sprintf("addr_format(%d)", int(f))
	}
}

// ============================================================================
//                              GetInfoFlags - 发现标志
// ============================================================================

// GetInfoFlags 发现调用的标志位
type GetInfoFlags uint64

const (
	// FlagNumericHost node 必须是数字地址，禁用名字解析
	FlagNumericHost GetInfoFlags = 1 << 55
	// FlagSource node/service 描述本地（源）端，用于被动监听
	FlagSource GetInfoFlags = 1 << 57
)

// Has 是否包含指定标志
func (f GetInfoFlags) Has(flag GetInfoFlags) bool {
	return f&flag != 0
}

// ============================================================================
//                              Protocol - 端点协议
// ============================================================================

// Protocol 端点线上协议
type Protocol uint32

const (
	// ProtoUnspec 未指定
	ProtoUnspec Protocol = iota
	// ProtoSockTCP 基于 TCP 的套接字协议
	ProtoSockTCP Protocol = 9
	// ProtoSockUDP 基于 UDP 的套接字协议
	ProtoSockUDP Protocol = 10
)

// String 返回协议的字符串表示
func (p Protocol) String() string {
	switch p {
	case ProtoUnspec:
		return "FI_PROTO_UNSPEC"
	case ProtoSockTCP:
		return "FI_PROTO_SOCK_TCP"
	case ProtoSockUDP:
		return "FI_PROTO_SOCK_UDP"
	default:
		return fmt.Sprintf("proto(%d)", uint32(p))
	}
}

// ============================================================================
//                              Domain 属性枚举
// ============================================================================

// Threading 线程模型
type Threading int

const (
	// ThreadUnspec 未指定
	ThreadUnspec Threading = iota
	// ThreadSafe 完全线程安全
	ThreadSafe
	// ThreadFID 每个对象单线程访问
	ThreadFID
	// ThreadDomain 每个 domain 单线程访问
	ThreadDomain
	// ThreadCompletion 每个完成队列单线程访问
	ThreadCompletion
	// ThreadEndpoint 每个端点单线程访问
	ThreadEndpoint
)

// Progress 进度模型
type Progress int

const (
	// ProgressUnspec 未指定
	ProgressUnspec Progress = iota
	// ProgressAuto provider 自动推进
	ProgressAuto
	// ProgressManual 调用者驱动推进
	ProgressManual
)

// ResourceMgmt 资源管理模式
type ResourceMgmt int

const (
	// RMUnspec 未指定
	RMUnspec ResourceMgmt = iota
	// RMDisabled 关闭
	RMDisabled
	// RMEnabled 开启
	RMEnabled
)

// AVType 地址向量类型
type AVType int

const (
	// AVUnspec 未指定
	AVUnspec AVType = iota
	// AVMap 映射型
	AVMap
	// AVTable 表型
	AVTable
)

// MRMode 内存注册模式
type MRMode int

const (
	// MRUnspec 未指定
	MRUnspec MRMode = iota
	// MRBasic 基础模式
	MRBasic
	// MRScalable 可扩展模式
	MRScalable
)

// ============================================================================
//                              顺序与模式位
// ============================================================================

// Order 消息/完成顺序位
type Order uint64

const (
	// OrderNone 无顺序保证
	OrderNone Order = 0
	// OrderRAR 读后读
	OrderRAR Order = 1 << 0
	// OrderRAW 写后读
	OrderRAW Order = 1 << 1
	// OrderRAS 发后读
	OrderRAS Order = 1 << 2
	// OrderWAR 读后写
	OrderWAR Order = 1 << 3
	// OrderWAW 写后写
	OrderWAW Order = 1 << 4
	// OrderWAS 发后写
	OrderWAS Order = 1 << 5
	// OrderSAR 读后发
	OrderSAR Order = 1 << 6
	// OrderSAW 写后发
	OrderSAW Order = 1 << 7
	// OrderSAS 发后发
	OrderSAS Order = 1 << 8
	// OrderStrict 完成严格有序
	OrderStrict Order = 0x1FF
	// OrderData 数据有序
	OrderData Order = 1 << 16
)

// Subset 是否为 mask 的子集
func (o Order) Subset(mask Order) bool {
	return o|mask == mask
}

// Mode 调用者需要遵守的模式位
type Mode uint64

const (
	// ModeContext 操作需要调用者提供上下文结构
	ModeContext Mode = 1 << 59
	// ModeMsgPrefix 消息需要前缀空间
	ModeMsgPrefix Mode = 1 << 58
)
