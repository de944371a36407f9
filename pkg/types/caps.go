package types

import "strings"

// ============================================================================
//                              Caps - 能力位掩码
// ============================================================================

// Caps 能力位掩码
//
// 位定义与常见 fabric 接口保持一致，便于与外部工具互通。
type Caps uint64

const (
	// CapMsg 消息收发
	CapMsg Caps = 1 << 1
	// CapRMA 远程内存访问
	CapRMA Caps = 1 << 2
	// CapTagged 带标签消息
	CapTagged Caps = 1 << 3
	// CapAtomic 原子操作
	CapAtomic Caps = 1 << 4
	// CapMulticast 组播
	CapMulticast Caps = 1 << 5
	// CapRead 发起读
	CapRead Caps = 1 << 8
	// CapWrite 发起写
	CapWrite Caps = 1 << 9
	// CapRecv 接收
	CapRecv Caps = 1 << 10
	// CapSend 发送
	CapSend Caps = 1 << 11
	// CapRemoteRead 被远端读
	CapRemoteRead Caps = 1 << 12
	// CapRemoteWrite 被远端写
	CapRemoteWrite Caps = 1 << 13
	// CapMultiRecv 多次接收缓冲
	CapMultiRecv Caps = 1 << 16
	// CapRemoteCQData 远端完成数据
	CapRemoteCQData Caps = 1 << 17
	// CapTrigger 触发式操作
	CapTrigger Caps = 1 << 20
	// CapFence 栅栏
	CapFence Caps = 1 << 21
	// CapRMAEvent RMA 事件
	CapRMAEvent Caps = 1 << 56
	// CapSource 报告来源地址
	CapSource Caps = 1 << 57
	// CapNamedRxCtx 具名接收上下文
	CapNamedRxCtx Caps = 1 << 58
	// CapDirectedRecv 定向接收
	CapDirectedRecv Caps = 1 << 59
)

var capNames = []struct {
	cap  Caps
	name string
}{
	{CapMsg, "FI_MSG"},
	{CapRMA, "FI_RMA"},
	{CapTagged, "FI_TAGGED"},
	{CapAtomic, "FI_ATOMIC"},
	{CapMulticast, "FI_MULTICAST"},
	{CapRead, "FI_READ"},
	{CapWrite, "FI_WRITE"},
	{CapRecv, "FI_RECV"},
	{CapSend, "FI_SEND"},
	{CapRemoteRead, "FI_REMOTE_READ"},
	{CapRemoteWrite, "FI_REMOTE_WRITE"},
	{CapMultiRecv, "FI_MULTI_RECV"},
	{CapRemoteCQData, "FI_REMOTE_CQ_DATA"},
	{CapTrigger, "FI_TRIGGER"},
	{CapFence, "FI_FENCE"},
	{CapRMAEvent, "FI_RMA_EVENT"},
	{CapSource, "FI_SOURCE"},
	{CapNamedRxCtx, "FI_NAMED_RX_CTX"},
	{CapDirectedRecv, "FI_DIRECTED_RECV"},
}

// Subset 是否为 mask 的子集（c | mask == mask）
func (c Caps) Subset(mask Caps) bool {
	return c|mask == mask
}

// Has 是否包含全部指定能力
func (c Caps) Has(want Caps) bool {
	return c&want == want
}

// String 返回 "FI_MSG | FI_RMA" 形式
func (c Caps) String() string {
	if c == 0 {
		return "0"
	}
	var parts []string
	for _, n := range capNames {
		if c&n.cap != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, " | ")
}

// ParseCaps 解析 "FI_MSG|FI_RMA" 或 "msg,rma" 形式的能力列表
func ParseCaps(s string) (Caps, error) {
	var c Caps
	for _, field := range strings.FieldsFunc(s, func(r rune) bool {
		return r == '|' || r == ',' || r == ' '
	}) {
		name := strings.ToUpper(field)
		if !strings.HasPrefix(name, "FI_") {
			name = "FI_" + name
		}
		found := false
		for _, n := range capNames {
			if n.name == name {
				c |= n.cap
				found = true
				break
			}
		}
		if !found {
			return 0, &unknownCapError{name: field}
		}
	}
	return c, nil
}

type unknownCapError struct {
	name string
}

func (e *unknownCapError) Error() string {
	return "unknown capability " + e.name
}

func (e *unknownCapError) Unwrap() error {
	return ErrInvalidArgument
}
