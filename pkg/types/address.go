package types

import "net/netip"

// ============================================================================
//                              套接字地址
// ============================================================================

const (
	// SockaddrInLen IPv4 套接字地址结构的长度
	SockaddrInLen = 16

	// SockaddrIn6Len IPv6 套接字地址结构的长度
	SockaddrIn6Len = 28
)

// AddrLen 返回地址对应的套接字地址结构长度
//
// 地址无效（缺省）时返回 0。IPv4 映射的 IPv6 地址按 IPv4 计算。
func AddrLen(a netip.AddrPort) int {
	if !a.IsValid() {
		return 0
	}
	if a.Addr().Unmap().Is4() {
		return SockaddrInLen
	}
	return SockaddrIn6Len
}

// IsSockaddrIn 地址是否为有效的 IPv4 套接字地址
func IsSockaddrIn(a netip.AddrPort) bool {
	return AddrLen(a) == SockaddrInLen
}

// ToSockaddrIn 将 IPv4 映射地址规范化为纯 IPv4
func ToSockaddrIn(a netip.AddrPort) netip.AddrPort {
	if !a.IsValid() {
		return a
	}
	return netip.AddrPortFrom(a.Addr().Unmap(), a.Port())
}
