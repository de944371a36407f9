package interfaces

import (
	"context"
	"net/netip"
)

// HostResolver 主机名到 IPv4 地址的解析
type HostResolver interface {
	// LookupIPv4 返回主机的 IPv4 地址，找不到时返回错误
	LookupIPv4(ctx context.Context, host string) ([]netip.Addr, error)
}
