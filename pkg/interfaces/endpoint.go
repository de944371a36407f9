// Package interfaces 定义 sockets provider 公共接口
//
// 本文件定义 EndpointKind 接口，抽象每种端点类型的协商能力。
package interfaces

import (
	"net/netip"

	"github.com/dep2p/go-sockprov/pkg/types"
)

// EndpointKind 一种端点类型（msg / dgram / rdm）的协商能力
//
// 每种类型携带自己的属性校验器与 info 构建器，
// 发现流程按类型查找实现而不是按整数枚举分派。
type EndpointKind interface {
	// Type 返回端点类型
	Type() types.EndpointType

	// Caps 返回该类型支持的最大能力集
	Caps() types.Caps

	// VerifyAttr 校验端点/发送/接收属性，不满足时返回 types.ErrNoData
	VerifyAttr(ep *types.EPAttr, tx *types.TxAttr, rx *types.RxAttr) error

	// BuildInfo 为给定地址对构建 info 描述符
	//
	// 组合不适用时必须返回 types.ErrNoData 而不是其他错误。
	BuildInfo(src, dest netip.AddrPort, hints *types.Info) ([]*types.Info, error)
}
