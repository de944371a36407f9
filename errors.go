package sockprov

import (
	"errors"

	"github.com/dep2p/go-sockprov/pkg/types"
)

// 公共错误定义
//
// 与 pkg/types 中的错误是同一值，可直接用 errors.Is 比较。
var (
	// ────────────────────────────────────────────────────────────────────────
	// 协商错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrNoData 没有任何配置满足要求
	ErrNoData = types.ErrNoData

	// ErrInvalidArgument 输入格式错误
	ErrInvalidArgument = types.ErrInvalidArgument

	// ────────────────────────────────────────────────────────────────────────
	// 生命周期错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrBusy 对象仍被引用
	ErrBusy = types.ErrBusy

	// ErrClosed 对象已关闭
	ErrClosed = types.ErrClosed

	// ErrProviderClosed provider 已关闭
	ErrProviderClosed = errors.New("provider closed")
)

// OSError 名字解析或套接字操作的底层错误
type OSError = types.OSError
