// Package types 定义 sockets provider 的公共数据结构
//
// 本文件定义所有公共错误类型。
package types

import (
	"errors"
	"fmt"
)

// ============================================================================
//                              协商相关错误
// ============================================================================

var (
	// ErrNoData 参数合法但没有任何配置满足要求
	//
	// 这是"不支持"场景的主要结果，多类型枚举时会被吸收。
	ErrNoData = errors.New("no matching data")

	// ErrInvalidArgument 输入格式错误（地址长度不符、fabric 名称不符等）
	ErrInvalidArgument = errors.New("invalid argument")
)

// ============================================================================
//                              生命周期相关错误
// ============================================================================

var (
	// ErrBusy 对象仍有存活的依赖，不能关闭
	ErrBusy = errors.New("resource busy")

	// ErrNoMemory 分配失败
	ErrNoMemory = errors.New("out of memory")

	// ErrClosed 对象已关闭
	ErrClosed = fmt.Errorf("object already closed: %w", ErrInvalidArgument)
)

// ============================================================================
//                              系统调用错误
// ============================================================================

// OSError 包装名字解析或套接字操作的底层错误
type OSError struct {
	// Op 失败的操作（如 "dial udp4"、"hostname"）
	Op string

	// Err 底层错误
	Err error
}

// NewOSError 创建 OSError，err 为 nil 时返回 nil
func NewOSError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &OSError{Op: op, Err: err}
}

// Error 实现 error 接口
func (e *OSError) Error() string {
	return "os error: " + e.Op + ": " + e.Err.Error()
}

// Unwrap 返回底层错误
func (e *OSError) Unwrap() error {
	return e.Err
}
