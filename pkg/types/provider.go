package types

import "fmt"

// ============================================================================
//                              Provider 身份常量
// ============================================================================

const (
	// FabricName 本 provider 固定的 fabric 名称
	FabricName = "IP"

	// DomainName 本 provider 固定的 domain 名称
	DomainName = "sockets"

	// ProviderName 本 provider 名称
	ProviderName = "sockets"

	// MajorVersion provider 主版本号
	MajorVersion = 2

	// MinorVersion provider 次版本号
	MinorVersion = 0
)

// Version 将主次版本号编码为单个整数（高 16 位主版本，低 16 位次版本）
func Version(major, minor uint32) uint32 {
	return major<<16 | minor
}

// VersionMajor 返回编码版本的主版本号
func VersionMajor(v uint32) uint32 {
	return v >> 16
}

// VersionMinor 返回编码版本的次版本号
func VersionMinor(v uint32) uint32 {
	return v & 0xFFFF
}

// FormatVersion 返回 "major.minor" 形式
func FormatVersion(v uint32) string {
	return fmt.Sprintf("%d.%d", VersionMajor(v), VersionMinor(v))
}

var (
	// ProviderVersion 本次构建的 provider 版本
	ProviderVersion = Version(MajorVersion, MinorVersion)

	// APIVersion provider 实现的接口版本
	APIVersion = Version(1, 1)
)
