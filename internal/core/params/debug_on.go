//go:build sockdebug

package params

// DebugBuild 是否为调试构建
const DebugBuild = true
