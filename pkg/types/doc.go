// Package types 定义 sockets provider 的公共数据结构
//
// 这是整个系统的最底层包，不依赖任何其他内部包。
// 所有类型都是纯值类型，用于在发现、协商与生命周期模块间传递数据。
//
// # 文件组织
//
// 基础类型:
//   - ids.go      - FabricID, DomainID 对象标识
//   - enums.go    - EndpointType, AddrFormat, GetInfoFlags 及域属性枚举
//   - caps.go     - Caps 能力位掩码
//   - address.go  - 套接字地址长度与判定
//   - errors.go   - 公共错误定义
//
// 协商类型:
//   - info.go     - Info（既作 hints 又作发现结果）及各属性描述符
//   - provider.go - provider 身份常量与版本
package types
