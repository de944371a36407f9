// Package interfaces 定义 sockets provider 的公共接口
//
// 一个接口文件对应一个外部协作者边界：
//   - endpoint.go  - 端点类型的属性校验与 info 构建
//   - registry.go  - 对象注册表查询与 domain 属性校验
//   - params.go    - 键值参数来源
//   - resolver.go  - 主机名解析
package interfaces
