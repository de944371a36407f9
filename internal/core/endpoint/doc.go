// Package endpoint 实现三种端点类型的属性协商与 info 构建
//
// 每种类型由一个 Profile 描述（默认属性、主/次能力集、是否需要源地址），
// Kind 基于 Profile 实现 interfaces.EndpointKind。
//
//	table := endpoint.DefaultKindTable()
//	for _, kind := range table.All() { // msg, dgram, rdm
//	    infos, err := kind.BuildInfo(src, dest, hints)
//	}
//
// 校验失败和地址不适用都返回 types.ErrNoData，便于发现流程跳过该类型。
package endpoint
