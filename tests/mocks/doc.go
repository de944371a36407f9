// Package mocks 提供 provider 接口的测试替身
//
// 每个 Mock 都支持通过 XxxFunc 字段注入自定义行为，
// 未设置时使用简单的默认行为，并记录调用以便验证。
//
//   - MockEndpointKind: 模拟 interfaces.EndpointKind
//   - MockParamSource: 模拟 interfaces.ParamSource
//   - MockHostResolver: 模拟 interfaces.HostResolver
//   - MockObjectLookup: 模拟 interfaces.ObjectLookup
//
// 自定义行为:
//
//	kind := mocks.NewMockEndpointKind(types.EPRDM)
//	kind.BuildInfoFunc = func(src, dest netip.AddrPort, hints *types.Info) ([]*types.Info, error) {
//	    return nil, types.ErrNoData
//	}
package mocks
