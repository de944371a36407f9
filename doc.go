// Package sockprov 提供 sockets 传输 provider 的发现与协商核心
//
// 调用者给出寻址信息（node、service、标志）和期望的能力/端点语义（hints），
// provider 返回它能提供的具体传输配置（info 描述符）列表，
// 并维护支撑这些配置的 Fabric 与 Domain 对象注册表。
//
// # 快速开始
//
//	import "github.com/dep2p/go-sockprov"
//
//	prov, err := sockprov.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer prov.Close()
//
//	// 枚举本机可用的全部端点类型
//	infos, err := prov.GetInfo(ctx, "", "", 0, nil)
//
//	// 只要可靠数据报端点
//	hints := &sockprov.Info{EPAttr: &sockprov.EPAttr{Type: sockprov.EPRDM}}
//	infos, err = prov.GetInfo(ctx, "10.0.0.2", "7471", 0, hints)
//
//	// 用描述符中的 fabric 属性创建 fabric
//	fab, err := prov.Fabric(infos[0].FabricAttr, nil)
//
// # 结果顺序
//
// 未指定端点类型时按 msg、dgram、rdm 的顺序枚举，
// 某一类型不适用时跳过；全部不适用时返回 ErrNoData。
//
// # 错误
//
//   - ErrNoData: 参数合法但没有任何配置满足要求
//   - ErrInvalidArgument: 输入格式错误，例如 hints 中的地址不是 IPv4 套接字地址
//   - ErrBusy: 关闭仍被引用的对象
//
// # 文件组织
//
//   - provider.go: Provider 入口与方法
//   - options.go: 配置选项
//   - fx.go: 内部模块组装
//   - types.go: 公共类型别名
//   - errors.go: 公共错误
//   - version.go: 版本信息
package sockprov
