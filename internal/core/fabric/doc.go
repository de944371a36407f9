// Package fabric 管理 fabric 与 domain 对象的生命周期
//
// # 组成
//
//   - Registry：fabric 集合与 domain 集合，共用一把粗粒度锁，
//     实现 interfaces.ObjectLookup，是校验 hints 中对象身份的唯一途径
//   - ServiceTable：每个 fabric 独立的服务号占用表，有自己的锁
//   - Manager：创建 fabric、打开 domain，首次创建时加载可调参数
//   - VerifyDomainAttr：domain 属性协商
//
// # 生命周期
//
// fabric 与 domain 都带原子引用计数，计数非零时 Close 返回
// types.ErrBusy 且对象保持注册。domain 持有所属 fabric 的一个引用。
//
// 锁顺序：对象锁先于 Registry 锁；持有 Registry 锁时不做解析或构建。
package fabric
