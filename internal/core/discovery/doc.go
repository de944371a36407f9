// Package discovery 实现 provider 的发现流程
//
// Orchestrator.GetInfo 把调用者的 node、service、flags 与 hints
// 转换为有序的 info 描述符列表：
//
//  1. 校验 hints 中地址的形状（只接受 IPv4 套接字地址）
//  2. 校验 hints 能否被满足
//  3. 没有任何寻址信息时以本机主机名作为 node
//  4. hints 指定端点类型时只构建该类型
//  5. 否则按 msg、dgram、rdm 顺序逐类构建并拼接结果，
//     某类返回 types.ErrNoData 时跳过，其他错误立即中止
//
// 结果每次调用新分配，归调用者所有；hints 不会被修改。
package discovery
