// Package metrics 提供 provider 的监控指标
//
// 基于 prometheus client_golang 实现：
//   - getinfo_total{result}：发现调用次数，按结果分类
//   - getinfo_duration_seconds：发现调用耗时
//   - descriptors_total{ep_type}：按端点类型统计返回的描述符数量
//   - open_fabrics / open_domains：当前存活的 fabric 与 domain 数量
//
// # 快速开始
//
//	reg := prometheus.NewRegistry()
//	m, err := metrics.New("sockprov", reg)
//
//	m.ObserveGetInfo(err, elapsed)
//	m.FabricOpened()
//
// 所有方法对 nil *Metrics 安全，关闭指标时组件直接持有 nil。
package metrics
