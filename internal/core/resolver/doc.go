// Package resolver 实现发现流程的地址解析
//
// 只支持 IPv4。解析规则与 getaddrinfo 一致：
//   - 设置 FlagNumericHost 时 node 必须是数字地址
//   - node 为空时，被动（源）端解析为 0.0.0.0，主动端解析为 127.0.0.1
//   - service 可以是端口号或服务名，服务名经 LRU 缓存查询
//
// 只有目的地址时，通过向目的地址 connect 一个临时 UDP 套接字
// 得到本机源地址（不发送数据，端口清零）；失败时回退到本机主机名的地址。
//
// 名字查询通过 interfaces.HostResolver 完成：
//   - SystemResolver：系统解析器
//   - DNSResolver：向配置的 DNS 服务器直接发送 A 记录查询
package resolver
