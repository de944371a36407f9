// Package registry 提供按身份索引的对象集合
//
// Set 不持有自己的锁，调用方传入 *sync.Mutex，使多个集合
// （例如 fabric 与 domain 集合）可以共用一把粗粒度锁。
// 集合保留插入顺序，First 返回最早加入且仍存在的对象。
package registry
