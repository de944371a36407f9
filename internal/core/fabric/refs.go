package fabric

import "sync/atomic"

// refCount 对象引用计数，非零表示忙
type refCount struct {
	n atomic.Int32
}

// Ref 增加引用
func (r *refCount) Ref() int {
	return int(r.n.Add(1))
}

// Unref 释放引用，计数不会低于零
func (r *refCount) Unref() int {
	for {
		cur := r.n.Load()
		if cur == 0 {
			return 0
		}
		if r.n.CompareAndSwap(cur, cur-1) {
			return int(cur - 1)
		}
	}
}

// Refs 返回当前引用数
func (r *refCount) Refs() int {
	return int(r.n.Load())
}
