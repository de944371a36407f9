package registry

import "sync"

// Set 身份索引的对象集合
type Set[K comparable, V any] struct {
	mu    *sync.Mutex
	items map[K]V
	order []K
}

// NewSet 创建集合
//
// mu 为 nil 时集合使用自己的锁。
func NewSet[K comparable, V any](mu *sync.Mutex) *Set[K, V] {
	if mu == nil {
		mu = new(sync.Mutex)
	}
	return &Set[K, V]{
		mu:    mu,
		items: make(map[K]V),
	}
}

// Add 加入对象，已存在时替换值但保持原位置
func (s *Set[K, V]) Add(k K, v V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[k]; !ok {
		s.order = append(s.order, k)
	}
	s.items[k] = v
}

// Remove 移除对象，不存在时为空操作
//
// 返回对象是否曾存在。
func (s *Set[K, V]) Remove(k K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[k]; !ok {
		return false
	}
	delete(s.items, k)
	for i, key := range s.order {
		if key == k {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Contains 检查对象是否存在
func (s *Set[K, V]) Contains(k K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.items[k]
	return ok
}

// Get 获取对象
func (s *Set[K, V]) Get(k K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.items[k]
	return v, ok
}

// First 返回最早加入且仍存在的对象
func (s *Set[K, V]) First() (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.order) == 0 {
		var zero V
		return zero, false
	}
	return s.items[s.order[0]], true
}

// Len 返回对象数量
func (s *Set[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.items)
}

// Snapshot 按插入顺序返回对象副本
func (s *Set[K, V]) Snapshot() []V {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]V, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.items[k])
	}
	return out
}
