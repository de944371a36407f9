//go:build linux

package affinity

import "golang.org/x/sys/unix"

// CPUSet 将 CPU 编号转换为 unix.CPUSet
func CPUSet(ids []int) (*unix.CPUSet, error) {
	var set unix.CPUSet
	set.Zero()
	for _, id := range ids {
		if id < 0 || id >= MaxCPU {
			return nil, ErrInvalidSpec
		}
		set.Set(id)
	}
	return &set, nil
}

// Apply 将当前线程绑定到指定 CPU
//
// 调用方需要先 runtime.LockOSThread。
func Apply(ids []int) error {
	set, err := CPUSet(ids)
	if err != nil {
		return err
	}
	return unix.SchedSetaffinity(0, set)
}

// Supported 当前平台是否支持绑定
func Supported() bool {
	return true
}
