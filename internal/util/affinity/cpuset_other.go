//go:build !linux

package affinity

// Apply 当前平台不支持绑定
func Apply(ids []int) error {
	return ErrUnsupported
}

// Supported 当前平台是否支持绑定
func Supported() bool {
	return false
}
