package interfaces

// ParamSource 键值参数来源
//
// 每个方法返回 (值, 是否存在, 错误)。值存在但无法解析时返回错误。
type ParamSource interface {
	// GetInt 读取整数参数
	GetInt(name string) (int, bool, error)

	// GetString 读取字符串参数
	GetString(name string) (string, bool, error)
}
