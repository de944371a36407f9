package params

// ============================================================================
//                              参数定义
// ============================================================================

// Type 参数类型
type Type int

const (
	// TypeInt 整数参数
	TypeInt Type = iota
	// TypeString 字符串参数
	TypeString
)

// String 返回类型名
func (t Type) String() string {
	if t == TypeString {
		return "string"
	}
	return "int"
}

// 参数名
const (
	NamePEWaitTime     = "pe_waittime"
	NameMaxConnRetry   = "max_conn_retry"
	NameDefConnMapSize = "def_conn_map_sz"
	NameDefAVSize      = "def_av_sz"
	NameDefCQSize      = "def_cq_sz"
	NameDefEQSize      = "def_eq_sz"
	NamePEAffinity     = "pe_affinity"
	NameDgramDropRate  = "dgram_drop_rate"
)

// Definition 一个可调参数的定义
type Definition struct {
	Name        string
	Type        Type
	Description string

	// DebugOnly 仅在调试构建中定义
	DebugOnly bool
}

var definitions = []Definition{
	{Name: NamePEWaitTime, Type: TypeInt,
		Description: "How many milliseconds to spin while waiting for progress"},
	{Name: NameMaxConnRetry, Type: TypeInt,
		Description: "Number of connection retries before reporting as failure"},
	{Name: NameDefConnMapSize, Type: TypeInt,
		Description: "Default connection map size"},
	{Name: NameDefAVSize, Type: TypeInt,
		Description: "Default address vector size"},
	{Name: NameDefCQSize, Type: TypeInt,
		Description: "Default completion queue size"},
	{Name: NameDefEQSize, Type: TypeInt,
		Description: "Default event queue size"},
	{Name: NamePEAffinity, Type: TypeString,
		Description: "If specified, bind the progress thread to the indicated range(s) of Linux virtual processor ID(s). " +
			"This option is currently not supported on OS X. Usage: id_start[-id_end[:stride]][,]"},
	{Name: NameDgramDropRate, Type: TypeInt, DebugOnly: true,
		Description: "Drop every Nth dgram frame (debug only)"},
}

// Definitions 返回当前构建中定义的参数
func Definitions() []Definition {
	out := make([]Definition, 0, len(definitions))
	for _, d := range definitions {
		if d.DebugOnly && !DebugBuild {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Lookup 按名称查找参数定义
func Lookup(name string) (Definition, bool) {
	for _, d := range Definitions() {
		if d.Name == name {
			return d, true
		}
	}
	return Definition{}, false
}
