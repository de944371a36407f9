package endpoint

import "go.uber.org/fx"

// Module 返回端点类型模块的 Fx 选项
func Module() fx.Option {
	return fx.Module("endpoint",
		fx.Provide(DefaultKindTable),
	)
}
