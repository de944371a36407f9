package verifier

import "go.uber.org/fx"

// Module 返回校验模块的 Fx 选项
func Module() fx.Option {
	return fx.Module("verifier",
		fx.Provide(New),
	)
}
