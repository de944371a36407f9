// Package params 管理 provider 的可调参数
//
// 参数定义（名称、类型、说明）集中在 Definitions 中，
// 值来自 interfaces.ParamSource（环境变量、映射表或二者的链），
// 缺失的键使用 config.ParamsConfig 中的默认值。
//
// Loader 保证每个实例只读取一次参数来源，无论有多少并发的
// fabric 创建触发加载。
//
// 调试构建（-tags sockdebug）额外定义 dgram_drop_rate。
package params
