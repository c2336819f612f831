// Package eventbus 实现类型化事件总线
package eventbus

import pkgif "github.com/dep2p/go-typedbus/pkg/interfaces"

// ============================================================================
// 本地选项函数
// ============================================================================

// Option 总线选项
type Option = pkgif.BusOpt

// WithName 设置总线名称，用于日志和指标标签
//
// 这是一个便利函数，与 pkg/interfaces.WithName 等效
func WithName(name string) Option {
	return pkgif.WithName(name)
}

// WithMetrics 设置指标记录器
//
// 这是一个便利函数，与 pkg/interfaces.WithMetrics 等效
func WithMetrics(r pkgif.MetricsRecorder) Option {
	return pkgif.WithMetrics(r)
}
