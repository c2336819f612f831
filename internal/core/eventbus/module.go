// Package eventbus 实现类型化事件总线
package eventbus

import (
	"context"

	"go.uber.org/fx"

	"github.com/dep2p/go-typedbus/internal/config"
	pkgif "github.com/dep2p/go-typedbus/pkg/interfaces"
)

// ============================================================================
// Fx 模块
// ============================================================================

// Params Fx 模块依赖参数
type Params struct {
	fx.In

	Provider *config.Provider      `optional:"true"`
	Recorder pkgif.MetricsRecorder `optional:"true"`
}

// Module 返回超集类型为 E 的事件总线 Fx 模块
//
// 容量和名称来自 *config.Provider（未提供时使用默认配置），
// 指标记录器来自容器中可选的 MetricsRecorder。opts 在配置之后应用。
func Module[E any](opts ...Option) fx.Option {
	return fx.Module("eventbus",
		fx.Provide(func(p Params) (*Bus[E], error) {
			return ProvideBus[E](p, opts...)
		}),
		fx.Invoke(registerLifecycle[E]),
	)
}

// ProvideBus 根据依赖参数创建事件总线
func ProvideBus[E any](p Params, opts ...Option) (*Bus[E], error) {
	cfg := config.Default()
	if p.Provider != nil {
		cfg = p.Provider.GetConfig()
	}

	all := []Option{WithName(cfg.Name)}
	if p.Recorder != nil {
		all = append(all, WithMetrics(p.Recorder))
	}
	all = append(all, opts...)

	return New[E](cfg.Capacity, all...)
}

// lifecycleInput 生命周期输入参数
type lifecycleInput[E any] struct {
	fx.In
	LC  fx.Lifecycle
	Bus *Bus[E]
}

// registerLifecycle 注册生命周期
//
// 停止时释放总线自身的发送端。
func registerLifecycle[E any](input lifecycleInput[E]) {
	input.LC.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return input.Bus.Close()
		},
	})
}

// ============================================================================
// 模块元信息
// ============================================================================

const (
	// Version 模块版本
	Version = "1.0.0"
	// Name 模块名称
	Name = "eventbus"
	// Description 模块描述
	Description = "类型化事件总线模块，在共享广播通道上提供按子类型过滤的发送/接收视图"
)
