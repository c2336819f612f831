package typedbus

import (
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/dep2p/go-typedbus/internal/config"
	"github.com/dep2p/go-typedbus/internal/core/eventbus"
	"github.com/dep2p/go-typedbus/internal/core/metrics"
	"github.com/dep2p/go-typedbus/pkg/lib/log"
)

var fxLogger = log.Logger("typedbus/fx")

// Module 返回组装好的 Fx 模块
//
// 包含：
//   - config: 提供 *Config 和 *config.Provider
//   - metrics: 配置启用时提供 MetricsRecorder 和 *MetricsCollector
//   - eventbus: 提供 *Bus[E]，停止时关闭总线自身的发送端
//
// cfg 为 nil 时使用默认配置。
func Module[E any](cfg *Config, opts ...Option) fx.Option {
	if cfg == nil {
		cfg = config.Default()
	}
	return fx.Options(
		config.Module(cfg),
		metrics.Module,
		eventbus.Module[E](opts...),
	)
}

// NewApp 构建包含事件总线模块的 Fx 应用
//
// 配置在组装前验证。日志级别为 debug 时输出 Fx 生命周期事件，
// 其他情况下静默。extra 为调用方的 fx.Invoke / fx.Provide 等选项。
func NewApp[E any](cfg *Config, extra ...fx.Option) (*fx.App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	modules := []fx.Option{
		Module[E](cfg),
		fx.WithLogger(newFxEventLogger(cfg.Log.Level)),
	}
	modules = append(modules, extra...)

	fxLogger.Debug("building fx app",
		"bus", cfg.Name,
		"capacity", cfg.Capacity,
		"metrics", cfg.Metrics.Enabled)

	return fx.New(modules...), nil
}

// newFxEventLogger 返回 Fx 事件日志构造函数
func newFxEventLogger(level string) func() fxevent.Logger {
	return func() fxevent.Logger {
		if level != "debug" {
			return &fxevent.ZapLogger{Logger: zap.NewNop()}
		}
		zl, err := zap.NewDevelopment()
		if err != nil {
			return &fxevent.ZapLogger{Logger: zap.NewNop()}
		}
		return &fxevent.ZapLogger{Logger: zl.Named("fx")}
	}
}
