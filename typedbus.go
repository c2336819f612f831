package typedbus

import (
	"github.com/dep2p/go-typedbus/internal/config"
	"github.com/dep2p/go-typedbus/internal/core/eventbus"
	"github.com/dep2p/go-typedbus/internal/core/metrics"
	pkgif "github.com/dep2p/go-typedbus/pkg/interfaces"
)

// ════════════════════════════════════════════════════════════════════════════
// 类型
// ════════════════════════════════════════════════════════════════════════════

// Bus 类型化事件总线，超集事件类型为 E
type Bus[E any] = eventbus.Bus[E]

// EventSender 子类型 T 的发送视图
type EventSender[E, T any] = eventbus.EventSender[E, T]

// EventReceiver 子类型 T 的接收视图
type EventReceiver[E, T any] = eventbus.EventReceiver[E, T]

// Widener 子类型到超集类型的嵌入
type Widener[E any] = pkgif.Widener[E]

// Narrower 超集类型到子类型的可失败提取（在 *T 上实现）
type Narrower[E, T any] = pkgif.Narrower[E, T]

// MetricsRecorder 总线指标记录接口
type MetricsRecorder = pkgif.MetricsRecorder

// MetricsCollector 基于 Prometheus 的 MetricsRecorder 实现
type MetricsCollector = metrics.Collector

// Option 总线选项
type Option = eventbus.Option

// Config 总线配置
type Config = config.Config

// MetricsConfig 指标配置
type MetricsConfig = config.MetricsConfig

// LogConfig 日志配置
type LogConfig = config.LogConfig

// ════════════════════════════════════════════════════════════════════════════
// 总线
// ════════════════════════════════════════════════════════════════════════════

// New 创建容量为 capacity 的事件总线
//
// capacity 必须为正数，否则返回 ErrInvalidCapacity。
func New[E any](capacity int, opts ...Option) (*Bus[E], error) {
	return eventbus.New[E](capacity, opts...)
}

// NewFromConfig 按配置创建事件总线
//
// cfg 为 nil 时使用 DefaultConfig()。配置中的指标与日志段不在这里处理，
// 需要时分别使用 NewMetrics 和 SetupLogging。
func NewFromConfig[E any](cfg *Config, opts ...Option) (*Bus[E], error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	all := append([]Option{WithName(cfg.Name)}, opts...)
	return eventbus.New[E](cfg.Capacity, all...)
}

// WithName 设置总线名称（出现在日志和指标标签中）
func WithName(name string) Option {
	return eventbus.WithName(name)
}

// WithMetrics 设置指标记录器
func WithMetrics(r MetricsRecorder) Option {
	return eventbus.WithMetrics(r)
}

// NewMetrics 创建独立注册表上的 Prometheus 指标收集器
func NewMetrics(namespace string) (*MetricsCollector, error) {
	return metrics.NewCollector(namespace, nil)
}

// ════════════════════════════════════════════════════════════════════════════
// 视图
// ════════════════════════════════════════════════════════════════════════════

// SenderOf 返回子类型 T 的发送视图，T 需实现 Widener[E]
func SenderOf[T Widener[E], E any](b *Bus[E]) *EventSender[E, T] {
	return eventbus.SenderOf[T](b)
}

// SenderWith 使用显式嵌入函数返回发送视图
func SenderWith[E, T any](b *Bus[E], widen func(T) E) *EventSender[E, T] {
	return eventbus.SenderWith(b, widen)
}

// ReceiverOf 返回子类型 T 的接收视图，*T 需实现 Narrower[E, T]
//
// 订阅位于"当前"位置，只能看到创建之后发送的事件。
func ReceiverOf[T, E any, PT Narrower[E, T]](b *Bus[E]) *EventReceiver[E, T] {
	return eventbus.ReceiverOf[T, E, PT](b)
}

// ReceiverWith 使用显式提取函数返回接收视图
func ReceiverWith[E, T any](b *Bus[E], narrow func(E) (T, bool)) *EventReceiver[E, T] {
	return eventbus.ReceiverWith(b, narrow)
}

// ReceiverAll 返回接收全部超集事件的视图
func ReceiverAll[E any](b *Bus[E]) *EventReceiver[E, E] {
	return eventbus.ReceiverAll(b)
}

// Upcast 把 T 嵌入接口类型 E，T 未实现 E 时 panic
func Upcast[E, T any](v T) E {
	return eventbus.Upcast[E](v)
}

// Downcast 通过类型断言从 E 中提取 T
func Downcast[E, T any](e E) (T, bool) {
	return eventbus.Downcast[E, T](e)
}

// ════════════════════════════════════════════════════════════════════════════
// 配置
// ════════════════════════════════════════════════════════════════════════════

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return config.Default()
}

// LoadConfig 从文件和 TYPEDBUS_ 前缀的环境变量加载配置
//
// path 为空时只使用默认值和环境变量。
func LoadConfig(path string) (*Config, error) {
	return config.Load(path)
}
