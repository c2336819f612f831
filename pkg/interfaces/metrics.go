// Package interfaces 定义 typedbus 公共接口
//
// 本文件定义 MetricsRecorder 接口，由 internal/core/metrics 提供
// 基于 Prometheus 的实现。
package interfaces

// ============================================================================
// 指标
// ============================================================================

// MetricsRecorder 总线指标记录器
//
// bus 为总线名称，kind 为子类型名称。实现必须并发安全。
type MetricsRecorder interface {
	// EventSent 事件已发布，receivers 为投递到的订阅数
	EventSent(bus, kind string, receivers int)

	// SendFailed 发布失败（无订阅者或发送端已关闭）
	SendFailed(bus, kind string)

	// EventDelivered 接收视图交付了一个匹配的事件
	EventDelivered(bus, kind string)

	// EventSkipped 接收视图跳过了一个不匹配的事件
	EventSkipped(bus, kind string)

	// ReceiverLagged 接收视图落后，skipped 为丢失的事件数
	ReceiverLagged(bus, kind string, skipped uint64)

	// ReceiverClosed 接收视图观察到通道关闭
	ReceiverClosed(bus, kind string)
}
