// Package interfaces 定义 typedbus 公共接口
//
// 本文件定义事件转换契约、类型化发送/接收视图接口以及总线选项。
// 指标记录接口见 metrics.go。
package interfaces

import "context"

// ============================================================================
// 转换契约
// ============================================================================

// Widener 子类型到超集类型的嵌入（全函数，总是成功）
//
// 由事件域作者在子类型上实现：
//
//	func (k Kind1) Widen() Event { return k }
type Widener[E any] interface {
	Widen() E
}

// Narrower 超集类型到子类型的提取（部分函数）
//
// 由事件域作者在子类型的指针上实现。成功时写入接收者并返回 true；
// 失败时返回 false，原始超集值仍在调用方手中：
//
//	func (k *Kind1) TryFrom(e Event) bool {
//	    v, ok := e.(Kind1)
//	    if ok {
//	        *k = v
//	    }
//	    return ok
//	}
type Narrower[E, T any] interface {
	*T
	TryFrom(e E) bool
}

// ============================================================================
// 类型化视图
// ============================================================================

// Sender 绑定到子类型 T 的发送视图
type Sender[T any] interface {
	// Send 嵌入并发布事件，不阻塞
	Send(value T) error

	// ReceiverCount 返回总线当前订阅数
	ReceiverCount() int

	// Close 释放发送端句柄
	Close() error
}

// Receiver 绑定到子类型 T 的接收视图
type Receiver[T any] interface {
	// Recv 等待下一个属于 T 的事件，跳过其他事件
	Recv(ctx context.Context) (T, error)

	// TryRecv 非阻塞版本
	TryRecv() (T, error)

	// Close 取消订阅
	Close() error
}

// ============================================================================
// 选项
// ============================================================================

// BusOpt 总线选项函数类型
type BusOpt func(*BusSettings)

// BusSettings 总线设置（导出以供实现使用）
type BusSettings struct {
	// Name 总线名称，用于日志和指标标签
	Name string

	// Metrics 指标记录器，nil 表示不记录
	Metrics MetricsRecorder
}

// WithName 设置总线名称
func WithName(name string) BusOpt {
	return func(s *BusSettings) {
		s.Name = name
	}
}

// WithMetrics 设置指标记录器
func WithMetrics(r MetricsRecorder) BusOpt {
	return func(s *BusSettings) {
		s.Metrics = r
	}
}
