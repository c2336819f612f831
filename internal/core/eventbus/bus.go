// Package eventbus 实现类型化事件总线
package eventbus

import (
	"reflect"
	"sync/atomic"

	"golang.org/x/time/rate"

	"github.com/dep2p/go-typedbus/internal/core/broadcast"
	pkgif "github.com/dep2p/go-typedbus/pkg/interfaces"
	"github.com/dep2p/go-typedbus/pkg/lib/log"
)

var logger = log.Logger("core/eventbus")

// ============================================================================
// 错误定义
// ============================================================================

var (
	// ErrNoReceivers 发送时总线没有任何订阅
	ErrNoReceivers = broadcast.ErrNoReceivers
	// ErrClosed 总线的所有发送端已关闭，或接收视图已关闭
	ErrClosed = broadcast.ErrClosed
	// ErrLagged 接收视图落后，部分事件丢失
	ErrLagged = broadcast.ErrLagged
	// ErrEmpty 当前没有匹配的事件（仅 TryRecv）
	ErrEmpty = broadcast.ErrEmpty
	// ErrSenderClosed 发送视图已关闭
	ErrSenderClosed = broadcast.ErrSenderClosed
	// ErrInvalidCapacity 容量必须为正数
	ErrInvalidCapacity = broadcast.ErrInvalidCapacity
)

// LaggedError 接收视图落后，Skipped 为丢失的事件数
type LaggedError = broadcast.LaggedError

// SendError 无订阅者时的发送错误，携带未投递的超集值
type SendError[E any] = broadcast.SendError[E]

// DefaultName 未指定名称时的总线名称
const DefaultName = "default"

// ============================================================================
// Bus 实现
// ============================================================================

// Bus 类型化事件总线
//
// 持有一个共享广播通道的发送端。所有视图都通过 SenderOf/ReceiverOf
// 等函数从总线派生，可并发调用任意次。
type Bus[E any] struct {
	tx      *broadcast.Sender[E]
	name    string
	metrics pkgif.MetricsRecorder

	// lagEvents 落后事件计数（用于慢消费者警告）
	lagEvents atomic.Int64
	// lagWarn 慢消费者警告限频：首次必报，之后每 100 次一次
	lagWarn rate.Sometimes
}

// New 创建容量为 capacity 的事件总线
//
// capacity 为每个尚未追上的接收视图最多保留的事件数，必须为正数。
func New[E any](capacity int, opts ...Option) (*Bus[E], error) {
	settings := &busSettings{
		Name: DefaultName,
	}
	for _, opt := range opts {
		opt(settings)
	}

	tx, err := broadcast.New[E](capacity)
	if err != nil {
		return nil, err
	}

	if settings.Metrics == nil {
		settings.Metrics = nopRecorder{}
	}

	b := &Bus[E]{
		tx:      tx,
		name:    settings.Name,
		metrics: settings.Metrics,
		lagWarn: rate.Sometimes{First: 1, Every: 100},
	}

	logger.Debug("event bus created",
		"bus", b.name,
		"capacity", capacity,
		"event", typeName[E]())

	return b, nil
}

// Name 返回总线名称
func (b *Bus[E]) Name() string {
	return b.name
}

// Capacity 返回总线容量
func (b *Bus[E]) Capacity() int {
	return b.tx.Capacity()
}

// ReceiverCount 返回当前订阅数（所有子类型合计）
func (b *Bus[E]) ReceiverCount() int {
	return b.tx.ReceiverCount()
}

// Close 释放总线自身持有的发送端
//
// 所有发送视图也关闭后，接收视图读完积压即返回 ErrClosed。可多次调用。
func (b *Bus[E]) Close() error {
	return b.tx.Close()
}

// ============================================================================
// 视图派生
// ============================================================================

// SenderOf 返回绑定到子类型 T 的发送视图
//
//	tx := eventbus.SenderOf[Kind1](bus)
func SenderOf[T pkgif.Widener[E], E any](b *Bus[E]) *EventSender[E, T] {
	return SenderWith(b, func(v T) E { return v.Widen() })
}

// SenderWith 使用显式嵌入函数返回发送视图
//
// 用于无法在子类型上实现 Widener 的场景。
func SenderWith[E, T any](b *Bus[E], widen func(T) E) *EventSender[E, T] {
	s := newSender(b, widen)
	logger.Debug("sender created", "bus", b.name, "kind", s.kind, "sender", log.TruncateID(s.id, 8))
	return s
}

// ReceiverOf 返回绑定到子类型 T 的接收视图，订阅位于"当前"位置
//
//	rx := eventbus.ReceiverOf[Kind1](bus)
func ReceiverOf[T, E any, PT pkgif.Narrower[E, T]](b *Bus[E]) *EventReceiver[E, T] {
	return ReceiverWith(b, func(e E) (T, bool) {
		var v T
		ok := PT(&v).TryFrom(e)
		return v, ok
	})
}

// ReceiverWith 使用显式提取函数返回接收视图
//
// narrow 失败时返回 false，该事件被丢弃。
func ReceiverWith[E, T any](b *Bus[E], narrow func(E) (T, bool)) *EventReceiver[E, T] {
	r := newReceiver(b, b.tx.Subscribe(), narrow)
	logger.Debug("receiver created", "bus", b.name, "kind", r.kind, "receiver", log.TruncateID(r.id, 8))
	return r
}

// ============================================================================
// 内部方法
// ============================================================================

// noteLag 记录落后并按频率输出慢消费者警告
func (b *Bus[E]) noteLag(kind string, skipped uint64) {
	b.metrics.ReceiverLagged(b.name, kind, skipped)

	n := b.lagEvents.Add(1)
	b.lagWarn.Do(func() {
		logger.Warn("慢消费者检测",
			"bus", b.name,
			"kind", kind,
			"skipped", skipped,
			"lag_events", n)
	})
}

// typeName 返回类型参数的名称，用作日志和指标标签
func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

// nopRecorder 不记录任何指标
type nopRecorder struct{}

func (nopRecorder) EventSent(string, string, int)         {}
func (nopRecorder) SendFailed(string, string)             {}
func (nopRecorder) EventDelivered(string, string)         {}
func (nopRecorder) EventSkipped(string, string)           {}
func (nopRecorder) ReceiverLagged(string, string, uint64) {}
func (nopRecorder) ReceiverClosed(string, string)         {}
