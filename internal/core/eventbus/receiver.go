// Package eventbus 实现类型化事件总线
package eventbus

import (
	"context"
	"errors"
	"runtime"

	"github.com/google/uuid"

	"github.com/dep2p/go-typedbus/internal/core/broadcast"
)

// ============================================================================
// EventReceiver 实现
// ============================================================================

// EventReceiver 绑定到子类型 T 的接收视图
//
// 持有一个独立订阅。不属于 T 的事件在接收侧被静默丢弃；
// 通道层面的失败（落后、关闭）总是立即返回，不会被过滤循环吞掉。
type EventReceiver[E, T any] struct {
	bus    *Bus[E]
	rx     *broadcast.Receiver[E]
	narrow func(E) (T, bool)
	kind   string
	id     string
}

func newReceiver[E, T any](b *Bus[E], rx *broadcast.Receiver[E], narrow func(E) (T, bool)) *EventReceiver[E, T] {
	r := &EventReceiver[E, T]{
		bus:    b,
		rx:     rx,
		narrow: narrow,
		kind:   typeName[T](),
		id:     uuid.NewString(),
	}
	// 未显式 Close 的视图被回收时取消订阅
	runtime.AddCleanup(r, func(rx *broadcast.Receiver[E]) { _ = rx.Close() }, rx)
	return r
}

// Recv 等待下一个属于 T 的事件
//
// 循环读取订阅：提取成功即返回；提取失败则丢弃并继续；
// 读取本身失败（*LaggedError、ErrClosed、ctx 错误）立即返回且不重试。
// 订阅位置在多次调用间保持。
func (r *EventReceiver[E, T]) Recv(ctx context.Context) (T, error) {
	for {
		evt, err := r.rx.Recv(ctx)
		if err != nil {
			return r.fail(err)
		}
		if v, ok := r.match(evt); ok {
			return v, nil
		}
	}
}

// TryRecv 非阻塞版本的 Recv
//
// 当前缓冲中没有属于 T 的事件时返回 ErrEmpty，途中跳过的事件不会恢复。
func (r *EventReceiver[E, T]) TryRecv() (T, error) {
	for {
		evt, err := r.rx.TryRecv()
		if err != nil {
			return r.fail(err)
		}
		if v, ok := r.match(evt); ok {
			return v, nil
		}
	}
}

// Resubscribe 返回一个新的接收视图，使用相同的提取函数，订阅位于"当前"位置
func (r *EventReceiver[E, T]) Resubscribe() *EventReceiver[E, T] {
	return newReceiver(r.bus, r.rx.Resubscribe(), r.narrow)
}

// Len 返回订阅中尚未读取的超集事件数（含不匹配的事件）
func (r *EventReceiver[E, T]) Len() int {
	return r.rx.Len()
}

// ID 返回接收视图标识
func (r *EventReceiver[E, T]) ID() string {
	return r.id
}

// Close 取消订阅
//
// 正在进行的 Recv 返回 ErrClosed，之后不会再有事件到达。可多次调用。
// 未调用 Close 的视图在被垃圾回收后才取消订阅，在此之前仍计入订阅数。
func (r *EventReceiver[E, T]) Close() error {
	return r.rx.Close()
}

// ============================================================================
// 内部方法
// ============================================================================

// match 尝试提取子类型并记录结果
func (r *EventReceiver[E, T]) match(evt E) (T, bool) {
	v, ok := r.narrow(evt)
	if ok {
		r.bus.metrics.EventDelivered(r.bus.name, r.kind)
	} else {
		r.bus.metrics.EventSkipped(r.bus.name, r.kind)
	}
	return v, ok
}

// fail 记录通道失败并原样返回
func (r *EventReceiver[E, T]) fail(err error) (T, error) {
	var zero T

	var lagged *LaggedError
	switch {
	case errors.As(err, &lagged):
		r.bus.noteLag(r.kind, lagged.Skipped)
	case errors.Is(err, ErrClosed):
		r.bus.metrics.ReceiverClosed(r.bus.name, r.kind)
		logger.Debug("receiver closed", "bus", r.bus.name, "kind", r.kind, "receiver", r.id)
	}

	return zero, err
}
