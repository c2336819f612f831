// Package eventbus 实现类型化事件总线
package eventbus

import (
	"errors"
	"runtime"

	"github.com/google/uuid"

	"github.com/dep2p/go-typedbus/internal/core/broadcast"
)

// ============================================================================
// EventSender 实现
// ============================================================================

// EventSender 绑定到子类型 T 的发送视图
//
// 持有共享通道的一个发送端句柄。子类型只存在于类型参数中。
type EventSender[E, T any] struct {
	bus   *Bus[E]
	tx    *broadcast.Sender[E]
	widen func(T) E
	kind  string
	id    string
}

func newSender[E, T any](b *Bus[E], widen func(T) E) *EventSender[E, T] {
	s := &EventSender[E, T]{
		bus:   b,
		tx:    b.tx.Clone(),
		widen: widen,
		kind:  typeName[T](),
		id:    uuid.NewString(),
	}
	// 未显式 Close 的视图被回收时释放发送端句柄
	runtime.AddCleanup(s, func(tx *broadcast.Sender[E]) { _ = tx.Close() }, s.tx)
	return s
}

// Send 将 value 嵌入超集类型并发布到总线
//
// 不阻塞。总线没有任何订阅时返回的错误满足 errors.Is(err, ErrNoReceivers)，
// 且事件不会被保留给之后的订阅者。
func (s *EventSender[E, T]) Send(value T) error {
	_, err := s.SendCount(value)
	return err
}

// SendCount 与 Send 相同，同时返回投递到的订阅数
//
// 订阅数包含所有子类型的接收视图，过滤发生在接收侧。
func (s *EventSender[E, T]) SendCount(value T) (int, error) {
	n, err := s.tx.Send(s.widen(value))
	if err != nil {
		s.bus.metrics.SendFailed(s.bus.name, s.kind)
		if errors.Is(err, ErrNoReceivers) {
			logger.Debug("event dropped, no receivers", "bus", s.bus.name, "kind", s.kind)
		}
		return 0, err
	}

	s.bus.metrics.EventSent(s.bus.name, s.kind, n)
	return n, nil
}

// ReceiverCount 返回总线当前订阅数
func (s *EventSender[E, T]) ReceiverCount() int {
	return s.tx.ReceiverCount()
}

// ID 返回发送视图标识
func (s *EventSender[E, T]) ID() string {
	return s.id
}

// Close 释放发送端句柄
//
// 已发布的事件不受影响。关闭后 Send 返回 ErrSenderClosed。可多次调用。
// 未调用 Close 的视图在被垃圾回收后才释放句柄，时机不确定。
func (s *EventSender[E, T]) Close() error {
	return s.tx.Close()
}
