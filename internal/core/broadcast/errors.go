package broadcast

import (
	"errors"
	"fmt"
)

var (
	// ErrNoReceivers 发送时没有任何活跃订阅
	ErrNoReceivers = errors.New("broadcast: no active receivers")
	// ErrClosed 所有发送端已关闭且积压已读完，或接收端自身已关闭
	ErrClosed = errors.New("broadcast: channel closed")
	// ErrLagged 接收端落后超过容量，部分事件已被覆盖
	ErrLagged = errors.New("broadcast: receiver lagged")
	// ErrEmpty 当前没有可读事件（仅 TryRecv）
	ErrEmpty = errors.New("broadcast: channel empty")
	// ErrSenderClosed 发送端句柄已关闭
	ErrSenderClosed = errors.New("broadcast: sender closed")
	// ErrInvalidCapacity 容量必须为正数
	ErrInvalidCapacity = errors.New("broadcast: capacity must be positive")
)

// SendError 发送失败，携带未投递的值
//
// errors.Is(err, ErrNoReceivers) 为 true。
type SendError[E any] struct {
	Value E
}

func (e *SendError[E]) Error() string {
	return ErrNoReceivers.Error()
}

// Unwrap 返回 ErrNoReceivers
func (e *SendError[E]) Unwrap() error {
	return ErrNoReceivers
}

// LaggedError 接收端落后，Skipped 为无法恢复的事件数
//
// errors.Is(err, ErrLagged) 为 true。接收端未被取消订阅，下一次接收从最旧的保留事件继续。
type LaggedError struct {
	Skipped uint64
}

func (e *LaggedError) Error() string {
	return fmt.Sprintf("broadcast: receiver lagged, %d events skipped", e.Skipped)
}

// Unwrap 返回 ErrLagged
func (e *LaggedError) Unwrap() error {
	return ErrLagged
}
