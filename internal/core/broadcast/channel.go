package broadcast

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/dep2p/go-typedbus/pkg/lib/log"
)

var logger = log.Logger("core/broadcast")

// ============================================================================
// 共享状态
// ============================================================================

// shared 所有 Sender/Receiver 共享的通道状态
type shared[E any] struct {
	mu sync.Mutex

	buf      []E    // 环形缓冲区
	capacity uint64 // 固定容量
	tail     uint64 // 下一个写入位置（单调递增）

	numTx int // 未关闭的 Sender 数量
	numRx int // 未关闭的 Receiver 数量

	// notify 在每次状态变化时关闭并替换
	notify chan struct{}
}

// wakeLocked 唤醒所有等待方，调用方需持有 mu
func (sh *shared[E]) wakeLocked() {
	close(sh.notify)
	sh.notify = make(chan struct{})
}

// oldestLocked 返回仍保留在缓冲区中的最旧位置
func (sh *shared[E]) oldestLocked() uint64 {
	if sh.tail > sh.capacity {
		return sh.tail - sh.capacity
	}
	return 0
}

// ============================================================================
// Sender
// ============================================================================

// Sender 广播通道的发送端句柄
//
// 可通过 Clone 获得多个句柄，每个句柄需各自 Close。
type Sender[E any] struct {
	sh        *shared[E]
	closed    atomic.Bool
	closeOnce sync.Once
}

// New 创建容量为 capacity 的广播通道，返回第一个发送端句柄
func New[E any](capacity int) (*Sender[E], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	sh := &shared[E]{
		buf:      make([]E, capacity),
		capacity: uint64(capacity),
		numTx:    1,
		notify:   make(chan struct{}),
	}

	return &Sender[E]{sh: sh}, nil
}

// Send 向所有当前订阅者投递 v，返回投递到的订阅数
//
// 不阻塞。没有订阅者时返回 *SendError，值不会被缓存。
func (s *Sender[E]) Send(v E) (int, error) {
	sh := s.sh
	sh.mu.Lock()
	defer sh.mu.Unlock()

	// closed 只在 mu 下写入，最后一个句柄关闭后不会再有事件写入
	if s.closed.Load() || sh.numTx == 0 {
		return 0, ErrSenderClosed
	}
	if sh.numRx == 0 {
		return 0, &SendError[E]{Value: v}
	}

	sh.buf[sh.tail%sh.capacity] = v
	sh.tail++
	sh.wakeLocked()

	return sh.numRx, nil
}

// Subscribe 创建新的接收端，游标位于"当前"位置
func (s *Sender[E]) Subscribe() *Receiver[E] {
	sh := s.sh
	sh.mu.Lock()
	defer sh.mu.Unlock()

	sh.numRx++
	return &Receiver[E]{sh: sh, next: sh.tail}
}

// Clone 返回指向同一通道的新发送端句柄
//
// 已关闭句柄的克隆同样处于关闭状态。
func (s *Sender[E]) Clone() *Sender[E] {
	c := &Sender[E]{sh: s.sh}

	sh := s.sh
	sh.mu.Lock()
	defer sh.mu.Unlock()

	if s.closed.Load() {
		c.closed.Store(true)
		c.closeOnce.Do(func() {})
		return c
	}

	sh.numTx++
	return c
}

// ReceiverCount 返回当前订阅数
func (s *Sender[E]) ReceiverCount() int {
	s.sh.mu.Lock()
	defer s.sh.mu.Unlock()
	return s.sh.numRx
}

// Capacity 返回通道容量
func (s *Sender[E]) Capacity() int {
	return int(s.sh.capacity)
}

// Close 释放该发送端句柄
//
// 最后一个句柄关闭后，接收端读完积压即返回 ErrClosed。可多次调用。
func (s *Sender[E]) Close() error {
	s.closeOnce.Do(func() {
		sh := s.sh
		sh.mu.Lock()
		defer sh.mu.Unlock()

		s.closed.Store(true)
		sh.numTx--
		if sh.numTx == 0 {
			logger.Debug("all senders closed", "receivers", sh.numRx)
			sh.wakeLocked()
		}
	})
	return nil
}

// ============================================================================
// Receiver
// ============================================================================

// Receiver 广播通道的接收端
//
// 游标与关闭标志都在共享锁下访问，Close 可与 Recv 并发调用。
type Receiver[E any] struct {
	sh     *shared[E]
	next   uint64
	closed bool
}

// pollLocked 尝试读取下一个事件，ready 为 false 表示暂无事件
func (r *Receiver[E]) pollLocked() (v E, ready bool, err error) {
	sh := r.sh
	if r.next == sh.tail {
		return v, false, nil
	}

	if oldest := sh.oldestLocked(); r.next < oldest {
		skipped := oldest - r.next
		r.next = oldest
		return v, true, &LaggedError{Skipped: skipped}
	}

	v = sh.buf[r.next%sh.capacity]
	r.next++
	return v, true, nil
}

// Recv 等待并返回下一个事件
//
// 返回 *LaggedError 时接收端仍然有效，再次调用即可继续。
// ctx 取消时返回 ctx.Err()，游标不变。
func (r *Receiver[E]) Recv(ctx context.Context) (E, error) {
	var zero E
	sh := r.sh

	for {
		sh.mu.Lock()
		if r.closed {
			sh.mu.Unlock()
			return zero, ErrClosed
		}
		if v, ready, err := r.pollLocked(); ready {
			sh.mu.Unlock()
			return v, err
		}
		if sh.numTx == 0 {
			sh.mu.Unlock()
			return zero, ErrClosed
		}
		wait := sh.notify
		sh.mu.Unlock()

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-wait:
		}
	}
}

// TryRecv 非阻塞读取，暂无事件时返回 ErrEmpty
func (r *Receiver[E]) TryRecv() (E, error) {
	var zero E
	sh := r.sh

	sh.mu.Lock()
	defer sh.mu.Unlock()

	if r.closed {
		return zero, ErrClosed
	}
	if v, ready, err := r.pollLocked(); ready {
		return v, err
	}
	if sh.numTx == 0 {
		return zero, ErrClosed
	}
	return zero, ErrEmpty
}

// Len 返回该接收端尚未读取的事件数（含已被覆盖的部分）
func (r *Receiver[E]) Len() int {
	r.sh.mu.Lock()
	defer r.sh.mu.Unlock()

	if r.closed {
		return 0
	}
	return int(r.sh.tail - r.next)
}

// Resubscribe 创建一个新的接收端，游标位于"当前"位置
func (r *Receiver[E]) Resubscribe() *Receiver[E] {
	sh := r.sh
	sh.mu.Lock()
	defer sh.mu.Unlock()

	sh.numRx++
	return &Receiver[E]{sh: sh, next: sh.tail}
}

// Close 取消订阅
//
// 正在 Recv 的调用会返回 ErrClosed。可多次调用。
func (r *Receiver[E]) Close() error {
	sh := r.sh
	sh.mu.Lock()
	defer sh.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true
	sh.numRx--
	sh.wakeLocked()
	return nil
}
