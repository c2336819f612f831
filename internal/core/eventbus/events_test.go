package eventbus

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"
)

// ============================================================================
// 测试事件域
// ============================================================================

// Event 测试用超集事件类型
type Event interface {
	isEvent()
}

// Kind1 带 ID 的事件
type Kind1 struct {
	ID uint32
}

// Kind2 空事件
type Kind2 struct{}

// Kind3 带备注的事件
type Kind3 struct {
	Note string
}

func (Kind1) isEvent() {}
func (Kind2) isEvent() {}
func (Kind3) isEvent() {}

func (k Kind1) Widen() Event { return k }
func (k Kind2) Widen() Event { return k }
func (k Kind3) Widen() Event { return k }

func (k *Kind1) TryFrom(e Event) bool {
	v, ok := e.(Kind1)
	if ok {
		*k = v
	}
	return ok
}

func (k *Kind2) TryFrom(e Event) bool {
	v, ok := e.(Kind2)
	if ok {
		*k = v
	}
	return ok
}

// Labeled 覆盖 Kind1 和 Kind3 的分组子类型（只能接收）
type Labeled struct {
	Label string
}

func (l *Labeled) TryFrom(e Event) bool {
	switch v := e.(type) {
	case Kind1:
		l.Label = fmt.Sprintf("kind1-%d", v.ID)
	case Kind3:
		l.Label = v.Note
	default:
		return false
	}
	return true
}

// ============================================================================
// 测试工具
// ============================================================================

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func newTestBus(t *testing.T, capacity int, opts ...Option) *Bus[Event] {
	t.Helper()
	bus, err := New[Event](capacity, opts...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	t.Cleanup(func() { bus.Close() })
	return bus
}

// publish 用一次性发送视图发布事件，发送后立即关闭视图
func publish[T interface{ Widen() Event }](bus *Bus[Event], v T) error {
	tx := SenderOf[T](bus)
	defer tx.Close()
	return tx.Send(v)
}

// countingRecorder 记录指标调用次数
type countingRecorder struct {
	mu        sync.Mutex
	sent      map[string]int
	failed    map[string]int
	delivered map[string]int
	skipped   map[string]int
	lagged    map[string]uint64
	closed    map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{
		sent:      make(map[string]int),
		failed:    make(map[string]int),
		delivered: make(map[string]int),
		skipped:   make(map[string]int),
		lagged:    make(map[string]uint64),
		closed:    make(map[string]int),
	}
}

func (r *countingRecorder) EventSent(_, kind string, _ int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent[kind]++
}

func (r *countingRecorder) SendFailed(_, kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed[kind]++
}

func (r *countingRecorder) EventDelivered(_, kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.delivered[kind]++
}

func (r *countingRecorder) EventSkipped(_, kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.skipped[kind]++
}

func (r *countingRecorder) ReceiverLagged(_, kind string, skipped uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lagged[kind] += skipped
}

func (r *countingRecorder) ReceiverClosed(_, kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed[kind]++
}
