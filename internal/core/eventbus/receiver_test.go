package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// TryRecv / Resubscribe
// ============================================================================

// TestReceiver_TryRecv 测试非阻塞接收跳过不匹配的事件
func TestReceiver_TryRecv(t *testing.T) {
	bus := newTestBus(t, 8)

	rx := ReceiverOf[Kind1](bus)
	defer rx.Close()

	_, err := rx.TryRecv()
	assert.ErrorIs(t, err, ErrEmpty)

	tx1 := SenderOf[Kind1](bus)
	tx2 := SenderOf[Kind2](bus)

	require.NoError(t, tx2.Send(Kind2{}))
	require.NoError(t, tx1.Send(Kind1{ID: 4}))
	require.NoError(t, tx2.Send(Kind2{}))
	assert.Equal(t, 3, rx.Len())

	got, err := rx.TryRecv()
	require.NoError(t, err)
	assert.Equal(t, Kind1{ID: 4}, got)

	// 剩下的 Kind2 被消费掉
	_, err = rx.TryRecv()
	assert.ErrorIs(t, err, ErrEmpty)
	assert.Equal(t, 0, rx.Len())
}

// TestReceiver_Resubscribe 测试重新订阅
func TestReceiver_Resubscribe(t *testing.T) {
	ctx := testContext(t)
	bus := newTestBus(t, 8)

	rx := ReceiverOf[Kind1](bus)
	defer rx.Close()

	tx := SenderOf[Kind1](bus)
	require.NoError(t, tx.Send(Kind1{ID: 1}))

	again := rx.Resubscribe()
	defer again.Close()

	assert.NotEqual(t, rx.ID(), again.ID())
	assert.Equal(t, 2, bus.ReceiverCount())
	assert.Equal(t, 0, again.Len())

	require.NoError(t, tx.Send(Kind1{ID: 2}))

	got, err := again.Recv(ctx)
	require.NoError(t, err)
	assert.Equal(t, Kind1{ID: 2}, got)

	got, err = rx.Recv(ctx)
	require.NoError(t, err)
	assert.Equal(t, Kind1{ID: 1}, got)
}

// ============================================================================
// 转换
// ============================================================================

// TestReceiver_GroupSubtype 测试覆盖多个变体的分组子类型
func TestReceiver_GroupSubtype(t *testing.T) {
	ctx := testContext(t)
	bus := newTestBus(t, 8)

	rx := ReceiverOf[Labeled](bus)
	defer rx.Close()

	require.NoError(t, publish(bus, Kind1{ID: 3}))
	require.NoError(t, publish(bus, Kind2{}))
	require.NoError(t, publish(bus, Kind3{Note: "hello"}))

	got, err := rx.Recv(ctx)
	require.NoError(t, err)
	assert.Equal(t, "kind1-3", got.Label)

	got, err = rx.Recv(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Label)
}

// TestConvert_FunctionForms 测试显式转换函数
func TestConvert_FunctionForms(t *testing.T) {
	ctx := testContext(t)
	bus := newTestBus(t, 8)

	rx := ReceiverWith(bus, Downcast[Event, Kind3])
	defer rx.Close()
	all := ReceiverAll(bus)
	defer all.Close()

	tx := SenderWith(bus, Upcast[Event, Kind3])
	require.NoError(t, tx.Send(Kind3{Note: "n"}))
	require.NoError(t, publish(bus, Kind2{}))

	got, err := rx.Recv(ctx)
	require.NoError(t, err)
	assert.Equal(t, Kind3{Note: "n"}, got)

	e1, err := all.Recv(ctx)
	require.NoError(t, err)
	assert.Equal(t, Event(Kind3{Note: "n"}), e1)

	e2, err := all.Recv(ctx)
	require.NoError(t, err)
	assert.Equal(t, Event(Kind2{}), e2)
}

// TestConvert_CustomWiden 测试非接口超集类型
func TestConvert_CustomWiden(t *testing.T) {
	ctx := testContext(t)

	type wide struct {
		Tag   string
		Value int
	}

	bus, err := New[wide](4)
	require.NoError(t, err)
	defer bus.Close()

	rx := ReceiverWith(bus, func(w wide) (int, bool) {
		return w.Value, w.Tag == "int"
	})
	defer rx.Close()

	tx := SenderWith(bus, func(v int) wide { return wide{Tag: "int", Value: v} })
	other := SenderWith(bus, func(s string) wide { return wide{Tag: "str"} })

	require.NoError(t, other.Send("skip"))
	require.NoError(t, tx.Send(11))

	got, err := rx.Recv(ctx)
	require.NoError(t, err)
	assert.Equal(t, 11, got)
}

// ============================================================================
// 指标
// ============================================================================

// TestReceiver_Metrics 测试指标记录
func TestReceiver_Metrics(t *testing.T) {
	ctx := testContext(t)
	rec := newCountingRecorder()
	bus := newTestBus(t, 2, WithMetrics(rec))

	kind1 := typeName[Kind1]()
	kind2 := typeName[Kind2]()

	tx1 := SenderOf[Kind1](bus)
	tx2 := SenderOf[Kind2](bus)

	// 无订阅
	assert.Error(t, tx1.Send(Kind1{}))

	rx := ReceiverOf[Kind1](bus)
	defer rx.Close()

	require.NoError(t, tx2.Send(Kind2{}))
	require.NoError(t, tx1.Send(Kind1{ID: 1}))

	_, err := rx.Recv(ctx)
	require.NoError(t, err)

	// 落后
	for i := 0; i < 4; i++ {
		require.NoError(t, tx1.Send(Kind1{}))
	}
	_, err = rx.Recv(ctx)
	require.ErrorIs(t, err, ErrLagged)

	rec.mu.Lock()
	defer rec.mu.Unlock()

	assert.Equal(t, 1, rec.failed[kind1])
	assert.Equal(t, 5, rec.sent[kind1])
	assert.Equal(t, 1, rec.sent[kind2])
	assert.Equal(t, 1, rec.skipped[kind1])
	assert.Equal(t, 1, rec.delivered[kind1])
	assert.Equal(t, uint64(2), rec.lagged[kind1])
}
