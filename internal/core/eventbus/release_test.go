package eventbus

import (
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// 未关闭视图的回收
// ============================================================================

// TestSender_ReleasedWhenUnreachable 测试丢弃的发送视图被回收后不再阻止关闭
func TestSender_ReleasedWhenUnreachable(t *testing.T) {
	bus := newTestBus(t, 4)

	rx := ReceiverOf[Kind1](bus)
	defer rx.Close()

	// 发送视图不保留引用，也不 Close
	require.NoError(t, SenderOf[Kind1](bus).Send(Kind1{ID: 1}))
	require.NoError(t, bus.Close())

	got, err := rx.TryRecv()
	require.NoError(t, err)
	assert.Equal(t, Kind1{ID: 1}, got)

	require.Eventually(t, func() bool {
		runtime.GC()
		_, err := rx.TryRecv()
		return errors.Is(err, ErrClosed)
	}, 2*time.Second, 10*time.Millisecond)
}

// TestReceiver_ReleasedWhenUnreachable 测试丢弃的接收视图被回收后取消订阅
func TestReceiver_ReleasedWhenUnreachable(t *testing.T) {
	bus := newTestBus(t, 4)

	tx := SenderOf[Kind1](bus)
	defer tx.Close()

	func() {
		_ = ReceiverOf[Kind1](bus)
	}()

	require.Eventually(t, func() bool {
		runtime.GC()
		return bus.ReceiverCount() == 0
	}, 2*time.Second, 10*time.Millisecond)

	assert.ErrorIs(t, tx.Send(Kind1{ID: 2}), ErrNoReceivers)
}
