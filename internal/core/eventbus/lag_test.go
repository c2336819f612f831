package eventbus

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-typedbus/pkg/lib/log"
)

// TestBus_SlowConsumerWarning 测试慢消费者警告限频输出
func TestBus_SlowConsumerWarning(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, log.Setup(&buf, log.LevelWarn, log.FormatText))
	t.Cleanup(func() {
		_ = log.Setup(os.Stderr, log.LevelInfo, log.FormatText)
	})

	rec := newCountingRecorder()
	bus := newTestBus(t, 1, WithMetrics(rec))

	// 第 1 次和第 101 次输出警告，其余静默
	for i := 0; i < 150; i++ {
		bus.noteLag("Kind1", 1)
	}

	assert.Equal(t, 2, strings.Count(buf.String(), "慢消费者检测"))
	assert.Equal(t, int64(150), bus.lagEvents.Load())

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Equal(t, uint64(150), rec.lagged["Kind1"])
}
