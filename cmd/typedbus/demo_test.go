package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-typedbus"
)

// TestRunDemo 测试容量足够时所有事件都被对应的视图交付
func TestRunDemo(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	bus, err := typedbus.New[Event](64)
	require.NoError(t, err)

	report, err := runDemo(ctx, bus, demoOptions{producers: 2, events: 20, alertEvery: 5})
	require.NoError(t, err)

	assert.Equal(t, int64(48), report.sent)
	assert.Equal(t, int64(40), report.ticks.delivered.Load())
	assert.Equal(t, int64(8), report.alerts.delivered.Load())
	assert.Zero(t, report.ticks.lagged.Load())
	assert.Zero(t, report.alerts.lagged.Load())

	var out bytes.Buffer
	report.print(&out)
	assert.Contains(t, out.String(), "已发送:   48")
}

// TestRunDemo_Cancelled 测试上下文取消时生产者返回错误
func TestRunDemo_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	bus, err := typedbus.New[Event](8)
	require.NoError(t, err)

	_, err = runDemo(ctx, bus, demoOptions{producers: 1, events: 10})
	assert.ErrorIs(t, err, context.Canceled)
}
