package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/dep2p/go-typedbus/internal/config"
	pkgif "github.com/dep2p/go-typedbus/pkg/interfaces"
)

// ============================================================================
// Fx 模块测试
// ============================================================================

// TestModule_Disabled 测试默认配置不提供记录器
func TestModule_Disabled(t *testing.T) {
	var rec pkgif.MetricsRecorder
	var col *Collector

	app := fxtest.New(t,
		config.Module(config.Default()),
		Module,
		fx.Populate(&rec, &col),
	)
	app.RequireStart()
	defer app.RequireStop()

	assert.Nil(t, rec)
	assert.Nil(t, col)
}

// TestModule_Enabled 测试启用后提供 Collector
func TestModule_Enabled(t *testing.T) {
	cfg := config.Default()
	cfg.Metrics.Enabled = true

	var rec pkgif.MetricsRecorder
	var col *Collector

	app := fxtest.New(t,
		config.Module(cfg),
		Module,
		fx.Populate(&rec, &col),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, col)
	assert.Same(t, col, rec)
}

// TestModule_Server 测试监听地址的生命周期
func TestModule_Server(t *testing.T) {
	cfg := config.Default()
	cfg.Metrics.Enabled = true
	cfg.Metrics.ListenAddr = "127.0.0.1:0"

	app := fx.New(
		config.Module(cfg),
		Module,
		fx.Invoke(func(*Collector) {}),
		fx.NopLogger,
	)

	ctx := context.Background()
	require.NoError(t, app.Start(ctx))
	assert.NoError(t, app.Stop(ctx))
}
