package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/dep2p/go-typedbus/internal/config"
	pkgif "github.com/dep2p/go-typedbus/pkg/interfaces"
	"github.com/dep2p/go-typedbus/pkg/lib/log"
)

var logger = log.Logger("core/metrics")

// Params Metrics 依赖参数
type Params struct {
	fx.In

	Provider *config.Provider    `optional:"true"`
	Registry *prometheus.Registry `optional:"true"`
	LC       fx.Lifecycle
}

// Result Metrics 模块输出
//
// 指标未启用时两个字段都为 nil。
type Result struct {
	fx.Out

	Recorder  pkgif.MetricsRecorder
	Collector *Collector
}

// Module 是 metrics 的 Fx 模块
var Module = fx.Module("metrics",
	fx.Provide(NewFromParams),
)

// NewFromParams 根据配置创建 Collector，并在配置了监听地址时注册 HTTP 服务
func NewFromParams(p Params) (Result, error) {
	cfg := config.DefaultMetricsConfig()
	if p.Provider != nil {
		cfg = *p.Provider.GetMetrics()
	}
	if !cfg.Enabled {
		return Result{}, nil
	}

	c, err := NewCollector(cfg.Namespace, p.Registry)
	if err != nil {
		return Result{}, err
	}

	if cfg.ListenAddr != "" {
		registerServer(p.LC, cfg.ListenAddr, c)
	}

	return Result{Recorder: c, Collector: c}, nil
}

// registerServer 在生命周期内运行 /metrics HTTP 服务
func registerServer(lc fx.Lifecycle, addr string, c *Collector) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return err
			}
			logger.Info("metrics server listening", "addr", ln.Addr().String())

			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("metrics server stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
