// Package metrics 提供事件总线的 Prometheus 指标
//
// Collector 实现 pkg/interfaces.MetricsRecorder，按总线名称（bus）
// 和子类型名称（kind）两个标签记录：
//   - events_sent_total / send_failures_total：发送视图
//   - events_delivered_total / events_skipped_total：接收视图过滤结果
//   - receiver_lagged_total / events_lagged_total：落后次数和丢失事件数
//   - receiver_closed_total：接收视图观察到关闭
//
// # 快速开始
//
//	c, _ := metrics.NewCollector("typedbus", nil)
//	bus, _ := eventbus.New[Event](64, eventbus.WithMetrics(c))
//	http.Handle("/metrics", c.Handler())
//
// # Fx 模块
//
//	app := fx.New(
//	    config.Module(cfg),
//	    metrics.Module,
//	    eventbus.Module[Event](),
//	)
//
// 配置 metrics.enabled=false 时模块不提供记录器，总线使用空实现。
package metrics
