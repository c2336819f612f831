// Package main 提供 typedbus 命令行演示入口
//
// 启动一条事件总线，若干生产者并发发布 Tick/Alert 两种子类型事件，
// 两个类型化接收视图分别消费并统计交付与落后情况。
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/fx"

	"github.com/dep2p/go-typedbus"
	"github.com/dep2p/go-typedbus/pkg/lib/log"
)

var logger = log.Logger("typedbus/cmd")

// version 命令行版本
const version = "1.0.0"

// ═══════════════════════════════════════════════════════════════════════════
// 命令行参数
// ═══════════════════════════════════════════════════════════════════════════
//
//   命令行参数：覆盖本次运行
//   配置文件 / TYPEDBUS_* 环境变量：持久化配置
//
// ═══════════════════════════════════════════════════════════════════════════
var (
	configFile  = flag.String("config", "", "配置文件路径（yaml/json/toml）")
	capacity    = flag.Int("capacity", 0, "总线容量（0 = 使用配置）")
	producers   = flag.Int("producers", 4, "并发生产者数量")
	events      = flag.Int("events", 1000, "每个生产者发送的 Tick 数量")
	alertEvery  = flag.Int("alert-every", 50, "每隔多少个 Tick 发送一次 Alert（0 = 不发送）")
	metricsAddr = flag.String("metrics-addr", "", "Prometheus 监听地址，例如 :9090（设置后启用指标）")
	logLevel    = flag.String("log-level", "", "日志级别 debug/info/warn/error（空 = 使用配置）")
	hold        = flag.Bool("hold", false, "演示结束后保持运行，直到收到退出信号")
	showVersion = flag.Bool("version", false, "显示版本信息")
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()

	if *showVersion {
		fmt.Printf("typedbus %s\n", version)
		return nil
	}

	cfg, err := buildConfig()
	if err != nil {
		return fmt.Errorf("配置错误: %w", err)
	}

	closer, err := typedbus.SetupLogging(cfg.Log)
	if err != nil {
		return fmt.Errorf("日志设置失败: %w", err)
	}
	defer func() { _ = closer.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var bus *typedbus.Bus[Event]
	app, err := typedbus.NewApp[Event](cfg, fx.Populate(&bus))
	if err != nil {
		return err
	}
	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("启动失败: %w", err)
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			logger.Warn("停止失败", "error", err)
		}
	}()

	logger.Info("总线已启动",
		"bus", bus.Name(),
		"capacity", bus.Capacity(),
		"metrics", cfg.Metrics.ListenAddr)

	report, err := runDemo(ctx, bus, demoOptions{
		producers:  *producers,
		events:     *events,
		alertEvery: *alertEvery,
	})
	if err != nil {
		return err
	}
	report.print(os.Stdout)

	if *hold {
		fmt.Println("演示结束，按 Ctrl+C 退出")
		<-ctx.Done()
	}
	return nil
}

// buildConfig 构建配置
//
// 优先级（从高到低）：命令行参数 > 环境变量 > 配置文件 > 默认值
func buildConfig() (*typedbus.Config, error) {
	cfg, err := typedbus.LoadConfig(*configFile)
	if err != nil {
		return nil, err
	}

	if *capacity > 0 {
		cfg.Capacity = *capacity
	}
	if *metricsAddr != "" {
		cfg.Metrics.Enabled = true
		cfg.Metrics.ListenAddr = *metricsAddr
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
