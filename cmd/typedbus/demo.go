package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/dep2p/go-typedbus"
)

type demoOptions struct {
	producers  int
	events     int
	alertEvery int
}

// consumerStats 单个接收视图的统计
type consumerStats struct {
	delivered atomic.Int64
	lagged    atomic.Int64
	skipped   atomic.Uint64
}

// demoReport 演示结果
type demoReport struct {
	sent   int64
	ticks  *consumerStats
	alerts *consumerStats
}

func (r *demoReport) print(w io.Writer) {
	fmt.Fprintf(w, "已发送:   %d\n", r.sent)
	fmt.Fprintf(w, "Tick:     交付 %d，落后 %d 次，丢失 %d\n",
		r.ticks.delivered.Load(), r.ticks.lagged.Load(), r.ticks.skipped.Load())
	fmt.Fprintf(w, "Alert:    交付 %d，落后 %d 次，丢失 %d\n",
		r.alerts.delivered.Load(), r.alerts.lagged.Load(), r.alerts.skipped.Load())
}

// runDemo 运行生产者和两个类型化消费者
//
// 接收视图在生产者开始前创建，因此不会出现无订阅的发送失败。
// 生产者结束后关闭总线，消费者读完积压后收到 ErrClosed 退出。
func runDemo(ctx context.Context, bus *typedbus.Bus[Event], opts demoOptions) (*demoReport, error) {
	report := &demoReport{
		ticks:  &consumerStats{},
		alerts: &consumerStats{},
	}

	rxTick := typedbus.ReceiverOf[Tick](bus)
	rxAlert := typedbus.ReceiverOf[Alert](bus)

	consumers, cctx := errgroup.WithContext(ctx)
	consumers.Go(func() error {
		defer rxTick.Close()
		return consume(cctx, rxTick, report.ticks)
	})
	consumers.Go(func() error {
		defer rxAlert.Close()
		return consume(cctx, rxAlert, report.alerts)
	})

	var sent atomic.Int64
	producers, pctx := errgroup.WithContext(ctx)
	for p := 0; p < opts.producers; p++ {
		producers.Go(func() error {
			ticks := typedbus.SenderOf[Tick](bus)
			defer ticks.Close()
			alerts := typedbus.SenderOf[Alert](bus)
			defer alerts.Close()

			for i := 0; i < opts.events; i++ {
				if err := pctx.Err(); err != nil {
					return err
				}
				if err := ticks.Send(Tick{Producer: p, Seq: i}); err != nil {
					return fmt.Errorf("producer %d: %w", p, err)
				}
				sent.Add(1)

				if opts.alertEvery > 0 && i%opts.alertEvery == opts.alertEvery-1 {
					msg := fmt.Sprintf("producer %d reached %d", p, i+1)
					if err := alerts.Send(Alert{Producer: p, Message: msg}); err != nil {
						return fmt.Errorf("producer %d: %w", p, err)
					}
					sent.Add(1)
				}
			}
			return nil
		})
	}

	perr := producers.Wait()
	_ = bus.Close()
	cerr := consumers.Wait()

	report.sent = sent.Load()
	if perr != nil {
		return report, perr
	}
	return report, cerr
}

// consume 消费直到通道关闭，落后只计数不终止
func consume[T any](ctx context.Context, rx *typedbus.EventReceiver[Event, T], stats *consumerStats) error {
	for {
		_, err := rx.Recv(ctx)
		switch {
		case err == nil:
			stats.delivered.Add(1)
		case errors.Is(err, typedbus.ErrClosed):
			return nil
		default:
			var lagged *typedbus.LaggedError
			if !errors.As(err, &lagged) {
				return err
			}
			stats.lagged.Add(1)
			stats.skipped.Add(lagged.Skipped)
		}
	}
}
