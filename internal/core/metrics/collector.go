package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	pkgif "github.com/dep2p/go-typedbus/pkg/interfaces"
)

var labels = []string{"bus", "kind"}

// Collector Prometheus 指标记录器
type Collector struct {
	reg *prometheus.Registry

	sent        *prometheus.CounterVec
	fanout      *prometheus.CounterVec
	sendFailed  *prometheus.CounterVec
	delivered   *prometheus.CounterVec
	skipped     *prometheus.CounterVec
	lagged      *prometheus.CounterVec
	laggedTotal *prometheus.CounterVec
	closed      *prometheus.CounterVec
}

var _ pkgif.MetricsRecorder = (*Collector)(nil)

// NewCollector 创建记录器并注册到 reg
//
// reg 为 nil 时使用新建的独立 Registry。
func NewCollector(namespace string, reg *prometheus.Registry) (*Collector, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	counter := func(name, help string) *prometheus.CounterVec {
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		}, labels)
	}

	c := &Collector{
		reg:         reg,
		sent:        counter("events_sent_total", "Events published by typed senders"),
		fanout:      counter("events_fanout_total", "Subscription entries created by published events"),
		sendFailed:  counter("send_failures_total", "Sends rejected (no receivers or sender closed)"),
		delivered:   counter("events_delivered_total", "Events delivered to typed receivers"),
		skipped:     counter("events_skipped_total", "Events skipped by typed receivers (subtype mismatch)"),
		lagged:      counter("receiver_lagged_total", "Lag failures surfaced to typed receivers"),
		laggedTotal: counter("events_lagged_total", "Events lost to receiver lag"),
		closed:      counter("receiver_closed_total", "Closed failures surfaced to typed receivers"),
	}

	for _, col := range []prometheus.Collector{
		c.sent, c.fanout, c.sendFailed, c.delivered, c.skipped, c.lagged, c.laggedTotal, c.closed,
	} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Registry 返回底层 Registry
func (c *Collector) Registry() *prometheus.Registry {
	return c.reg
}

// Handler 返回暴露指标的 HTTP handler
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}

// EventSent 实现 MetricsRecorder
//
// receivers 累加到 events_fanout_total，与 events_sent_total 之比即平均扇出。
func (c *Collector) EventSent(bus, kind string, receivers int) {
	c.sent.WithLabelValues(bus, kind).Inc()
	c.fanout.WithLabelValues(bus, kind).Add(float64(receivers))
}

// SendFailed 实现 MetricsRecorder
func (c *Collector) SendFailed(bus, kind string) {
	c.sendFailed.WithLabelValues(bus, kind).Inc()
}

// EventDelivered 实现 MetricsRecorder
func (c *Collector) EventDelivered(bus, kind string) {
	c.delivered.WithLabelValues(bus, kind).Inc()
}

// EventSkipped 实现 MetricsRecorder
func (c *Collector) EventSkipped(bus, kind string) {
	c.skipped.WithLabelValues(bus, kind).Inc()
}

// ReceiverLagged 实现 MetricsRecorder
func (c *Collector) ReceiverLagged(bus, kind string, skipped uint64) {
	c.lagged.WithLabelValues(bus, kind).Inc()
	c.laggedTotal.WithLabelValues(bus, kind).Add(float64(skipped))
}

// ReceiverClosed 实现 MetricsRecorder
func (c *Collector) ReceiverClosed(bus, kind string) {
	c.closed.WithLabelValues(bus, kind).Inc()
}
