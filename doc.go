// Package typedbus 提供类型化的发布/订阅事件总线
//
// 一个总线只承载一个超集事件类型 E（通常是一个接口或带标签的结构体），
// 但每个发送/接收视图只关心一个更窄的子类型 T。接收视图会静默跳过
// 不属于 T 的事件，而落后与关闭这类传输层错误总是立即返回。
//
// # 核心概念
//
//   - Bus: 共享广播通道，固定容量，持有一个发送端
//   - EventSender: 子类型发送视图，把 T 嵌入 E 后发布
//   - EventReceiver: 子类型接收视图，从 E 中提取 T，不匹配的事件被丢弃
//
// # 快速开始
//
//	import "github.com/dep2p/go-typedbus"
//
//	type Event interface{ isEvent() }
//
//	type Started struct{ ID uint32 }
//
//	func (Started) isEvent()        {}
//	func (s Started) Widen() Event  { return s }
//	func (s *Started) TryFrom(e Event) bool {
//	    v, ok := e.(Started)
//	    if ok {
//	        *s = v
//	    }
//	    return ok
//	}
//
//	bus, err := typedbus.New[Event](64)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer bus.Close()
//
//	rx := typedbus.ReceiverOf[Started](bus)
//	defer rx.Close()
//
//	tx := typedbus.SenderOf[Started](bus)
//	defer tx.Close()
//
//	if err := tx.Send(Started{ID: 1}); err != nil {
//	    // 没有任何订阅时返回 *SendError，可用 errors.Is(err, ErrNoReceivers) 判断
//	}
//
//	evt, err := rx.Recv(ctx)
//
// # 错误语义
//
//   - 发送：没有任何接收视图时返回 *SendError[E]（包装 ErrNoReceivers）
//   - 接收：缓冲区被覆盖时返回 *LaggedError（包装 ErrLagged），
//     游标跳到最旧的保留事件，下一次 Recv 继续
//   - 接收：所有发送端关闭且积压读完后返回 ErrClosed
//
// # 依赖注入
//
// Module 把配置、Prometheus 指标和总线组装为一个 Fx 模块：
//
//	app := fx.New(
//	    typedbus.Module[Event](cfg),
//	    fx.Invoke(func(bus *typedbus.Bus[Event]) { ... }),
//	)
package typedbus
