// Package eventbus 实现类型化事件总线
//
// 一个共享广播通道承载超集事件类型 E，每个发送/接收视图只关心
// 一个更窄的子类型 T：
//   - 发送视图把 T 嵌入 E 后发布
//   - 接收视图读取 E，提取失败的事件被静默跳过，只交付 T
//   - 落后（*LaggedError）和关闭（ErrClosed）总是立即返回给调用方
//
// # 快速开始
//
//	type Event interface{ isEvent() }
//
//	type Kind1 struct{ ID uint32 }
//
//	func (Kind1) isEvent()          {}
//	func (k Kind1) Widen() Event    { return k }
//	func (k *Kind1) TryFrom(e Event) bool {
//	    v, ok := e.(Kind1)
//	    if ok {
//	        *k = v
//	    }
//	    return ok
//	}
//
//	// 创建总线
//	bus, _ := eventbus.New[Event](64)
//	defer bus.Close()
//
//	// 接收视图
//	rx := eventbus.ReceiverOf[Kind1](bus)
//	defer rx.Close()
//
//	// 发送视图
//	tx := eventbus.SenderOf[Kind1](bus)
//	defer tx.Close()
//	tx.Send(Kind1{ID: 7})
//
//	evt, err := rx.Recv(ctx)
//
// 无法在子类型上实现 Widener/Narrower 时，使用 SenderWith/ReceiverWith
// 传入显式的转换函数，或使用 Upcast/Downcast。
//
// # Fx 模块
//
//	app := fx.New(
//	    fx.Supply(config.Default()),
//	    eventbus.Module[Event](),
//	    fx.Invoke(func(bus *eventbus.Bus[Event]) {
//	        rx := eventbus.ReceiverOf[Kind1](bus)
//	        // ...
//	    }),
//	)
//
// # 并发安全
//
// 所有同步都由 internal/core/broadcast 完成，本包不引入额外的锁或队列。
// 视图派生函数可并发调用；每个接收视图拥有独立的订阅游标。
package eventbus
