// Package eventbus 实现类型化事件总线
package eventbus

// ============================================================================
// 常用转换
// ============================================================================

// Upcast 把 T 嵌入接口类型 E
//
// 适用于超集类型是一个接口、子类型实现了该接口的常见情况：
//
//	tx := eventbus.SenderWith(bus, eventbus.Upcast[Event, Kind1])
//
// T 未实现 E 时 panic。
func Upcast[E, T any](v T) E {
	return any(v).(E)
}

// Downcast 通过类型断言从 E 中提取 T
//
//	rx := eventbus.ReceiverWith(bus, eventbus.Downcast[Event, Kind1])
func Downcast[E, T any](e E) (T, bool) {
	v, ok := any(e).(T)
	return v, ok
}

// ReceiverAll 返回接收全部超集事件的视图
func ReceiverAll[E any](b *Bus[E]) *EventReceiver[E, E] {
	return ReceiverWith(b, func(e E) (E, bool) { return e, true })
}
