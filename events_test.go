package typedbus_test

// ════════════════════════════════════════════════════════════════════════════
// 测试事件域
// ════════════════════════════════════════════════════════════════════════════

// Event 超集事件
type Event interface {
	isEvent()
}

// Started 启动事件
type Started struct {
	ID uint32
}

// Stopped 停止事件
type Stopped struct{}

func (Started) isEvent() {}
func (Stopped) isEvent() {}

func (s Started) Widen() Event { return s }
func (s Stopped) Widen() Event { return s }

func (s *Started) TryFrom(e Event) bool {
	v, ok := e.(Started)
	if ok {
		*s = v
	}
	return ok
}

func (s *Stopped) TryFrom(e Event) bool {
	v, ok := e.(Stopped)
	if ok {
		*s = v
	}
	return ok
}
