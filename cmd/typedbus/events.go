package main

// Event 演示用超集事件
type Event interface {
	isEvent()
}

// Tick 周期事件
type Tick struct {
	Producer int
	Seq      int
}

// Alert 告警事件
type Alert struct {
	Producer int
	Message  string
}

func (Tick) isEvent()  {}
func (Alert) isEvent() {}

func (t Tick) Widen() Event  { return t }
func (a Alert) Widen() Event { return a }

func (t *Tick) TryFrom(e Event) bool {
	v, ok := e.(Tick)
	if ok {
		*t = v
	}
	return ok
}

func (a *Alert) TryFrom(e Event) bool {
	v, ok := e.(Alert)
	if ok {
		*a = v
	}
	return ok
}
