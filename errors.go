package typedbus

import "github.com/dep2p/go-typedbus/internal/core/eventbus"

// 公共错误定义
var (
	// ────────────────────────────────────────────────────────────────────────
	// 发送错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrNoReceivers 发送时没有任何接收视图
	ErrNoReceivers = eventbus.ErrNoReceivers

	// ErrSenderClosed 发送视图已关闭
	ErrSenderClosed = eventbus.ErrSenderClosed

	// ────────────────────────────────────────────────────────────────────────
	// 接收错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrClosed 所有发送端已关闭且积压读完，或接收视图已关闭
	ErrClosed = eventbus.ErrClosed

	// ErrLagged 接收视图落后，部分事件被覆盖
	ErrLagged = eventbus.ErrLagged

	// ErrEmpty 当前没有可交付的事件（仅 TryRecv）
	ErrEmpty = eventbus.ErrEmpty

	// ────────────────────────────────────────────────────────────────────────
	// 构造错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrInvalidCapacity 容量必须为正数
	ErrInvalidCapacity = eventbus.ErrInvalidCapacity
)

// LaggedError 接收视图落后错误，Skipped 为丢失的事件数
type LaggedError = eventbus.LaggedError

// SendError 无接收视图时的发送错误，Value 为未投递的超集值
type SendError[E any] = eventbus.SendError[E]
