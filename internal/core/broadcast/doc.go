// Package broadcast 实现固定容量的多生产者/多消费者广播通道
//
// 每个值会投递给发送时刻所有已订阅的接收端。通道由一个环形缓冲区、
// 单调递增的位置计数和每个接收端独立的游标组成：
//
//   - 发送不阻塞：没有订阅者时返回 *SendError（不缓存）
//   - 新订阅从"当前"位置开始，看不到之前发送的事件
//   - 接收端落后超过容量时，下一次接收返回 *LaggedError，随后从最旧的保留事件继续
//   - 所有 Sender 关闭后，接收端读完积压再返回 ErrClosed
//
// # 快速开始
//
//	tx, _ := broadcast.New[int](16)
//	defer tx.Close()
//
//	rx := tx.Subscribe()
//	defer rx.Close()
//
//	tx.Send(1)
//	v, err := rx.Recv(ctx)
//
// # 并发安全
//
// 共享状态由一把互斥锁保护。等待方持有一个通知通道，
// 每次状态变化（发送、关闭）时关闭旧通道并换成新通道，
// 因此 Recv 可以与 ctx.Done() 一起 select。
package broadcast
