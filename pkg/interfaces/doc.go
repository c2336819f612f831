// Package interfaces 定义 typedbus 的公共接口
//
// 接口与实现分离，实现位于 internal/ 下：
//
//   - eventbus.go   - 转换契约（Widener/Narrower）、发送/接收视图、总线选项
//   - metrics.go    - 指标记录接口
//
// # 转换契约
//
// Widener 在值类型上实现，Narrower 在指针类型上实现：
//
//	func (k Kind1) Widen() Event { return k }
//
//	func (k *Kind1) TryFrom(e Event) bool {
//	    v, ok := e.(Kind1)
//	    if ok {
//	        *k = v
//	    }
//	    return ok
//	}
//
// # 选项
//
// BusSettings 在这里导出，internal/core/eventbus 通过类型别名复用，
// 使选项可以在不引入实现包的情况下构造。
package interfaces
