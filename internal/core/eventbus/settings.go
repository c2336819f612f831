// Package eventbus 实现类型化事件总线
package eventbus

import pkgif "github.com/dep2p/go-typedbus/pkg/interfaces"

// busSettings 是 pkg/interfaces.BusSettings 的别名
type busSettings = pkgif.BusSettings
