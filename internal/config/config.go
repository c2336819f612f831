// Package config 提供 typedbus 配置管理层
//
// config 包负责：
// - 定义配置结构
// - 提供默认值
// - 配置校验
// - 从文件和环境变量加载（viper）
package config

// Config 总线配置
type Config struct {
	// Name 总线名称，用于日志和指标标签
	Name string `mapstructure:"name"`

	// Capacity 广播通道容量
	// 每个尚未追上的接收视图最多保留的事件数，构造后不可变
	Capacity int `mapstructure:"capacity"`

	// Metrics 指标配置
	Metrics MetricsConfig `mapstructure:"metrics"`

	// Log 日志配置
	Log LogConfig `mapstructure:"log"`
}

// ============================================================================
//                              指标配置
// ============================================================================

// MetricsConfig 指标配置
type MetricsConfig struct {
	// Enabled 是否记录 Prometheus 指标
	Enabled bool `mapstructure:"enabled"`

	// Namespace 指标名前缀
	Namespace string `mapstructure:"namespace"`

	// ListenAddr 指标 HTTP 监听地址，为空时不启动 HTTP 服务
	ListenAddr string `mapstructure:"listen_addr"`
}

// ============================================================================
//                              日志配置
// ============================================================================

// LogConfig 日志配置
type LogConfig struct {
	// Level 日志级别：debug, info, warn, error
	Level string `mapstructure:"level"`

	// Format 输出格式：text, json
	Format string `mapstructure:"format"`

	// File 日志文件路径
	// 为空时输出到 stderr，非空时追加写入指定文件
	File string `mapstructure:"file"`
}

// Validate 校验配置
func (c *Config) Validate() error {
	return Validate(c)
}
