package config

// ============================================================================
//                              默认值
// ============================================================================

const (
	// DefaultName 默认总线名称
	DefaultName = "default"

	// DefaultCapacity 默认通道容量
	DefaultCapacity = 64

	// MaxCapacity 容量上限
	// 缓冲区按容量预分配，过大的值会一次性占用大量内存
	MaxCapacity = 1 << 20

	// DefaultMetricsNamespace 默认指标前缀
	DefaultMetricsNamespace = "typedbus"

	// DefaultLogLevel 默认日志级别
	DefaultLogLevel = "info"

	// DefaultLogFormat 默认日志格式
	DefaultLogFormat = "text"
)

// Default 创建默认配置
func Default() *Config {
	return &Config{
		Name:     DefaultName,
		Capacity: DefaultCapacity,
		Metrics:  DefaultMetricsConfig(),
		Log:      DefaultLogConfig(),
	}
}

// DefaultMetricsConfig 默认指标配置
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Enabled:   false,
		Namespace: DefaultMetricsNamespace,
	}
}

// DefaultLogConfig 默认日志配置
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:  DefaultLogLevel,
		Format: DefaultLogFormat,
	}
}

// ============================================================================
//                              环境变量
// ============================================================================

// 环境变量前缀，键名中的 "." 替换为 "_"
// 例如 TYPEDBUS_CAPACITY, TYPEDBUS_METRICS_ENABLED, TYPEDBUS_LOG_LEVEL
const EnvPrefix = "TYPEDBUS"
