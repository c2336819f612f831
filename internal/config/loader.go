package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load 加载配置
//
// 优先级：环境变量 > 配置文件 > 默认值。path 为空时只读取环境变量。
// 加载后会执行 Validate。
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// setDefaults 注册默认值
//
// AutomaticEnv 只对已知键生效，所有键都需要在这里注册。
func setDefaults(v *viper.Viper) {
	def := Default()

	v.SetDefault("name", def.Name)
	v.SetDefault("capacity", def.Capacity)

	v.SetDefault("metrics.enabled", def.Metrics.Enabled)
	v.SetDefault("metrics.namespace", def.Metrics.Namespace)
	v.SetDefault("metrics.listen_addr", def.Metrics.ListenAddr)

	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
	v.SetDefault("log.file", def.Log.File)
}
