package config

import (
	"go.uber.org/fx"
)

// Provider 配置提供者
//
// Provider 负责将配置分发给各个组件
type Provider struct {
	config *Config
}

// NewProvider 创建配置提供者，配置无效时返回错误
func NewProvider(config *Config) (*Provider, error) {
	if config == nil {
		config = Default()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Provider{
		config: config,
	}, nil
}

// GetConfig 获取完整配置
func (p *Provider) GetConfig() *Config {
	return p.config
}

// GetMetrics 获取指标配置
func (p *Provider) GetMetrics() *MetricsConfig {
	return &p.config.Metrics
}

// GetLog 获取日志配置
func (p *Provider) GetLog() *LogConfig {
	return &p.config.Log
}

// Module 返回配置 Fx 模块
//
// 向容器提供 *Config 和 *Provider。
func Module(cfg *Config) fx.Option {
	return fx.Module("config",
		fx.Supply(cfg),
		fx.Provide(NewProvider),
	)
}
