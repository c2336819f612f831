package config

import (
	"fmt"
	"strings"

	"github.com/dep2p/go-typedbus/pkg/lib/log"
)

// ValidationError 配置校验错误
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("配置错误 [%s]: %s", e.Field, e.Message)
}

// ValidationErrors 多个配置校验错误
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}

	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// HasErrors 是否有错误
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// Validator 配置校验器
type Validator struct {
	errors ValidationErrors
}

// NewValidator 创建校验器
func NewValidator() *Validator {
	return &Validator{
		errors: make(ValidationErrors, 0),
	}
}

// addError 添加错误
func (v *Validator) addError(field, message string) {
	v.errors = append(v.errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// Errors 返回所有错误
func (v *Validator) Errors() ValidationErrors {
	return v.errors
}

// Validate 校验配置
func Validate(config *Config) error {
	v := NewValidator()

	if strings.TrimSpace(config.Name) == "" {
		v.addError("name", "不能为空")
	}

	v.validateCapacity(config.Capacity)
	v.validateMetrics(&config.Metrics)
	v.validateLog(&config.Log)

	if v.errors.HasErrors() {
		return v.errors
	}
	return nil
}

// validateCapacity 校验通道容量
func (v *Validator) validateCapacity(capacity int) {
	if capacity <= 0 {
		v.addError("capacity", "必须为正数")
		return
	}
	if capacity > MaxCapacity {
		v.addError("capacity", fmt.Sprintf("不能超过 %d", MaxCapacity))
	}
}

// validateMetrics 校验指标配置
func (v *Validator) validateMetrics(cfg *MetricsConfig) {
	if !cfg.Enabled {
		return
	}
	if cfg.Namespace == "" {
		v.addError("metrics.namespace", "启用指标时不能为空")
	}
	if strings.ContainsAny(cfg.Namespace, " -.") {
		v.addError("metrics.namespace", "只能包含字母、数字和下划线")
	}
}

// validateLog 校验日志配置
func (v *Validator) validateLog(cfg *LogConfig) {
	if _, err := log.ParseLevel(cfg.Level); err != nil {
		v.addError("log.level", "可选: debug, info, warn, error")
	}

	switch strings.ToLower(cfg.Format) {
	case "", log.FormatText, log.FormatJSON:
	default:
		v.addError("log.format", "可选: text, json")
	}
}
