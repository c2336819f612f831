package typedbus

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dep2p/go-typedbus/pkg/lib/log"
)

// SetupLogging 按配置设置全局日志
//
// File 为空时输出到 stderr。返回的 Closer 用于关闭日志文件，
// 输出到 stderr 时 Close 不做任何事。
func SetupLogging(cfg LogConfig) (io.Closer, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	if cfg.File != "" {
		if dir := filepath.Dir(cfg.File); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create log dir: %w", err)
			}
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	if err := log.Setup(w, level, cfg.Format); err != nil {
		_ = closer.Close()
		return nil, err
	}
	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
