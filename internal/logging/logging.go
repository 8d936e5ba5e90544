// Package logging builds the zap logger shared by the CLI, services and the
// HTTP request logger.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var buildConfig = func(cfg zap.Config) (*zap.Logger, error) { return cfg.Build() }

// New 依等級建立 logger；development 模式使用 console encoder
func New(level string, development bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("無效的 LOG_LEVEL: %w", err)
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := buildConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("建立 logger 失敗: %w", err)
	}
	return logger, nil
}
