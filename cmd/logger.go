package cmd

import (
	"go.uber.org/zap"
)

// NewLogger builds the process logger. An unknown level falls back to info.
func NewLogger(level string, development bool) (*zap.Logger, error) {
	logConfig := zap.NewProductionConfig()
	if development {
		logConfig = zap.NewDevelopmentConfig()
	}

	logLevel := zap.NewAtomicLevel()
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		logLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logConfig.Level = logLevel

	return logConfig.Build()
}
