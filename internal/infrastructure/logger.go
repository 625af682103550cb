package infrastructure

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a new structured logger using zap
func NewLogger(environment string) (*zap.Logger, error) {
	var config zap.Config

	if environment == "production" {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	// Common settings
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.CallerKey = "caller"
	config.EncoderConfig.StacktraceKey = "stacktrace"

	logger, err := config.Build(
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if err != nil {
		return nil, err
	}

	return logger, nil
}

// CommandLogger creates a logger scoped to one bot command invocation
func CommandLogger(logger *zap.Logger, updateID string, chatID int64, command string) *zap.Logger {
	return logger.With(
		zap.String("update_id", updateID),
		zap.Int64("chat_id", chatID),
		zap.String("command", command),
	)
}

// LogUpstreamCall logs a remote collaborator round trip with timing
func LogUpstreamCall(logger *zap.Logger, operation string, duration time.Duration, err error) {
	fields := []zap.Field{
		zap.String("operation", operation),
		zap.Duration("duration", duration),
	}
	if err != nil {
		logger.Warn("Upstream call failed", append(fields, zap.Error(err))...)
		return
	}
	logger.Debug("Upstream call completed", fields...)
}

// LogError logs an error with stack trace
func LogError(logger *zap.Logger, message string, err error, fields ...zap.Field) {
	allFields := append(fields, zap.Error(err))
	logger.Error(message, allFields...)
}

// SyncLogger flushes any buffered log entries
func SyncLogger(logger *zap.Logger) {
	if err := logger.Sync(); err != nil {
		// Ignore sync errors for stdout/stderr
		if _, ok := err.(*os.PathError); !ok {
			logger.Error("Failed to sync logger", zap.Error(err))
		}
	}
}
