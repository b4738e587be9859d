package logging

import (
	"go.uber.org/zap"

	"github.com/zocbuild/zocbuild/pkg/zocbuild"
)

// ZapLogger forwards diagnostics to a structured zap logger.
// Verbose maps to Debug, so the zap level decides whether it is emitted.
type ZapLogger struct {
	logger *zap.Logger
}

// NewZapLogger wraps logger.
// Panics if logger is nil.
func NewZapLogger(logger *zap.Logger) *ZapLogger {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &ZapLogger{logger: logger}
}

func (l *ZapLogger) Log(severity zocbuild.SeverityLevel, message string) {
	field := zap.Stringer("severity", severity)
	switch severity {
	case zocbuild.SeverityVerbose:
		l.logger.Debug(message, field)
	case zocbuild.SeverityWarning:
		l.logger.Warn(message, field)
	case zocbuild.SeverityError:
		l.logger.Error(message, field)
	default:
		l.logger.Info(message, field)
	}
}

var _ zocbuild.Logger = (*ZapLogger)(nil)
