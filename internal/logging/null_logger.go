package logging

import "github.com/zocbuild/zocbuild/pkg/zocbuild"

// NullLogger is a no-op logger that discards all diagnostics.
type NullLogger struct{}

// NewNullLogger creates a new NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

// Log is a no-op.
func (l *NullLogger) Log(severity zocbuild.SeverityLevel, message string) {}

var _ zocbuild.Logger = (*NullLogger)(nil)
