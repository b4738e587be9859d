package logging

import (
	"sync"

	"github.com/zocbuild/zocbuild/pkg/zocbuild"
)

// MemoryLogger records every diagnostic in arrival order.
// Safe for concurrent use by multiple goroutines.
type MemoryLogger struct {
	mu   sync.Mutex
	logs []zocbuild.Diagnostic
}

// NewMemoryLogger creates an empty MemoryLogger.
func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(severity zocbuild.SeverityLevel, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logs = append(l.logs, zocbuild.Diagnostic{Severity: severity, Message: message})
}

// Diagnostics returns a copy of the recorded diagnostics.
func (l *MemoryLogger) Diagnostics() []zocbuild.Diagnostic {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]zocbuild.Diagnostic, len(l.logs))
	copy(out, l.logs)
	return out
}

// Count returns how many diagnostics of the given severity were recorded.
func (l *MemoryLogger) Count(severity zocbuild.SeverityLevel) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, d := range l.logs {
		if d.Severity == severity {
			n++
		}
	}
	return n
}

// Reset discards everything recorded so far.
func (l *MemoryLogger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logs = nil
}

var _ zocbuild.Logger = (*MemoryLogger)(nil)
