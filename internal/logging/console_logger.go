package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/zocbuild/zocbuild/pkg/zocbuild"
)

// ConsoleLogger writes diagnostics as text lines.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	verbose bool
	out     io.Writer
	mu      sync.Mutex
}

// NewConsoleLogger creates a new ConsoleLogger writing to stderr.
// If verbose is false, SeverityVerbose diagnostics are dropped.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return NewConsoleLoggerWithWriter(os.Stderr, verbose)
}

// NewConsoleLoggerWithWriter creates a ConsoleLogger writing to out.
func NewConsoleLoggerWithWriter(out io.Writer, verbose bool) *ConsoleLogger {
	return &ConsoleLogger{
		verbose: verbose,
		out:     out,
	}
}

// Log writes one line; Info messages carry no prefix.
func (l *ConsoleLogger) Log(severity zocbuild.SeverityLevel, message string) {
	if severity == zocbuild.SeverityVerbose && !l.verbose {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(l.out, prefix(severity)+message+"\n")
}

func prefix(severity zocbuild.SeverityLevel) string {
	switch severity {
	case zocbuild.SeverityVerbose:
		return "[VERBOSE] "
	case zocbuild.SeverityWarning:
		return "[WARNING] "
	case zocbuild.SeverityError:
		return "[ERROR] "
	default:
		return ""
	}
}

var _ zocbuild.Logger = (*ConsoleLogger)(nil)
