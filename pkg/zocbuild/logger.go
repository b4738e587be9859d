package zocbuild

import "fmt"

// SeverityLevel tags a diagnostic with its importance.
type SeverityLevel int

const (
	SeverityVerbose SeverityLevel = iota
	SeverityInfo
	SeverityWarning
	SeverityError
)

func (s SeverityLevel) String() string {
	switch s {
	case SeverityVerbose:
		return "Verbose"
	case SeverityInfo:
		return "Info"
	case SeverityWarning:
		return "Warning"
	case SeverityError:
		return "Error"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// MarshalText renders the severity by name.
func (s SeverityLevel) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Diagnostic is a severity-tagged message about an excluded or problematic input.
type Diagnostic struct {
	Severity SeverityLevel `json:"severity"`
	Message  string        `json:"message"`
}

// Logger is the diagnostic sink used by the script repository.
// Log is fire-and-forget; implementations must be safe for concurrent use
// by multiple goroutines.
type Logger interface {
	Log(severity SeverityLevel, message string)
}
