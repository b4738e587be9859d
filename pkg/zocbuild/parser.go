package zocbuild

// ParseContext carries what the parser may need to know about the script
// beyond its text.
type ParseContext struct {
	ServerName   string
	DatabaseName string

	// ObjectName is the object name derived from the file name.
	ObjectName string

	// Path of the file being parsed, for error messages only.
	Path string
}

// ScriptParser turns raw script text into a structured SQLScript.
// Implementations must be safe for concurrent use by multiple goroutines.
type ScriptParser interface {
	Parse(ctx ParseContext, text string) (*SQLScript, error)
}
