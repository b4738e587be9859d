package zocbuild

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess              = 0  // Scan completed (possibly with diagnostics)
	ExitGeneralError         = 1  // Unknown or unclassified error
	ExitUsageError           = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic                = 3  // Internal panic (unexpected crash)
	ExitConfigError          = 10 // Invalid configuration
	ExitAccessorError        = 15 // Root or subdirectory could not be read
	ExitUnsupportedDirectory = 16 // Strict mode found an unmapped subdirectory
	ExitScriptNotFound       = 17 // Requested object has no script file
)

const (
	// ScriptFileExtension is the only suffix accepted as a build script.
	// The comparison is case-sensitive.
	ScriptFileExtension = ".sql"

	// DefaultSchemaName is used when a script header names no schema.
	DefaultSchemaName = "dbo"

	// ProjectFileName is the project settings file kept at the repository root.
	ProjectFileName = "zocbuild.yaml"

	// EnvFileName holds local overrides next to the project file.
	EnvFileName = ".env"

	// DefaultParseCacheSize is the number of parse results kept by the caching parser.
	DefaultParseCacheSize = 1024
)
