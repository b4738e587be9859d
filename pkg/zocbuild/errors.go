package zocbuild

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	scripts, err := repo.GetAllScripts(ctx)
//	if errors.Is(err, zocbuild.ErrUnsupportedDirectory) {
//	    // strict mode found a directory that maps to no object type
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrAccessorFailed indicates the file-system accessor could not list or read.
	ErrAccessorFailed = errors.New("file system access failed")

	// ErrUnsupportedDirectory indicates a root subdirectory maps to no object
	// type while unsupported directories are not allowed.
	ErrUnsupportedDirectory = errors.New("unsupported subdirectory")

	// ErrScriptNotFound indicates no script file exists for the requested object.
	ErrScriptNotFound = errors.New("script not found")

	// ErrParseFailed indicates a script's content could not be parsed.
	ErrParseFailed = errors.New("script parse failed")
)

// UnsupportedDirectoryError is returned in strict mode when a subdirectory
// of the repository root does not map to a database object type.
type UnsupportedDirectoryError struct {
	Path string
}

func (e *UnsupportedDirectoryError) Error() string {
	return fmt.Sprintf("subdirectory does not map to a database object type: %s", e.Path)
}

func (e *UnsupportedDirectoryError) Unwrap() error {
	return ErrUnsupportedDirectory
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrUnsupportedDirectory):
		return ExitUnsupportedDirectory
	case errors.Is(err, ErrAccessorFailed):
		return ExitAccessorError
	case errors.Is(err, ErrScriptNotFound):
		return ExitScriptNotFound
	}

	// cobra reports usage problems as plain errors
	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
	"missing required argument",
}
