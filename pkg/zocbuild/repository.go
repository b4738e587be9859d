package zocbuild

import "context"

// ScriptRepository discovers build scripts and returns them as a catalog.
type ScriptRepository interface {
	// GetAllScripts scans the repository and returns every valid script.
	// Per-file problems are reported to the repository's Logger and the file
	// is skipped; only accessor failures are returned as errors.
	GetAllScripts(ctx context.Context) ([]*ScriptFile, error)

	// GetScript loads the script for a single object.
	// Returns ErrScriptNotFound if no matching file exists.
	GetScript(ctx context.Context, objectType DatabaseObjectType, objectName string) (*ScriptFile, error)
}
