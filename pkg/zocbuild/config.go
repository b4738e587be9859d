package zocbuild

import (
	"errors"
	"fmt"
)

// ScanConfig contains all parameters needed to scan a script repository.
type ScanConfig struct {
	// SourcePath is the repository root; its subdirectories are type directories.
	SourcePath string

	// ServerName is passed to the parser; it plays no part in filtering.
	ServerName string

	// DatabaseName is stamped onto every ScriptFile.
	DatabaseName string

	// AllowUnsupportedDirectories tolerates unmapped subdirectories with a
	// warning per file. When false, an unmapped subdirectory fails the scan.
	AllowUnsupportedDirectories bool

	// Parallelism bounds concurrent read-and-parse tasks. Zero selects a default.
	Parallelism int

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the ScanConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *ScanConfig) Validate() error {
	var errs []error

	if c.SourcePath == "" {
		errs = append(errs, fmt.Errorf("SourcePath is required: %w", ErrInvalidConfig))
	}

	if c.DatabaseName == "" {
		errs = append(errs, fmt.Errorf("DatabaseName is required: %w", ErrInvalidConfig))
	}

	if c.Parallelism < 0 {
		errs = append(errs, fmt.Errorf("parallelism cannot be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}
