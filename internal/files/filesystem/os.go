package filesystem

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// OSFileSystem implements FileSystemProvider for the OS filesystem.
// Directory paths are made absolute so diagnostics carry full paths.
type OSFileSystem struct {
	*AferoFileSystem
}

// NewOSFileSystem creates a new OS filesystem provider
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{AferoFileSystem: NewAferoFileSystem(afero.NewOsFs())}
}

func (p *OSFileSystem) Open(path string) (Directory, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}
	return p.AferoFileSystem.Open(absPath)
}
