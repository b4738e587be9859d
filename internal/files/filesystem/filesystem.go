package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// File represents an individual file with its metadata and content accessor
type File interface {
	// Path returns the full path to the file
	Path() string

	// Name returns the base name of the file
	Name() string

	// Info returns file metadata
	Info() FileInfo

	// ReadContent returns the file's content
	ReadContent() ([]byte, error)
}

// Directory represents one directory level. Listings are never recursive.
type Directory interface {
	// Path returns the full path to the directory
	Path() string

	// Name returns the base name of the directory
	Name() string

	// Directories returns the immediate subdirectories, sorted by name.
	Directories() ([]Directory, error)

	// Files returns the immediate regular files, sorted by name.
	Files() ([]File, error)
}

// FileSystemProvider is a factory for creating Directory instances
type FileSystemProvider interface {
	// Open opens a directory at the specified path
	Open(path string) (Directory, error)

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)
}
