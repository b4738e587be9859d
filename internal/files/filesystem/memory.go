package filesystem

import (
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Relative paths given to AddFile and Open resolve against the root.
type MemoryFileSystem struct {
	*AferoFileSystem
	root string
}

// NewMemoryFileSystem creates a new in-memory filesystem whose root
// directory exists but is empty.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = filepath.Clean(root)
	backend := afero.NewMemMapFs()
	_ = backend.MkdirAll(root, 0755)

	return &MemoryFileSystem{
		AferoFileSystem: NewAferoFileSystem(backend),
		root:            root,
	}
}

// Root returns the root directory path.
func (mfs *MemoryFileSystem) Root() string {
	return mfs.root
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(path string, content string) {
	mfs.AddFileWithTime(path, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time.
// Parent directories are created as needed.
func (mfs *MemoryFileSystem) AddFileWithTime(path string, content string, modTime time.Time) {
	absPath := mfs.resolve(path)
	_ = mfs.fs.MkdirAll(filepath.Dir(absPath), 0755)
	_ = afero.WriteFile(mfs.fs, absPath, []byte(content), 0644)
	_ = mfs.fs.Chtimes(absPath, modTime, modTime)
}

// AddDir adds an empty directory.
func (mfs *MemoryFileSystem) AddDir(path string) {
	_ = mfs.fs.MkdirAll(mfs.resolve(path), 0755)
}

// Open implements FileSystemProvider.Open; "." and "" open the root.
func (mfs *MemoryFileSystem) Open(path string) (Directory, error) {
	return mfs.AferoFileSystem.Open(mfs.resolve(path))
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(path string) ([]byte, error) {
	return mfs.AferoFileSystem.ReadFile(mfs.resolve(path))
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(path string) (FileInfo, error) {
	return mfs.AferoFileSystem.Stat(mfs.resolve(path))
}

func (mfs *MemoryFileSystem) resolve(path string) string {
	if path == "" || path == "." {
		return mfs.root
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(mfs.root, path)
}
