package filesystem

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/spf13/afero"
)

// aferoFile implements File on top of an afero.Fs
type aferoFile struct {
	fs   afero.Fs
	path string
	info FileInfo
}

func (f *aferoFile) Path() string   { return f.path }
func (f *aferoFile) Name() string   { return f.info.Name() }
func (f *aferoFile) Info() FileInfo { return f.info }

func (f *aferoFile) ReadContent() ([]byte, error) {
	return afero.ReadFile(f.fs, f.path)
}

// pathStyle selects how paths are joined and cleaned. io/fs backends only
// accept slash-separated paths, whatever the host OS.
type pathStyle int

const (
	nativePaths pathStyle = iota
	slashPaths
)

func (s pathStyle) join(elem ...string) string {
	if s == slashPaths {
		return path.Join(elem...)
	}
	return filepath.Join(elem...)
}

func (s pathStyle) clean(p string) string {
	if s == slashPaths {
		return path.Clean(filepath.ToSlash(p))
	}
	return filepath.Clean(p)
}

// arg prepares a caller-supplied path for the backend without cleaning
// native paths.
func (s pathStyle) arg(p string) string {
	if s == slashPaths {
		return s.clean(p)
	}
	return p
}

func (s pathStyle) base(p string) string {
	if s == slashPaths {
		return path.Base(p)
	}
	return filepath.Base(p)
}

// aferoDirectory implements Directory on top of an afero.Fs
type aferoDirectory struct {
	fs    afero.Fs
	path  string
	style pathStyle
}

func (d *aferoDirectory) Path() string { return d.path }
func (d *aferoDirectory) Name() string { return d.style.base(d.path) }

func (d *aferoDirectory) Directories() ([]Directory, error) {
	entries, err := afero.ReadDir(d.fs, d.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", d.path, err)
	}

	var dirs []Directory
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dirs = append(dirs, &aferoDirectory{fs: d.fs, path: d.style.join(d.path, entry.Name()), style: d.style})
	}
	return dirs, nil
}

func (d *aferoDirectory) Files() ([]File, error) {
	entries, err := afero.ReadDir(d.fs, d.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", d.path, err)
	}

	var files []File
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, &aferoFile{fs: d.fs, path: d.style.join(d.path, entry.Name()), info: entry})
	}
	return files, nil
}

// AferoFileSystem implements FileSystemProvider for any afero backend.
// Safe for concurrent use if the backend is.
type AferoFileSystem struct {
	fs    afero.Fs
	style pathStyle
}

// NewAferoFileSystem wraps an afero.Fs.
// Panics if fs is nil.
func NewAferoFileSystem(fs afero.Fs) *AferoFileSystem {
	if fs == nil {
		panic("fs cannot be nil")
	}
	return &AferoFileSystem{fs: fs}
}

// Backend returns the underlying afero filesystem.
func (p *AferoFileSystem) Backend() afero.Fs {
	return p.fs
}

func (p *AferoFileSystem) Open(path string) (Directory, error) {
	path = p.style.clean(path)
	info, err := p.fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", path)
	}
	return &aferoDirectory{fs: p.fs, path: path, style: p.style}, nil
}

func (p *AferoFileSystem) ReadFile(path string) ([]byte, error) {
	path = p.style.arg(path)
	info, err := p.fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("file not found: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}
	return afero.ReadFile(p.fs, path)
}

func (p *AferoFileSystem) Stat(path string) (FileInfo, error) {
	return p.fs.Stat(p.style.arg(path))
}
