package filesystem

import (
	"io/fs"

	"github.com/spf13/afero"
)

// NewEmbedFileSystem exposes a read-only fs.FS (typically an embed.FS) as a
// FileSystemProvider. Paths are relative to the FS root; OS separators in
// arguments are converted, and returned paths are always slash-separated.
func NewEmbedFileSystem(fsys fs.FS) *AferoFileSystem {
	p := NewAferoFileSystem(afero.FromIOFS{FS: fsys})
	p.style = slashPaths
	return p
}
