// Package filesystem provides the directory accessor used by the script
// repository.
//
// Listings are one level deep: a Directory yields its immediate
// subdirectories and files, sorted by name. All implementations sit on
// github.com/spf13/afero:
//   - OSFileSystem: the OS filesystem, with absolute directory paths
//   - MemoryFileSystem: afero.MemMapFs with helpers for building fixtures
//   - NewEmbedFileSystem: read-only access to an fs.FS such as embed.FS
package filesystem
