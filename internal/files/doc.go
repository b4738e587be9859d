// Package files groups file-related sub-packages.
//
//   - filesystem: directory accessor interfaces over afero backends
//     (OS, in-memory, embedded)
//
// # Usage
//
//	fsys := filesystem.NewOSFileSystem()
//	root, err := fsys.Open("./database")
//	dirs, err := root.Directories() // type directories
//	files, err := dirs[0].Files()    // scripts of one type
package files
