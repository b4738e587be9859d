package filesystem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystem_Listing(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")

	mfs.AddFile("root.sql", "SELECT 1;")
	mfs.AddFile("procedure/b_get.sql", "CREATE PROCEDURE b_get AS SELECT 1;")
	mfs.AddFile("procedure/a_get.sql", "CREATE PROCEDURE a_get AS SELECT 1;")
	mfs.AddFile("procedure/nested/deep.sql", "SELECT 1;")
	mfs.AddFile("view/orders_v.sql", "CREATE VIEW orders_v AS SELECT 1;")

	dir, err := mfs.Open("/test/project")
	require.NoError(t, err, "Failed to open root directory")
	require.Equal(t, "/test/project", dir.Path())
	require.Equal(t, "project", dir.Name())

	subdirs, err := dir.Directories()
	require.NoError(t, err)
	require.Len(t, subdirs, 2)
	require.Equal(t, "procedure", subdirs[0].Name())
	require.Equal(t, "view", subdirs[1].Name())

	rootFiles, err := dir.Files()
	require.NoError(t, err)
	require.Len(t, rootFiles, 1)
	require.Equal(t, "/test/project/root.sql", rootFiles[0].Path())

	files, err := subdirs[0].Files()
	require.NoError(t, err)
	require.Len(t, files, 2, "Listing must not recurse into nested directories")
	require.Equal(t, "a_get.sql", files[0].Name())
	require.Equal(t, "/test/project/procedure/b_get.sql", files[1].Path())

	content, err := files[0].ReadContent()
	require.NoError(t, err)
	require.Equal(t, "CREATE PROCEDURE a_get AS SELECT 1;", string(content))

	nested, err := subdirs[0].Directories()
	require.NoError(t, err)
	require.Len(t, nested, 1)
	require.Equal(t, "nested", nested[0].Name())
}

func TestMemoryFileSystem_ReadFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")

	expectedContent := "SELECT 1;"
	mfs.AddFile("root.sql", expectedContent)

	content, err := mfs.ReadFile("/test/project/root.sql")
	require.NoError(t, err)
	require.Equal(t, expectedContent, string(content))

	content, err = mfs.ReadFile("root.sql")
	require.NoError(t, err)
	require.Equal(t, expectedContent, string(content))

	_, err = mfs.ReadFile("missing.sql")
	require.Error(t, err)

	mfs.AddDir("table")
	_, err = mfs.ReadFile("table")
	require.Error(t, err, "Reading a directory should fail")
}

func TestMemoryFileSystem_Stat(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	modTime := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	mfs.AddFileWithTime("root.sql", "SELECT 1;", modTime)

	info, err := mfs.Stat("/test/project/root.sql")
	require.NoError(t, err)
	require.False(t, info.IsDir())
	require.Equal(t, "root.sql", info.Name())
	require.True(t, info.ModTime().Equal(modTime))

	info, err = mfs.Stat("/test/project")
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestMemoryFileSystem_Open_Errors(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	mfs.AddFile("root.sql", "SELECT 1;")

	_, err := mfs.Open("/nonexistent")
	require.Error(t, err)

	_, err = mfs.Open("root.sql")
	require.Error(t, err, "Opening a file as a directory should fail")

	dir, err := mfs.Open(".")
	require.NoError(t, err)
	require.Equal(t, mfs.Root(), dir.Path())
}

func TestMemoryFileSystem_EmptyDirectory(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	mfs.AddDir("table")

	dir, err := mfs.Open("table")
	require.NoError(t, err)

	files, err := dir.Files()
	require.NoError(t, err)
	require.Empty(t, files)
}

func TestNewAferoFileSystem_NilBackend(t *testing.T) {
	require.Panics(t, func() { NewAferoFileSystem(nil) })
}
