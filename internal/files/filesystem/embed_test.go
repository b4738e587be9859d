package filesystem

import (
	"embed"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

//go:embed testdata
var testdataFS embed.FS

func TestEmbedFileSystem_Listing(t *testing.T) {
	efs := NewEmbedFileSystem(testdataFS)

	root, err := efs.Open("testdata")
	require.NoError(t, err)

	subdirs, err := root.Directories()
	require.NoError(t, err)
	require.Len(t, subdirs, 2)
	require.Equal(t, "procedure", subdirs[0].Name())

	files, err := subdirs[0].Files()
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, "orders_get.sql", files[0].Name())

	content, err := files[0].ReadContent()
	require.NoError(t, err)
	require.Contains(t, string(content), "orders_get")
}

func TestEmbedFileSystem_ReadFile(t *testing.T) {
	efs := NewEmbedFileSystem(testdataFS)

	content, err := efs.ReadFile("testdata/view/orders_v.sql")
	require.NoError(t, err)
	require.Contains(t, string(content), "CREATE VIEW")

	_, err = efs.ReadFile("testdata/missing.sql")
	require.Error(t, err)
}

func TestEmbedFileSystem_SlashPaths(t *testing.T) {
	efs := NewEmbedFileSystem(testdataFS)

	root, err := efs.Open(filepath.Join("testdata", "."))
	require.NoError(t, err)
	require.Equal(t, "testdata", root.Path())

	subdirs, err := root.Directories()
	require.NoError(t, err)
	require.Equal(t, "testdata/procedure", subdirs[0].Path())

	files, err := subdirs[0].Files()
	require.NoError(t, err)
	require.Equal(t, "testdata/procedure/orders_get.sql", files[0].Path())

	_, err = efs.ReadFile(filepath.Join("testdata", "view", "orders_v.sql"))
	require.NoError(t, err)

	_, err = efs.Stat("./testdata/view")
	require.NoError(t, err)
}

func TestPathStyle(t *testing.T) {
	require.Equal(t, "a/b", slashPaths.join("a", "b"))
	require.Equal(t, "a/b", slashPaths.clean("./a//b/"))
	require.Equal(t, "b", slashPaths.base("a/b"))
	require.Equal(t, filepath.Join("a", "b"), nativePaths.join("a", "b"))
	require.Equal(t, "a//b", nativePaths.arg("a//b"))
}
