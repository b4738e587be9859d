package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zocbuild/zocbuild/pkg/zocbuild"
)

func TestRequireProjectPath(t *testing.T) {
	err := RequireProjectPath(scanCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required argument: <project_path>")
	assert.Equal(t, zocbuild.ExitUsageError, zocbuild.ExitCodeForError(err))

	err = RequireProjectPath(scanCmd, []string{"a", "b"})
	require.Error(t, err)
	assert.Equal(t, zocbuild.ExitUsageError, zocbuild.ExitCodeForError(err))

	assert.NoError(t, RequireProjectPath(scanCmd, []string{"a"}))
}

func TestRequireObjectRef(t *testing.T) {
	err := RequireObjectRef(showCmd, []string{"./db", "procedure"})
	require.Error(t, err)
	assert.Equal(t, zocbuild.ExitUsageError, zocbuild.ExitCodeForError(err))

	err = RequireObjectRef(showCmd, []string{"a", "b", "c", "d"})
	require.Error(t, err)
	assert.Equal(t, zocbuild.ExitUsageError, zocbuild.ExitCodeForError(err))

	assert.NoError(t, RequireObjectRef(showCmd, []string{"./db", "procedure", "orders_get"}))
}
