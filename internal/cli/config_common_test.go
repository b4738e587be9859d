package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/zocbuild/zocbuild/internal/logging"
	"github.com/zocbuild/zocbuild/pkg/zocbuild"
)

func TestConfigCmd_Precedence(t *testing.T) {
	dir := createTestProject(t, map[string]string{
		"zocbuild.yaml": "server: file-server\ndatabase: file-db\nparallelism: 2\n",
		".env":          "ZOCBUILD_DATABASE=dotenv-db\n",
	})

	stdout, _, err := executeCommand(t, "config", dir, "-j", "5")
	require.NoError(t, err)

	var got effectiveConfig
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, effectiveConfig{
		Server:                      "file-server",
		Database:                    "dotenv-db",
		Root:                        dir,
		AllowUnsupportedDirectories: true,
		Parallelism:                 5,
	}, got)
}

func TestConfigCmd_VerboseDumpGoesToCommandStderr(t *testing.T) {
	dir := createTestProject(t, map[string]string{"zocbuild.yaml": "database: sales\n"})

	stdout, stderr, err := executeCommand(t, "config", dir, "--verbose", "-j", "3")
	require.NoError(t, err)
	assert.Contains(t, stderr, "[VERBOSE] Scan configuration:")
	assert.Contains(t, stderr, "  Database: sales")
	assert.Contains(t, stderr, "  Parallelism: 3")
	assert.NotContains(t, stdout, "[VERBOSE]")
}

func TestConfigCmd_InvalidEnv(t *testing.T) {
	dir := createTestProject(t, map[string]string{"zocbuild.yaml": "database: sales\n"})
	resetFlags(t)
	t.Setenv("ZOCBUILD_PARALLELISM", "lots")

	rootCmd.SetArgs([]string{"config", dir})
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil); rootCmd.SetErr(nil) })

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Equal(t, zocbuild.ExitConfigError, zocbuild.ExitCodeForError(err))
}

func TestNewDiagnosticLogger(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		logger, flush, err := newDiagnosticLogger("text", false, &buf)
		require.NoError(t, err)
		defer flush()

		logger.Log(zocbuild.SeverityVerbose, "hidden")
		logger.Log(zocbuild.SeverityWarning, "shown")
		assert.Equal(t, "[WARNING] shown\n", buf.String())
	})

	t.Run("json verbose", func(t *testing.T) {
		var buf bytes.Buffer
		logger, flush, err := newDiagnosticLogger("json", true, &buf)
		require.NoError(t, err)

		logger.Log(zocbuild.SeverityVerbose, "detail")
		flush()
		assert.Contains(t, buf.String(), `"level":"debug"`)
		assert.Contains(t, buf.String(), `"msg":"detail"`)
	})

	t.Run("unknown", func(t *testing.T) {
		_, _, err := newDiagnosticLogger("xml", false, &bytes.Buffer{})
		assert.ErrorIs(t, err, zocbuild.ErrInvalidConfig)
	})
}

func TestNewRepository_WithAndWithoutCache(t *testing.T) {
	dir := createTestProject(t, map[string]string{
		"view/a.sql": "CREATE VIEW a AS SELECT 1",
		"view/b.sql": "CREATE VIEW a AS SELECT 1",
	})
	sc := zocbuild.ScanConfig{SourcePath: dir, DatabaseName: "Sales"}

	for _, noCache := range []bool{false, true} {
		logger := logging.NewMemoryLogger()
		repo, err := newRepository(sc, logger, noCache)
		require.NoError(t, err)

		scripts, err := repo.GetAllScripts(t.Context())
		require.NoError(t, err)
		require.Len(t, scripts, 2)
		assert.Equal(t, "b", scripts[1].ScriptObject.ObjectName)
		assert.True(t, strings.HasSuffix(scripts[1].Path, "b.sql"))
		assert.Len(t, scripts[1].Mismatches(), 1, "b.sql defines view a")
	}
}
