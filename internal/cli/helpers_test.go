package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func createTestProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}
	}
	return dir
}

func resetFlags(t *testing.T) {
	t.Helper()
	scanFlags = repositoryFlags{allowUnsupported: true}
	scanJSON = false
	showFlags = repositoryFlags{allowUnsupported: true}
	configFlags = repositoryFlags{allowUnsupported: true}
	initDatabase = ""
	initServer = ""
	initTemplate = ""
	for _, cmd := range []*cobra.Command{scanCmd, showCmd, initCmd, configCmd} {
		cmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	}
	for name, value := range map[string]string{"verbose": "false", "log-format": "text"} {
		if err := rootCmd.PersistentFlags().Set(name, value); err != nil {
			t.Fatalf("Failed to reset --%s: %v", name, err)
		}
	}
	for _, env := range []string{"ZOCBUILD_SERVER", "ZOCBUILD_DATABASE", "ZOCBUILD_ROOT",
		"ZOCBUILD_ALLOW_UNSUPPORTED_DIRECTORIES", "ZOCBUILD_PARALLELISM"} {
		if v, ok := os.LookupEnv(env); ok {
			t.Setenv(env, v)
			os.Unsetenv(env)
		}
	}
}

// executeCommand runs the root command with args and captures its output.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(t)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	_, err := rootCmd.ExecuteC()
	return stdout.String(), stderr.String(), err
}
