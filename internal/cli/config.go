package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config [project_path]",
	Short: "Print the effective configuration",
	Long: `Print the scan configuration that results from zocbuild.yaml, the .env
file, ZOCBUILD_* environment variables and flags, in zocbuild.yaml format.

Examples:
  zocbuild config ./database
  ZOCBUILD_DATABASE=Staging zocbuild config ./database`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

var configFlags repositoryFlags

func init() {
	rootCmd.AddCommand(configCmd)

	addRepositoryFlags(configCmd, &configFlags)
}

// effectiveConfig mirrors zocbuild.yaml with every field resolved.
type effectiveConfig struct {
	Server                      string `yaml:"server"`
	Database                    string `yaml:"database"`
	Root                        string `yaml:"root"`
	AllowUnsupportedDirectories bool   `yaml:"allow_unsupported_directories"`
	Parallelism                 int    `yaml:"parallelism"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	sourcePath := "."
	if len(args) > 0 {
		sourcePath = args[0]
	}

	sc, err := resolveScanConfig(cmd, sourcePath, configFlags, getVerboseFlag(cmd))
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(effectiveConfig{
		Server:                      sc.ServerName,
		Database:                    sc.DatabaseName,
		Root:                        sc.SourcePath,
		AllowUnsupportedDirectories: sc.AllowUnsupportedDirectories,
		Parallelism:                 sc.Parallelism,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
