package cli

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/zocbuild/zocbuild/internal/config"
	"github.com/zocbuild/zocbuild/internal/scaffold"
	"github.com/zocbuild/zocbuild/pkg/zocbuild"
)

var initCmd = &cobra.Command{
	Use:   "init <project_path>",
	Short: "Initialize a new script repository",
	Long: `Initialize a script repository in the specified directory.

The init command creates:
- one subdirectory per database object type
- zocbuild.yaml naming the database
- with --template, a set of example scripts

An existing zocbuild.yaml or script file is never overwritten.

Examples:
  zocbuild init ./database -d Sales
  zocbuild init ./database -d Sales --template sample`,
	Args: RequireProjectPath,
	RunE: runInit,
}

var (
	initDatabase string
	initServer   string
	initTemplate string
	initFs       = afero.NewOsFs()
)

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initDatabase, "database", "d", "", "Database the scripts belong to (required)")
	initCmd.Flags().StringVar(&initServer, "server", "", "Server name recorded in zocbuild.yaml")
	initCmd.Flags().StringVarP(&initTemplate, "template", "t", "", "Seed the repository with a template (sample)")
}

func runInit(cmd *cobra.Command, args []string) error {
	targetPath := args[0]
	verbose := getVerboseFlag(cmd)

	if initDatabase == "" {
		return fmt.Errorf("--database is required: %w", zocbuild.ErrInvalidConfig)
	}

	configPath := filepath.Join(targetPath, config.ConfigFileName)
	if exists, err := afero.Exists(initFs, configPath); err != nil {
		return fmt.Errorf("%w: %w", zocbuild.ErrAccessorFailed, err)
	} else if exists {
		return fmt.Errorf("%s already exists: %w", configPath, zocbuild.ErrInvalidConfig)
	}

	if initTemplate != "" {
		templates, err := scaffold.ListTemplates()
		if err != nil {
			return fmt.Errorf("failed to list templates: %w", err)
		}
		if !slices.Contains(templates, initTemplate) {
			return fmt.Errorf("unknown template %q (available: %s): %w",
				initTemplate, strings.Join(templates, ", "), zocbuild.ErrInvalidConfig)
		}
	}

	if err := scaffold.NewScaffolder(initFs, verbose).CreateRepository(targetPath, initTemplate, initDatabase); err != nil {
		return err
	}

	cfg := &config.ProjectConfig{Server: initServer, Database: initDatabase}
	if err := config.Save(initFs, targetPath, cfg); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "✓ Initialized script repository for %s in %s\n", initDatabase, targetPath)
	return nil
}
