package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zocbuild/zocbuild/pkg/zocbuild"
)

var showCmd = &cobra.Command{
	Use:   "show <project_path> <type> <name>",
	Short: "Print the script of one database object",
	Long: `Locate <project_path>/<type>/<name>.sql, parse it and print it with a short
header. The type is one of: function, procedure, table, trigger, type, view.
The name match ignores case.

Examples:
  zocbuild show ./database procedure orders_get -d Sales`,
	Args: RequireObjectRef,
	RunE: runShow,
}

var showFlags repositoryFlags

func init() {
	rootCmd.AddCommand(showCmd)

	addRepositoryFlags(showCmd, &showFlags)
}

func runShow(cmd *cobra.Command, args []string) error {
	sourcePath, typeName, objectName := args[0], args[1], args[2]
	verbose := getVerboseFlag(cmd)

	objectType, err := zocbuild.ParseDatabaseObjectType(typeName)
	if err != nil {
		return fmt.Errorf("invalid argument: %w", err)
	}

	sc, err := resolveScanConfig(cmd, sourcePath, showFlags, verbose)
	if err != nil {
		return err
	}

	logger, flush, err := newDiagnosticLogger(getLogFormatFlag(cmd), verbose, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer flush()

	repo, err := newRepository(sc, logger, showFlags.noCache)
	if err != nil {
		return err
	}

	script, err := repo.GetScript(commandContext(cmd), objectType, objectName)
	if err != nil {
		return err
	}

	for _, m := range script.Mismatches() {
		logger.Log(zocbuild.SeverityWarning, fmt.Sprintf("%s: %s", script.Path, m))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "-- %s\n", script.ScriptObject)
	fmt.Fprintf(out, "-- %s\n", script.Path)
	fmt.Fprintf(out, "-- checksum %s\n", script.Checksum)
	fmt.Fprintln(out, script.Script.OriginalText)
	return nil
}
