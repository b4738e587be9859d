package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "zocbuild",
	Short: "Catalog database build scripts",
	Long: `zocbuild discovers SQL build scripts stored one object per file under a
repository root, checks that each file follows the layout, and reports the
resulting catalog.

Repository layout:
  <root>/function/  <root>/procedure/  <root>/table/
  <root>/trigger/   <root>/type/       <root>/view/

Each type directory holds one <object_name>.sql file per object. Files that
do not follow the layout are reported and skipped.

Exit Codes:
  0  - Success (diagnostics may have been reported)
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  15 - Repository root or a type directory could not be read
  16 - Unsupported subdirectory found with --allow-unsupported-directories=false
  17 - Requested script not found`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().String("log-format", "text", "Diagnostic format on stderr: text or json")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

func getLogFormatFlag(cmd *cobra.Command) string {
	format, err := cmd.Flags().GetString("log-format")
	if err != nil {
		return "text"
	}
	return format
}

// commandContext returns the command's context, or Background when the
// command runs outside Execute (as in tests).
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
