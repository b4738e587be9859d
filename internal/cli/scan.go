package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/zocbuild/zocbuild/internal/logging"
	"github.com/zocbuild/zocbuild/pkg/zocbuild"
)

var scanCmd = &cobra.Command{
	Use:   "scan <project_path>",
	Short: "List the build scripts of a repository",
	Long: `Scan a script repository and print the catalog of valid build scripts.

Every file that does not follow the repository layout is reported on stderr
and left out of the catalog:
  - files in subdirectories that name no object type
  - files without the .sql extension
  - files directly under the root
  - files whose object header cannot be parsed

The scan fails only when the file system cannot be read, or when an
unsupported subdirectory is found with --allow-unsupported-directories=false.

Examples:
  # Print the catalog as a table
  zocbuild scan ./database -d Sales

  # Machine-readable report including diagnostics
  zocbuild scan ./database -d Sales --json

  # Fail on any unrecognized subdirectory
  zocbuild scan ./database -d Sales --allow-unsupported-directories=false`,
	Args: RequireProjectPath,
	RunE: runScan,
}

var (
	scanFlags repositoryFlags
	scanJSON  bool
)

func init() {
	rootCmd.AddCommand(scanCmd)

	addRepositoryFlags(scanCmd, &scanFlags)
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "Print the catalog and diagnostics as JSON")
}

// scanReport is the --json output.
type scanReport struct {
	Root        string                `json:"root"`
	Database    string                `json:"database"`
	Scripts     []scriptEntry         `json:"scripts"`
	Diagnostics []zocbuild.Diagnostic `json:"diagnostics"`
}

type scriptEntry struct {
	ID          uuid.UUID                   `json:"id"`
	Type        zocbuild.DatabaseObjectType `json:"type"`
	Schema      string                      `json:"schema"`
	Name        string                      `json:"name"`
	Path        string                      `json:"path"`
	Checksum    string                      `json:"checksum"`
	ChecksumRaw string                      `json:"checksum_raw"`
	Mismatches  []string                    `json:"mismatches,omitempty"`
}

func runScan(cmd *cobra.Command, args []string) error {
	sourcePath := args[0]
	verbose := getVerboseFlag(cmd)

	sc, err := resolveScanConfig(cmd, sourcePath, scanFlags, verbose)
	if err != nil {
		return err
	}

	stderrLogger, flush, err := newDiagnosticLogger(getLogFormatFlag(cmd), verbose, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer flush()

	collected := logging.NewMemoryLogger()
	repo, err := newRepository(sc, logging.Tee{stderrLogger, collected}, scanFlags.noCache)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scripts, err := repo.GetAllScripts(ctx)
	if err != nil {
		return fmt.Errorf("scan of %s failed: %w", sc.SourcePath, err)
	}

	out := cmd.OutOrStdout()
	if scanJSON {
		return writeScanReport(out, sc, scripts, collected.Diagnostics())
	}

	renderCatalog(out, sc.SourcePath, scripts)
	fmt.Fprintf(cmd.ErrOrStderr(), "\n%d script(s) cataloged, %d warning(s), %d error(s)\n",
		len(scripts), collected.Count(zocbuild.SeverityWarning), collected.Count(zocbuild.SeverityError))
	return nil
}

func writeScanReport(w io.Writer, sc zocbuild.ScanConfig, scripts []*zocbuild.ScriptFile, diags []zocbuild.Diagnostic) error {
	report := scanReport{
		Root:        sc.SourcePath,
		Database:    sc.DatabaseName,
		Scripts:     make([]scriptEntry, 0, len(scripts)),
		Diagnostics: diags,
	}
	if report.Diagnostics == nil {
		report.Diagnostics = []zocbuild.Diagnostic{}
	}
	for _, s := range scripts {
		report.Scripts = append(report.Scripts, scriptEntry{
			ID:          s.ID,
			Type:        s.ScriptObject.ObjectType,
			Schema:      s.ScriptObject.SchemaName,
			Name:        s.ScriptObject.ObjectName,
			Path:        s.Path,
			Checksum:    s.Checksum,
			ChecksumRaw: s.ChecksumRaw,
			Mismatches:  s.Mismatches(),
		})
	}

	jsonBytes, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonBytes))
	return err
}
