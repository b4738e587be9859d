package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zocbuild/zocbuild/internal/config"
	"github.com/zocbuild/zocbuild/internal/files/filesystem"
	"github.com/zocbuild/zocbuild/internal/logging"
	"github.com/zocbuild/zocbuild/internal/parser"
	"github.com/zocbuild/zocbuild/internal/repository"
	"github.com/zocbuild/zocbuild/pkg/zocbuild"
)

// repositoryFlags holds the flags shared by commands that open a repository.
type repositoryFlags struct {
	server           string
	database         string
	allowUnsupported bool
	parallelism      int
	noCache          bool
}

func addRepositoryFlags(cmd *cobra.Command, f *repositoryFlags) {
	cmd.Flags().StringVarP(&f.database, "database", "d", "", "Database the scripts belong to (overrides zocbuild.yaml)")
	cmd.Flags().StringVar(&f.server, "server", "", "Server name passed to the parser")
	cmd.Flags().BoolVar(&f.allowUnsupported, "allow-unsupported-directories", true,
		"Warn about files in unrecognized subdirectories instead of failing")
	cmd.Flags().IntVarP(&f.parallelism, "parallelism", "j", 0, "Concurrent file reads and parses (0 = number of CPUs)")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "Disable the parse result cache")
}

// resolveScanConfig merges zocbuild.yaml, .env, the environment and flags.
// Priority (highest to lowest): flags > environment > .env > zocbuild.yaml
func resolveScanConfig(cmd *cobra.Command, sourcePath string, flags repositoryFlags, verbose bool) (zocbuild.ScanConfig, error) {
	projectCfg, err := config.Resolve(sourcePath)
	if err != nil {
		return zocbuild.ScanConfig{}, err
	}

	sc := projectCfg.ScanConfig(sourcePath)
	sc.Verbose = verbose

	if flags.database != "" {
		sc.DatabaseName = flags.database
	}
	if flags.server != "" {
		sc.ServerName = flags.server
	}
	if projectCfg.AllowUnsupportedDirectories == nil || cmd.Flags().Changed("allow-unsupported-directories") {
		sc.AllowUnsupportedDirectories = flags.allowUnsupported
	}
	if cmd.Flags().Changed("parallelism") {
		sc.Parallelism = flags.parallelism
	}

	if err := sc.Validate(); err != nil {
		return zocbuild.ScanConfig{}, err
	}

	if verbose {
		w := cmd.ErrOrStderr()
		fmt.Fprintf(w, "[VERBOSE] Scan configuration:\n")
		fmt.Fprintf(w, "  Root: %s\n", sc.SourcePath)
		fmt.Fprintf(w, "  Database: %s\n", sc.DatabaseName)
		fmt.Fprintf(w, "  Server: %s\n", sc.ServerName)
		fmt.Fprintf(w, "  Allow unsupported directories: %v\n", sc.AllowUnsupportedDirectories)
		fmt.Fprintf(w, "  Parallelism: %d\n", sc.Parallelism)
	}
	return sc, nil
}

// newDiagnosticLogger builds the stderr sink for the selected log format.
// The returned function flushes buffered output.
func newDiagnosticLogger(format string, verbose bool, stderr io.Writer) (zocbuild.Logger, func(), error) {
	switch format {
	case "", "text":
		return logging.NewConsoleLoggerWithWriter(stderr, verbose), func() {}, nil
	case "json":
		level := zapcore.InfoLevel
		if verbose {
			level = zapcore.DebugLevel
		}
		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(stderr), level)
		logger := zap.New(core)
		return logging.NewZapLogger(logger), func() { _ = logger.Sync() }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported --log-format %q (expected text or json): %w", format, zocbuild.ErrInvalidConfig)
	}
}

// newRepository wires the OS filesystem, the T-SQL parser and logger into a
// repository for sc.
func newRepository(sc zocbuild.ScanConfig, logger zocbuild.Logger, noCache bool) (*repository.FileSystemScriptRepository, error) {
	var p zocbuild.ScriptParser = parser.NewTSQLParser()
	if !noCache {
		cached, err := parser.NewCachingParser(p, zocbuild.DefaultParseCacheSize)
		if err != nil {
			return nil, err
		}
		p = cached
	}

	return repository.New(repository.Options{
		Root:                        sc.SourcePath,
		ServerName:                  sc.ServerName,
		DatabaseName:                sc.DatabaseName,
		FileSystem:                  filesystem.NewOSFileSystem(),
		Parser:                      p,
		Logger:                      logger,
		AllowUnsupportedDirectories: sc.AllowUnsupportedDirectories,
		Parallelism:                 sc.Parallelism,
	}), nil
}
