package repository

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/zocbuild/zocbuild/internal/checksum"
	"github.com/zocbuild/zocbuild/internal/files/filesystem"
	"github.com/zocbuild/zocbuild/internal/identity"
	"github.com/zocbuild/zocbuild/pkg/zocbuild"
)

// Diagnostic message formats. Build tooling matches on these prefixes.
const (
	msgUnsupportedDirectory = "Filtering out file because its in an unsupported subdirectory: %s"
	msgNotScriptFile        = "Filtering out file because it is not a .sql file: %s"
	msgNotInTypeDirectory   = "Filtering out file because it is not in an object type subdirectory: %s"
	msgParseFailed          = "Filtering out file because it could not be parsed: %s: %v"
	msgNestedDirectory      = "Filtering out directory because it is nested in an object type subdirectory: %s"
)

// Options configures a FileSystemScriptRepository.
type Options struct {
	// Root is the repository root directory.
	Root string

	// ServerName is passed through to the parser.
	ServerName string

	// DatabaseName is stamped onto every ScriptFile. Required.
	DatabaseName string

	FileSystem filesystem.FileSystemProvider
	Parser     zocbuild.ScriptParser
	Logger     zocbuild.Logger

	// AllowUnsupportedDirectories selects warning-per-file (true) or a
	// failed scan (false) for root subdirectories that map to no type.
	AllowUnsupportedDirectories bool

	// Parallelism bounds concurrent read-and-parse tasks.
	// Zero means runtime.GOMAXPROCS(0).
	Parallelism int
}

// FileSystemScriptRepository discovers build scripts stored in type
// directories below a root directory.
// It is safe for concurrent use if its collaborators are.
type FileSystemScriptRepository struct {
	root                        string
	serverName                  string
	databaseName                string
	fs                          filesystem.FileSystemProvider
	parser                      zocbuild.ScriptParser
	logger                      zocbuild.Logger
	calculator                  checksum.Calculator
	allowUnsupportedDirectories bool
	parallelism                 int
}

// New creates a repository from opts.
// Panics if the filesystem, parser or logger is nil, or the database name is empty.
func New(opts Options) *FileSystemScriptRepository {
	if opts.FileSystem == nil {
		panic("filesystem cannot be nil")
	}
	if opts.Parser == nil {
		panic("parser cannot be nil")
	}
	if opts.Logger == nil {
		panic("logger cannot be nil")
	}
	if opts.DatabaseName == "" {
		panic("database name cannot be empty")
	}

	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	return &FileSystemScriptRepository{
		root:                        opts.Root,
		serverName:                  opts.ServerName,
		databaseName:                opts.DatabaseName,
		fs:                          opts.FileSystem,
		parser:                      opts.Parser,
		logger:                      opts.Logger,
		calculator:                  checksum.New(),
		allowUnsupportedDirectories: opts.AllowUnsupportedDirectories,
		parallelism:                 parallelism,
	}
}

// candidate is a file that passed classification and awaits parsing.
type candidate struct {
	file       filesystem.File
	objectType zocbuild.DatabaseObjectType
}

// GetAllScripts scans the repository and returns every valid script in
// directory enumeration order.
func (r *FileSystemScriptRepository) GetAllScripts(ctx context.Context) ([]*zocbuild.ScriptFile, error) {
	root, err := r.fs.Open(r.root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", zocbuild.ErrAccessorFailed, err)
	}

	candidates, err := r.classify(root)
	if err != nil {
		return nil, err
	}

	// Each task owns one slot; a nil slot is a file skipped with a diagnostic.
	results := make([]*zocbuild.ScriptFile, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)
	for i, c := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			content, err := c.file.ReadContent()
			if err != nil {
				return fmt.Errorf("%w: failed to read %s: %w", zocbuild.ErrAccessorFailed, c.file.Path(), err)
			}
			script, err := r.build(c.file.Path(), c.file.Name(), c.objectType, content)
			if err != nil {
				r.logger.Log(zocbuild.SeverityError, fmt.Sprintf(msgParseFailed, c.file.Path(), err))
				return nil
			}
			results[i] = script
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	scripts := make([]*zocbuild.ScriptFile, 0, len(results))
	for _, script := range results {
		if script != nil {
			scripts = append(scripts, script)
		}
	}
	return scripts, nil
}

// classify walks the root and its type directories, logging one warning per
// filtered file, and returns the files that should be parsed.
func (r *FileSystemScriptRepository) classify(root filesystem.Directory) ([]candidate, error) {
	subdirs, err := root.Directories()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", zocbuild.ErrAccessorFailed, err)
	}

	if !r.allowUnsupportedDirectories {
		for _, dir := range subdirs {
			if _, ok := ObjectTypeForDirectory(dir.Name()); !ok {
				return nil, &zocbuild.UnsupportedDirectoryError{Path: dir.Path()}
			}
		}
	}

	rootFiles, err := root.Files()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", zocbuild.ErrAccessorFailed, err)
	}
	for _, file := range rootFiles {
		if isProjectFile(file.Name()) {
			continue
		}
		r.warn(msgNotInTypeDirectory, file.Path())
	}

	var candidates []candidate
	for _, dir := range subdirs {
		files, err := dir.Files()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", zocbuild.ErrAccessorFailed, err)
		}

		objectType, ok := ObjectTypeForDirectory(dir.Name())
		if !ok {
			for _, file := range files {
				r.warn(msgUnsupportedDirectory, file.Path())
			}
			continue
		}

		nested, err := dir.Directories()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", zocbuild.ErrAccessorFailed, err)
		}
		for _, n := range nested {
			r.warn(msgNestedDirectory, n.Path())
		}

		for _, file := range files {
			if !isScriptFileName(file.Name()) {
				r.warn(msgNotScriptFile, file.Path())
				continue
			}
			candidates = append(candidates, candidate{file: file, objectType: objectType})
		}
	}
	return candidates, nil
}

// GetScript loads the script of a single object from its type directory.
// The object name match ignores case; the extension match does not.
func (r *FileSystemScriptRepository) GetScript(ctx context.Context, objectType zocbuild.DatabaseObjectType, objectName string) (*zocbuild.ScriptFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root, err := r.fs.Open(r.root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", zocbuild.ErrAccessorFailed, err)
	}
	subdirs, err := root.Directories()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", zocbuild.ErrAccessorFailed, err)
	}

	for _, dir := range subdirs {
		if t, ok := ObjectTypeForDirectory(dir.Name()); !ok || t != objectType {
			continue
		}
		files, err := dir.Files()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", zocbuild.ErrAccessorFailed, err)
		}
		for _, file := range files {
			if !isScriptFileName(file.Name()) || !strings.EqualFold(objectNameFromFile(file.Name()), objectName) {
				continue
			}
			content, err := file.ReadContent()
			if err != nil {
				return nil, fmt.Errorf("%w: failed to read %s: %w", zocbuild.ErrAccessorFailed, file.Path(), err)
			}
			script, err := r.build(file.Path(), file.Name(), objectType, content)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file.Path(), err)
			}
			return script, nil
		}
	}

	return nil, fmt.Errorf("%w: %s %s", zocbuild.ErrScriptNotFound, objectType, objectName)
}

// build parses content and wraps the result into a ScriptFile. The object
// name comes from the file name and the type from the directory; the parser
// contributes the schema.
func (r *FileSystemScriptRepository) build(path, fileName string, objectType zocbuild.DatabaseObjectType, content []byte) (*zocbuild.ScriptFile, error) {
	objectName := objectNameFromFile(fileName)

	script, err := r.parser.Parse(zocbuild.ParseContext{
		ServerName:   r.serverName,
		DatabaseName: r.databaseName,
		ObjectName:   objectName,
		Path:         path,
	}, string(content))
	if err != nil {
		return nil, err
	}
	if script == nil {
		return nil, fmt.Errorf("%w: parser returned no script", zocbuild.ErrParseFailed)
	}

	schema := script.SchemaName
	if schema == "" {
		schema = zocbuild.DefaultSchemaName
	}

	obj := zocbuild.ObjectIdentity{
		DatabaseName: r.databaseName,
		SchemaName:   schema,
		ObjectName:   objectName,
		ObjectType:   objectType,
	}

	return &zocbuild.ScriptFile{
		ID:           identity.ForObject(obj),
		ScriptObject: obj,
		Script:       script,
		Path:         path,
		Checksum:     r.calculator.CalculateNormalized(content),
		ChecksumRaw:  r.calculator.CalculateRaw(content),
	}, nil
}

func (r *FileSystemScriptRepository) warn(format, path string) {
	r.logger.Log(zocbuild.SeverityWarning, fmt.Sprintf(format, path))
}

// Verify FileSystemScriptRepository implements the interface at compile time
var _ zocbuild.ScriptRepository = (*FileSystemScriptRepository)(nil)
