package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/zocbuild/zocbuild/internal/files/filesystem"
	"github.com/zocbuild/zocbuild/internal/repository"
	"github.com/zocbuild/zocbuild/pkg/zocbuild"
)

//go:embed all:templates
var templatesFS embed.FS

// GetTemplatesFS returns the embedded templates filesystem for testing purposes.
func GetTemplatesFS() fs.FS {
	return templatesFS
}

// TemplateRoot returns the path of a template inside GetTemplatesFS.
func TemplateRoot(templateName string) string {
	return path.Join("templates", templateName)
}

// Scaffolder lays out new script repositories.
type Scaffolder struct {
	fs      afero.Fs
	verbose bool
}

// NewScaffolder creates a Scaffolder writing to fsys.
func NewScaffolder(fsys afero.Fs, verbose bool) *Scaffolder {
	return &Scaffolder{
		fs:      fsys,
		verbose: verbose,
	}
}

// CreateRepository creates one directory per object type under targetPath
// and, when templateName is not empty, copies that template's scripts.
// Existing files are never overwritten; a conflict fails before anything is written.
func (s *Scaffolder) CreateRepository(targetPath, templateName, databaseName string) error {
	var files []templateFile
	if templateName != "" {
		var err error
		files, err = loadTemplate(templateName)
		if err != nil {
			return err
		}
	}

	for _, f := range files {
		target := filepath.Join(targetPath, f.dir, f.name)
		exists, err := afero.Exists(s.fs, target)
		if err != nil {
			return fmt.Errorf("%w: %w", zocbuild.ErrAccessorFailed, err)
		}
		if exists {
			return fmt.Errorf("%s already exists: %w", target, zocbuild.ErrInvalidConfig)
		}
	}

	for _, objectType := range zocbuild.AllObjectTypes() {
		dir, _ := repository.DirectoryForObjectType(objectType)
		s.logVerbose("Creating directory: %s", dir)
		if err := s.fs.MkdirAll(filepath.Join(targetPath, dir), 0755); err != nil {
			return fmt.Errorf("%w: %w", zocbuild.ErrAccessorFailed, err)
		}
	}

	for _, f := range files {
		target := filepath.Join(targetPath, f.dir, f.name)
		s.logVerbose("Creating file: %s", filepath.Join(f.dir, f.name))
		content := processTemplate(string(f.content), databaseName)
		if err := afero.WriteFile(s.fs, target, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", target, err)
		}
	}
	return nil
}

type templateFile struct {
	dir     string
	name    string
	content []byte
}

// loadTemplate reads every script of a template. Templates follow the
// repository layout, so one level of type directories is all there is.
func loadTemplate(templateName string) ([]templateFile, error) {
	efs := filesystem.NewEmbedFileSystem(templatesFS)

	root, err := efs.Open(TemplateRoot(templateName))
	if err != nil {
		return nil, fmt.Errorf("template '%s' not found: %w", templateName, zocbuild.ErrInvalidConfig)
	}
	dirs, err := root.Directories()
	if err != nil {
		return nil, err
	}

	var files []templateFile
	for _, dir := range dirs {
		entries, err := dir.Files()
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			content, err := entry.ReadContent()
			if err != nil {
				return nil, fmt.Errorf("failed to read template file %s: %w", entry.Path(), err)
			}
			files = append(files, templateFile{dir: dir.Name(), name: entry.Name(), content: content})
		}
	}
	return files, nil
}

// processTemplate replaces template variables in content
func processTemplate(content, databaseName string) string {
	return strings.ReplaceAll(content, "{{DATABASE_NAME}}", databaseName)
}

func (s *Scaffolder) logVerbose(format string, args ...interface{}) {
	if s.verbose {
		fmt.Fprintf(os.Stderr, "[VERBOSE] "+format+"\n", args...)
	}
}

// ListTemplates returns available template names
func ListTemplates() ([]string, error) {
	entries, err := templatesFS.ReadDir("templates")
	if err != nil {
		return nil, err
	}

	var templates []string
	for _, entry := range entries {
		if entry.IsDir() {
			templates = append(templates, entry.Name())
		}
	}

	return templates, nil
}
