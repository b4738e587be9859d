package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/zocbuild/zocbuild/internal/files/filesystem"
	"github.com/zocbuild/zocbuild/pkg/zocbuild"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig is the content of zocbuild.yaml.
type ProjectConfig struct {
	Server   string `yaml:"server,omitempty"`
	Database string `yaml:"database,omitempty"`

	// Root overrides the script root; relative paths resolve against the
	// directory holding zocbuild.yaml.
	Root string `yaml:"root,omitempty"`

	// AllowUnsupportedDirectories is a pointer so an absent key keeps the
	// command-line default.
	AllowUnsupportedDirectories *bool `yaml:"allow_unsupported_directories,omitempty"`

	Parallelism int `yaml:"parallelism,omitempty"`
}

const ConfigFileName = zocbuild.ProjectFileName

// Load reads zocbuild.yaml from sourcePath on the OS filesystem.
func Load(sourcePath string) (*ProjectConfig, error) {
	return LoadFS(filesystem.NewOSFileSystem(), sourcePath)
}

// LoadFS reads zocbuild.yaml from sourcePath through fsys.
func LoadFS(fsys filesystem.FileSystemProvider, sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	if _, err := fsys.Stat(configPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	data, err := fsys.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", zocbuild.ErrInvalidConfig, configPath, err)
	}
	return &cfg, nil
}

// Save writes cfg to zocbuild.yaml in sourcePath, replacing any existing file.
func Save(fsys afero.Fs, sourcePath string, cfg *ProjectConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return afero.WriteFile(fsys, filepath.Join(sourcePath, ConfigFileName), data, 0644)
}

// ScanConfig turns the project file into scan parameters for the script
// root found at sourcePath.
func (c *ProjectConfig) ScanConfig(sourcePath string) zocbuild.ScanConfig {
	root := sourcePath
	if c.Root != "" {
		root = c.Root
		if !filepath.IsAbs(root) {
			root = filepath.Join(sourcePath, root)
		}
	}

	sc := zocbuild.ScanConfig{
		SourcePath:   root,
		ServerName:   c.Server,
		DatabaseName: c.Database,
		Parallelism:  c.Parallelism,
	}
	if c.AllowUnsupportedDirectories != nil {
		sc.AllowUnsupportedDirectories = *c.AllowUnsupportedDirectories
	}
	return sc
}
