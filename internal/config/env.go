package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/zocbuild/zocbuild/pkg/zocbuild"
)

// Environment variables that override zocbuild.yaml.
const (
	EnvServer                      = "ZOCBUILD_SERVER"
	EnvDatabase                    = "ZOCBUILD_DATABASE"
	EnvRoot                        = "ZOCBUILD_ROOT"
	EnvAllowUnsupportedDirectories = "ZOCBUILD_ALLOW_UNSUPPORTED_DIRECTORIES"
	EnvParallelism                 = "ZOCBUILD_PARALLELISM"
)

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ReadDotEnv parses the .env file in dir without touching the process
// environment. A missing file yields an empty map.
func ReadDotEnv(dir string) (map[string]string, error) {
	values, err := godotenv.Read(filepath.Join(dir, zocbuild.EnvFileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to parse .env: %w", err)
	}
	return values, nil
}

// Layered returns a lookup that consults the process environment first and
// then the given fallback values.
func Layered(fallback map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fallback[key]
		return v, ok
	}
}

// ApplyEnv overrides cfg fields with any ZOCBUILD_* variables lookup finds.
func ApplyEnv(cfg *ProjectConfig, lookup LookupFunc) error {
	var errs []error

	if v, ok := lookup(EnvServer); ok {
		cfg.Server = v
	}
	if v, ok := lookup(EnvDatabase); ok {
		cfg.Database = v
	}
	if v, ok := lookup(EnvRoot); ok {
		cfg.Root = v
	}
	if v, ok := lookup(EnvAllowUnsupportedDirectories); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s=%q is not a boolean: %w", EnvAllowUnsupportedDirectories, v, zocbuild.ErrInvalidConfig))
		} else {
			cfg.AllowUnsupportedDirectories = &b
		}
	}
	if v, ok := lookup(EnvParallelism); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s=%q is not an integer: %w", EnvParallelism, v, zocbuild.ErrInvalidConfig))
		} else {
			cfg.Parallelism = n
		}
	}

	return errors.Join(errs...)
}

// Resolve loads zocbuild.yaml from sourcePath (absent is fine) and layers
// the .env file and the process environment on top of it.
func Resolve(sourcePath string) (*ProjectConfig, error) {
	cfg, err := Load(sourcePath)
	if err != nil {
		if !errors.Is(err, ErrConfigNotFound) {
			return nil, fmt.Errorf("failed to load %s: %w", ConfigFileName, err)
		}
		cfg = &ProjectConfig{}
	}

	dotenv, err := ReadDotEnv(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", zocbuild.ErrInvalidConfig, err)
	}
	if err := ApplyEnv(cfg, Layered(dotenv)); err != nil {
		return nil, err
	}
	return cfg, nil
}
