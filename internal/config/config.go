package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string

	// External test executable
	Executable string

	// Output settings
	ReportFile string

	// Optional YAML catalogue, built-in catalogue when empty
	CatalogueFile string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Executable string
	Report     string
	Catalogue  string
	NameFilter string
	OnlyFailed bool
	Quiet      bool
	Strict     bool
	YAML       bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath: DefaultProjectPath,
		Executable:  DefaultExecutable,
		ReportFile:  DefaultReportFile,
	}
}

// LoadEnv applies the project's .env file and FLAKERUN_* environment variables.
// A missing .env file is not an error.
func (c *Config) LoadEnv() error {
	envPath := filepath.Join(c.ProjectPath, DefaultEnvFile)
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", envPath, err)
	}

	if v := os.Getenv(EnvExecutable); v != "" {
		c.Executable = v
	}
	if v := os.Getenv(EnvReport); v != "" {
		c.ReportFile = v
	}
	if v := os.Getenv(EnvCatalogue); v != "" {
		c.CatalogueFile = v
	}
	return nil
}

// ApplyFlags stores the parsed flags and lets them override env and defaults
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.Executable != "" {
		c.Executable = flags.Executable
	}
	if flags.Report != "" {
		c.ReportFile = flags.Report
	}
	if flags.Catalogue != "" {
		c.CatalogueFile = flags.Catalogue
	}
}

// GetExecutablePath returns the path of the test executable.
// Relative paths are resolved against the project path and made absolute so
// the binary is never looked up in $PATH.
func (c *Config) GetExecutablePath() string {
	return c.resolve(c.Executable)
}

// GetReportPath returns the full path of the failure report so run, list and
// failures always use the same file regardless of cwd.
func (c *Config) GetReportPath() string {
	return c.resolve(c.ReportFile)
}

// GetCataloguePath returns the YAML catalogue path, empty for the built-in catalogue
func (c *Config) GetCataloguePath() string {
	if c.CatalogueFile == "" {
		return ""
	}
	return c.resolve(c.CatalogueFile)
}

func (c *Config) resolve(path string) string {
	p := path
	if !filepath.IsAbs(p) {
		p = filepath.Join(c.ProjectPath, p)
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
