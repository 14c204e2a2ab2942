// Package config loads the generator configuration from a project rc file
// and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/migudevelop/openapi-mock-generator/internal/logger"
	"github.com/migudevelop/openapi-mock-generator/internal/types"
	"gopkg.in/yaml.v3"
)

const (
	// EnvPrefix prefixes every environment override, e.g. MOCKGEN_COUNT.
	EnvPrefix = "MOCKGEN_"

	DefaultOpenAPIFilesPath  = "./openapi"
	DefaultOutputSchemasPath = "./mocks/schemas"
	DefaultFormat            = "json"
	DefaultFileNameCase      = "original"
	DefaultPort              = 2200
	DefaultCount             = 10
)

// FileNames are the config files looked up in the working directory, in priority order.
var FileNames = []string{
	".openapiMockGeneratorrc",
	".openapiMockGeneratorrc.yaml",
	".openapiMockGeneratorrc.yml",
	".openapiMockGeneratorrc.json",
	"openapiMockGenerator.config.yaml",
	"openapiMockGenerator.config.yml",
	"openapiMockGenerator.config.json",
}

var (
	ErrReadConfig    = errors.New("error reading config file")
	ErrParseConfig   = errors.New("error parsing config file")
	ErrParseEnv      = errors.New("error parsing environment")
	ErrInvalidConfig = errors.New("invalid config")
)

// Config is the generator configuration.
// OpenAPIFilesPath is the folder searched for OpenAPI documents.
// OutputSchemasPath is the folder mock files are written to.
// Count is the number of records generated per schema. Zero is kept and generates empty mocks.
// Extensions are the document file extensions picked up from OpenAPIFilesPath.
// Format is the mock file encoding: json or yaml.
// FileNameCase is how schema names become file names: original, kebab or pascal.
// Seed makes generation reproducible when non-zero.
// Port is the port the mock server listens on.
type Config struct {
	OpenAPIFilesPath  string   `yaml:"openApiFilesPath" json:"openApiFilesPath" env:"INPUT"`
	OutputSchemasPath string   `yaml:"outputSchemasPath" json:"outputSchemasPath" env:"OUTPUT"`
	Count             int      `yaml:"count" json:"count" env:"COUNT"`
	Extensions        []string `yaml:"extensions" json:"extensions" env:"EXTENSIONS"`
	Format            string   `yaml:"format" json:"format" env:"FORMAT"`
	FileNameCase      string   `yaml:"fileNameCase" json:"fileNameCase" env:"FILE_NAME_CASE"`
	Seed              int64    `yaml:"seed" json:"seed" env:"SEED"`
	Port              int      `yaml:"port" json:"port" env:"PORT"`
}

// NewDefaultConfig creates the config used when no file is found.
func NewDefaultConfig() *Config {
	return &Config{
		OpenAPIFilesPath:  DefaultOpenAPIFilesPath,
		OutputSchemasPath: DefaultOutputSchemasPath,
		Count:             DefaultCount,
		Extensions:        []string{".yaml"},
		Format:            DefaultFormat,
		FileNameCase:      DefaultFileNameCase,
		Port:              DefaultPort,
	}
}

// Find returns the first config file from FileNames that exists in dir, or "".
func Find(dir string) string {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// Load reads the config from path, or from the first file Find locates in the
// working directory when path is empty, then applies MOCKGEN_* overrides.
// Missing or empty files fall back to defaults with a warning.
func Load(path string, sink logger.Sink) (*Config, error) {
	if sink == nil {
		sink = logger.Nop()
	}
	if path == "" {
		path = Find(".")
	}

	cfg := NewDefaultConfig()

	var data []byte
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrReadConfig, err)
		}
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		sink.Warn("No configuration file found. Using default values.")
	} else {
		// JSON rc files decode as YAML.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrParseConfig, path, err)
		}
		sink.Info(fmt.Sprintf("Using configuration file: %s", path))
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseEnv, err)
	}

	cfg.EnsureConfigValues()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// EnsureConfigValues fills empty paths, enums and port with defaults and normalizes extensions.
func (c *Config) EnsureConfigValues() {
	defaults := NewDefaultConfig()

	if c.OpenAPIFilesPath == "" {
		c.OpenAPIFilesPath = defaults.OpenAPIFilesPath
	}
	if c.OutputSchemasPath == "" {
		c.OutputSchemasPath = defaults.OutputSchemasPath
	}
	if c.Format == "" {
		c.Format = defaults.Format
	}
	if c.FileNameCase == "" {
		c.FileNameCase = defaults.FileNameCase
	}
	if c.Port == 0 {
		c.Port = defaults.Port
	}

	c.Extensions = types.NormalizeExtensions(c.Extensions)
	if len(c.Extensions) == 0 {
		c.Extensions = defaults.Extensions
	}
	c.Format = strings.ToLower(c.Format)
	c.FileNameCase = strings.ToLower(c.FileNameCase)
}

// Validate checks the enumerated and numeric values.
func (c *Config) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("%w: count must not be negative, got %d", ErrInvalidConfig, c.Count)
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port out of range: %d", ErrInvalidConfig, c.Port)
	}
	if !types.SliceContains([]string{"json", "yaml"}, c.Format) {
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
	}
	if !types.SliceContains([]string{"original", "kebab", "pascal"}, c.FileNameCase) {
		return fmt.Errorf("%w: unknown fileNameCase %q", ErrInvalidConfig, c.FileNameCase)
	}
	return nil
}
