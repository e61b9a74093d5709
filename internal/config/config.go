// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Catalog sources.
const (
	SourceBuiltin  = "builtin"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Config represents the configuration that can be loaded from a YAML or JSON file.
// Every field is optional in the file; missing values use defaults and environment
// variables override file values.
type Config struct {
	Port          int      `yaml:"port" json:"port" validate:"min=1,max=65535"`
	CatalogSource string   `yaml:"catalog_source" json:"catalog_source" validate:"oneof=builtin file postgres"`
	CatalogPath   string   `yaml:"catalog_path" json:"catalog_path" validate:"required_if=CatalogSource file"`
	DatabaseURL   string   `yaml:"database_url" json:"database_url" validate:"required_if=CatalogSource postgres"`
	LogLevel      string   `yaml:"log_level" json:"log_level" validate:"oneof=debug info warn error"`
	Theme         string   `yaml:"theme" json:"theme" validate:"oneof=matrix dracula monokai cyberpunk minimal"`
	CORSOrigins   []string `yaml:"cors_origins" json:"cors_origins"`
}

// Default returns the configuration used when nothing else is specified.
func Default() Config {
	return Config{
		Port:          8080,
		CatalogSource: SourceBuiltin,
		LogLevel:      "info",
		Theme:         "matrix",
		CORSOrigins:   []string{"*"},
	}
}

var validate = validator.New()

// Load builds the effective configuration: defaults, then the file at path (if path is
// not empty), then environment overrides. The result is validated.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	merged := cfg.MergeWithDefaults(Default())
	if err := merged.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// LoadConfig loads configuration from a file. Files ending in .yaml or .yml are parsed as
// YAML, anything else as JSON.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// ApplyEnv overrides fields from environment variables looked up with lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: invalid PORT %q: %w", v, err)
		}
		c.Port = port
	}

	overrides := map[string]*string{
		"CATALOG_SOURCE": &c.CatalogSource,
		"CATALOG_PATH":   &c.CatalogPath,
		"DATABASE_URL":   &c.DatabaseURL,
		"LOG_LEVEL":      &c.LogLevel,
		"THEME":          &c.Theme,
	}
	for key, field := range overrides {
		if v, ok := lookup(key); ok && v != "" {
			*field = v
		}
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, describe(fe))
			}
			return fmt.Errorf("config error: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.CatalogSource == SourceFile {
		if _, err := os.Stat(c.CatalogPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.CatalogPath)
		}
	}

	return nil
}

func describe(fe validator.FieldError) string {
	name := fieldNames[fe.Field()]
	switch fe.Tag() {
	case "required_if":
		return fmt.Sprintf("'%s' is required when catalog_source is %s", name, strings.Fields(fe.Param())[1])
	case "oneof":
		return fmt.Sprintf("'%s' must be one of: %s", name, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min", "max":
		return fmt.Sprintf("'%s' must be between 1 and 65535", name)
	default:
		return fmt.Sprintf("'%s' failed %s validation", name, fe.Tag())
	}
}

var fieldNames = map[string]string{
	"Port":          "port",
	"CatalogSource": "catalog_source",
	"CatalogPath":   "catalog_path",
	"DatabaseURL":   "database_url",
	"LogLevel":      "log_level",
	"Theme":         "theme",
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.CatalogSource == "" {
		result.CatalogSource = defaults.CatalogSource
	}
	if result.CatalogPath == "" {
		result.CatalogPath = defaults.CatalogPath
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.Theme == "" {
		result.Theme = defaults.Theme
	}
	if len(result.CORSOrigins) == 0 {
		result.CORSOrigins = defaults.CORSOrigins
	}

	return result
}

// Level returns the zap level named by LogLevel, or info when it cannot be parsed.
func (c *Config) Level() zapcore.Level {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
