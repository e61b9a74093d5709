package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func envMap(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{
		"port": 9090,
		"catalog_source": "file",
		"catalog_path": "catalog.json",
		"log_level": "debug"
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, SourceFile, cfg.CatalogSource)
	assert.Equal(t, "catalog.json", cfg.CatalogPath)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_ValidYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
port: 3000
theme: dracula
cors_origins:
  - https://example.com
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "dracula", cfg.Theme)
	assert.Equal(t, []string{"https://example.com"}, cfg.CORSOrigins)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{ invalid json }`)

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeFile(t, "config.yml", "port: [1, 2")

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	for _, key := range []string{"PORT", "CATALOG_SOURCE", "CATALOG_PATH", "DATABASE_URL", "LOG_LEVEL", "THEME"} {
		t.Setenv(key, "")
	}

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Default(), *cfg)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "config.yaml", "port: 3000\nlog_level: warn\n")
	t.Setenv("PORT", "4000")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CATALOG_SOURCE", "")
	t.Setenv("THEME", "minimal")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Port)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "minimal", cfg.Theme)
	assert.Equal(t, SourceBuiltin, cfg.CatalogSource)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envMap(map[string]string{
		"PORT":           "9000",
		"CATALOG_SOURCE": "postgres",
		"DATABASE_URL":   "postgres://localhost/portfolio",
	}))
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, SourcePostgres, cfg.CatalogSource)
	assert.Equal(t, "postgres://localhost/portfolio", cfg.DatabaseURL)
	assert.Equal(t, "matrix", cfg.Theme)
}

func TestApplyEnv_InvalidPort(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envMap(map[string]string{"PORT": "eighty"}))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid PORT")
}

func TestValidate(t *testing.T) {
	catalogFile := writeFile(t, "catalog.json", "{}")

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{name: "defaults", modify: func(*Config) {}},
		{name: "port too large", modify: func(c *Config) { c.Port = 70000 }, wantErr: "'port' must be between 1 and 65535"},
		{name: "unknown source", modify: func(c *Config) { c.CatalogSource = "s3" }, wantErr: "'catalog_source' must be one of: builtin, file, postgres"},
		{name: "file without path", modify: func(c *Config) { c.CatalogSource = SourceFile }, wantErr: "'catalog_path' is required when catalog_source is file"},
		{name: "file missing", modify: func(c *Config) {
			c.CatalogSource = SourceFile
			c.CatalogPath = "/nonexistent/catalog.json"
		}, wantErr: "catalog file not found"},
		{name: "file present", modify: func(c *Config) {
			c.CatalogSource = SourceFile
			c.CatalogPath = catalogFile
		}},
		{name: "postgres without url", modify: func(c *Config) { c.CatalogSource = SourcePostgres }, wantErr: "'database_url' is required when catalog_source is postgres"},
		{name: "unknown theme", modify: func(c *Config) { c.Theme = "solarized" }, wantErr: "'theme' must be one of"},
		{name: "unknown level", modify: func(c *Config) { c.LogLevel = "trace" }, wantErr: "'log_level' must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	partial := Config{Port: 3000, Theme: "dracula"}

	merged := partial.MergeWithDefaults(Default())

	assert.Equal(t, 3000, merged.Port)
	assert.Equal(t, "dracula", merged.Theme)
	assert.Equal(t, SourceBuiltin, merged.CatalogSource)
	assert.Equal(t, "info", merged.LogLevel)
	assert.Equal(t, []string{"*"}, merged.CORSOrigins)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{Port: 1234}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, 1234, merged.Port)
	assert.Empty(t, merged.CatalogSource)
}

func TestLevel(t *testing.T) {
	cfg := Config{LogLevel: "debug"}
	assert.Equal(t, zapcore.DebugLevel, cfg.Level())

	cfg.LogLevel = "nonsense"
	assert.Equal(t, zapcore.InfoLevel, cfg.Level())
}
