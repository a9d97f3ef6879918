package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/fixinsert/pkg/fixinsert"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, fixinsert.ConfigFileName), []byte(content), 0644))
	return dir
}

func TestLoad_AllFields(t *testing.T) {
	dir := writeConfig(t, `parse:
  field: name
  measure: decoded
  mismatch: truncate
  width: 8
  extensions: [.sql, .dump]

check:
  connection: postgresql://localhost/shop
  schema: staging
  timeout: 30s
`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "name", cfg.Parse.Field)
	assert.Equal(t, "decoded", cfg.Parse.Measure)
	assert.Equal(t, "truncate", cfg.Parse.Mismatch)
	assert.Equal(t, 8, cfg.Parse.Width)
	assert.Equal(t, []string{".sql", ".dump"}, cfg.Parse.Extensions)
	assert.Equal(t, "postgresql://localhost/shop", cfg.Check.Connection)
	assert.Equal(t, "staging", cfg.Check.Schema)
	assert.Equal(t, "30s", cfg.Check.Timeout)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{{invalid"))
	assert.True(t, errors.Is(err, fixinsert.ErrInvalidConfig))
	assert.Nil(t, cfg)
}

func TestLoad_InvalidValues(t *testing.T) {
	for name, content := range map[string]string{
		"measure":  "parse:\n  measure: bytes\n",
		"mismatch": "parse:\n  mismatch: ignore\n",
		"width":    "parse:\n  width: -1\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.True(t, errors.Is(err, fixinsert.ErrInvalidConfig), "got %v", err)
		})
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, ProjectConfig{}, *cfg)
}
