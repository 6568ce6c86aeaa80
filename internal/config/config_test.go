package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	require.Equal(t, "cfamily", cfg.Target)
	require.Equal(t, "generated", cfg.OutputDir)
	require.Equal(t, "float", cfg.ScalarTypes.Float)
	require.Equal(t, "int32_t", cfg.ScalarTypes.Int)
	require.False(t, cfg.OnlyIfDifferent)
}

func TestLoadFillsInMissingFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pathway.yaml")
	require.NoError(t, os.WriteFile(path, []byte("language: cxx_v1\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "cxx_v1", cfg.Target)
	require.Equal(t, "generated", cfg.OutputDir)
	require.Equal(t, "float", cfg.ScalarTypes.Float)
}

func TestLoadFromDirFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadFromDir(dir)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadOverridesScalarTypes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pathway.yaml")
	content := "scalarFloat: double\nscalarInt: int64_t\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "double", cfg.ScalarTypes.Float)
	require.Equal(t, "int64_t", cfg.ScalarTypes.Int)
}

func TestLoadParsesFullExample(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pathway.yaml")
	content := "language: cfamily\n" +
		"output: build/shader.h\n" +
		"scalarFloat: float\n" +
		"scalarInt: int32_t\n" +
		"onlyIfDifferent: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "cfamily", cfg.Target)
	require.Equal(t, "build/shader.h", cfg.OutputDir)
	require.Equal(t, "float", cfg.ScalarTypes.Float)
	require.Equal(t, "int32_t", cfg.ScalarTypes.Int)
	require.True(t, cfg.OnlyIfDifferent)
}
