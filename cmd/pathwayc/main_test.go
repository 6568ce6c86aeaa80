package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tay10r/pathway/internal/codegen"
)

func TestWriteOutputToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "shader.h")

	require.NoError(t, writeOutput("content", path, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "content", string(data))
}

func TestWriteOutputOnlyIfDifferentSkipsUnchanged(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shader.h")
	require.NoError(t, os.WriteFile(path, []byte("same"), 0o644))

	info, err := os.Stat(path)
	require.NoError(t, err)
	modTime := info.ModTime()

	require.NoError(t, writeOutput("same", path, true))

	info, err = os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, modTime, info.ModTime())
}

func TestWriteOutputOnlyIfDifferentRewritesChanged(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shader.h")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	require.NoError(t, writeOutput("new", path, true))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "new", string(data))
}

func TestResolveConfigFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	cfg, err := resolveConfig(dir, "")
	require.NoError(t, err)
	require.Equal(t, "cfamily", cfg.Target)
}

func TestResolveTargetDefaultsToCFamily(t *testing.T) {
	target, err := resolveTarget("")
	require.NoError(t, err)
	require.Equal(t, codegen.TargetCFamily, target)
}

func TestResolveTargetAcceptsCXXV1(t *testing.T) {
	target, err := resolveTarget("cxx_v1")
	require.NoError(t, err)
	require.Equal(t, codegen.TargetCXXV1, target)
}

func TestResolveTargetRejectsUnknown(t *testing.T) {
	_, err := resolveTarget("glsl")
	require.Error(t, err)
}
