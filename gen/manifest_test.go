package gen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readManifest(t *testing.T, g *Generator) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(g.OutputDir(), manifestFileName))
	require.NoError(t, err)
	return string(data)
}

func TestEnsureInitializedCreatesManifest(t *testing.T) {
	g := NewGenerator(filepath.Join(t.TempDir(), "icons"), nil)

	require.NoError(t, g.EnsureInitialized())

	content := readManifest(t, g)
	assert.Contains(t, content, "// Code generated by iconforge. DO NOT EDIT.")
	assert.Contains(t, content, "use dioxus::prelude::*;")
	assert.Contains(t, content, "pub struct IconData {")
	assert.Contains(t, content, "pub fn Icon(")
	assert.NotContains(t, content, "pub mod ")
}

func TestEnsureInitializedLeavesExistingManifest(t *testing.T) {
	g := NewGenerator(t.TempDir(), nil)

	require.NoError(t, g.Register("mdi"))
	require.NoError(t, g.EnsureInitialized())

	assert.Contains(t, readManifest(t, g), "pub mod mdi;")
}

func TestRegisterIsIdempotent(t *testing.T) {
	g := NewGenerator(t.TempDir(), nil)

	require.NoError(t, g.Register("mdi"))
	require.NoError(t, g.Register("mdi"))

	content := readManifest(t, g)
	assert.Equal(t, 1, strings.Count(content, "pub mod mdi;"))
}

func TestRegisterSortsModules(t *testing.T) {
	g := NewGenerator(t.TempDir(), nil)

	require.NoError(t, g.Register("tabler"))
	require.NoError(t, g.Register("mdi"))

	content := readManifest(t, g)
	mdi := strings.Index(content, "pub mod mdi;")
	tabler := strings.Index(content, "pub mod tabler;")
	require.NotEqual(t, -1, mdi)
	require.NotEqual(t, -1, tabler)
	assert.Less(t, mdi, tabler)
}

func TestRegisterMapsHyphensToUnderscores(t *testing.T) {
	g := NewGenerator(t.TempDir(), nil)

	require.NoError(t, g.Register("simple-icons"))

	assert.Contains(t, readManifest(t, g), "pub mod simple_icons;")
}

func TestForceRegeneratePreservesModules(t *testing.T) {
	g := NewGenerator(t.TempDir(), nil)

	require.NoError(t, g.Register("mdi"))
	require.NoError(t, g.Register("tabler"))

	require.NoError(t, g.ForceRegenerate())

	content := readManifest(t, g)
	assert.Contains(t, content, "pub mod mdi;")
	assert.Contains(t, content, "pub mod tabler;")
	assert.Contains(t, content, "pub struct IconData {")
}

func TestForceRegenerateWithoutManifest(t *testing.T) {
	g := NewGenerator(filepath.Join(t.TempDir(), "icons"), nil)

	require.NoError(t, g.ForceRegenerate())

	assert.Contains(t, readManifest(t, g), "pub struct IconData {")
}
