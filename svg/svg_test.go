package svg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/iconforge/errors"
)

func writeSVG(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.svg")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseFileWithAllAttributes(t *testing.T) {
	path := writeSVG(t,
		`<svg width="24" height="24" viewBox="0 0 24 24"><path d="M10 20v-6h4v6h5v-8h3L12 3 2 12h3v8z"/></svg>`)

	rec, err := NewParser(nil).ParseFile(path)
	require.NoError(t, err)

	assert.Equal(t, 24, rec.Width)
	assert.Equal(t, 24, rec.Height)
	assert.Equal(t, "0 0 24 24", rec.ViewBox)
	assert.Contains(t, rec.Body, "path")
	assert.NotContains(t, rec.Body, "<svg")
}

func TestParseFileWithViewBoxOnly(t *testing.T) {
	path := writeSVG(t, `<svg viewBox="0 0 48 48"><circle cx="24" cy="24" r="20"/></svg>`)

	rec, err := NewParser(nil).ParseFile(path)
	require.NoError(t, err)

	assert.Equal(t, 48, rec.Width)
	assert.Equal(t, 48, rec.Height)
	assert.Equal(t, "0 0 48 48", rec.ViewBox)
	assert.Equal(t, `<circle cx="24" cy="24" r="20"/>`, rec.Body)
}

func TestParseFileNoDimensionsDefaults(t *testing.T) {
	path := writeSVG(t, `<svg><rect x="0" y="0" width="10" height="10"/></svg>`)

	rec, err := NewParser(nil).ParseFile(path)
	require.NoError(t, err)

	assert.Equal(t, 24, rec.Width)
	assert.Equal(t, 24, rec.Height)
	assert.Equal(t, "0 0 24 24", rec.ViewBox)
}

func TestParseFileUnitSuffixes(t *testing.T) {
	path := writeSVG(t, `<svg width="32px" height="32px"><path d="M0 0"/></svg>`)

	rec, err := NewParser(nil).ParseFile(path)
	require.NoError(t, err)

	assert.Equal(t, 32, rec.Width)
	assert.Equal(t, 32, rec.Height)
	assert.Equal(t, "0 0 32 32", rec.ViewBox)
}

func TestParseFileInvalidXML(t *testing.T) {
	path := writeSVG(t, `<svg><path d="unclosed`)

	_, err := NewParser(nil).ParseFile(path)
	require.Error(t, err)
	assert.True(t, errors.IsMalformedSource(err))
}

func TestParseFileNonSvgRoot(t *testing.T) {
	path := writeSVG(t, `<html><body/></html>`)

	_, err := NewParser(nil).ParseFile(path)
	require.Error(t, err)
	assert.True(t, errors.IsMalformedSource(err))
}

func TestParseFileMissing(t *testing.T) {
	_, err := NewParser(nil).ParseFile(filepath.Join(t.TempDir(), "nope.svg"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrFilesystem))
}

func TestBodyNestedElements(t *testing.T) {
	path := writeSVG(t,
		`<svg viewBox="0 0 24 24"><g fill="none"><path d="M1 1"/><path d="M2 2"/></g></svg>`)

	rec, err := NewParser(nil).ParseFile(path)
	require.NoError(t, err)

	assert.Equal(t, `<g fill="none"><path d="M1 1"/><path d="M2 2"/></g>`, rec.Body)
}

func TestBodyEscapesAttributesAndText(t *testing.T) {
	path := writeSVG(t,
		`<svg viewBox="0 0 24 24"><text font-family="A&amp;B">1 &lt; 2</text></svg>`)

	rec, err := NewParser(nil).ParseFile(path)
	require.NoError(t, err)

	assert.Equal(t, `<text font-family="A&amp;B">1 &lt; 2</text>`, rec.Body)
}

func TestBodyWhitespaceOnlyChildStaysSelfClosing(t *testing.T) {
	path := writeSVG(t, "<svg viewBox=\"0 0 24 24\"><g>\n   </g></svg>")

	rec, err := NewParser(nil).ParseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "<g/>", rec.Body)
}

func TestBodyDropsComments(t *testing.T) {
	path := writeSVG(t,
		`<svg viewBox="0 0 24 24"><!-- generator metadata --><path d="M0 0"/></svg>`)

	rec, err := NewParser(nil).ParseFile(path)
	require.NoError(t, err)

	assert.Equal(t, `<path d="M0 0"/>`, rec.Body)
}

func TestBodyEmptyWarnsButSucceeds(t *testing.T) {
	path := writeSVG(t, `<svg viewBox="0 0 24 24"></svg>`)

	rec, err := NewParser(nil).ParseFile(path)
	require.NoError(t, err)
	assert.Empty(t, rec.Body)
	assert.Equal(t, 24, rec.Width)
}
