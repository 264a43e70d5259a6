package service

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTemplate(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestRenderer_RendersNamedPage(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "index.html", "<html><body>welcome home</body></html>")
	writeTemplate(t, dir, "about.html", "<html><body>our story</body></html>")

	r, err := NewRenderer(dir)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "index", nil))
	require.Contains(t, buf.String(), "welcome home")

	buf.Reset()
	require.NoError(t, r.Render(&buf, "about", nil))
	require.Contains(t, buf.String(), "our story")
}

func TestRenderer_UnknownTemplateWritesNothing(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "index.html", "<html></html>")

	r, err := NewRenderer(dir)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.Error(t, r.Render(&buf, "gallery", nil))
	require.Zero(t, buf.Len())
}

func TestRenderer_EmptyDirFailsAtStartup(t *testing.T) {
	_, err := NewRenderer(t.TempDir())
	require.Error(t, err)
}

func TestRenderer_RefreshPicksUpNewTemplates(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "index.html", "<html></html>")

	r, err := NewRenderer(dir)
	require.NoError(t, err)
	require.False(t, r.Has("bar"))

	writeTemplate(t, dir, "bar.html", "<html><body>the bar</body></html>")
	require.NoError(t, r.Refresh())
	require.True(t, r.Has("bar"))

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "bar", nil))
	require.Contains(t, buf.String(), "the bar")
}

func TestRenderer_FailedRefreshKeepsPreviousSet(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "index.html", "<html><body>v1</body></html>")

	r, err := NewRenderer(dir)
	require.NoError(t, err)

	// A parse error in any file fails the whole refresh.
	writeTemplate(t, dir, "broken.html", "{{define}}")
	require.Error(t, r.Refresh())

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "index", nil))
	require.Contains(t, buf.String(), "v1")
}
