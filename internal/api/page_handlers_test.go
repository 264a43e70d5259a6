package api

import (
	"broadwaylounge/internal/service"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T, pages map[string]string) *service.Renderer {
	t.Helper()

	dir := t.TempDir()
	for name, body := range pages {
		err := os.WriteFile(filepath.Join(dir, name+".html"), []byte(body), 0o644)
		require.NoError(t, err)
	}

	r, err := service.NewRenderer(dir)
	require.NoError(t, err)
	return r
}

func TestServePage_RendersTemplateForPath(t *testing.T) {
	h := NewPageHandler(newTestRenderer(t, map[string]string{
		"index": "<h1>Broadway Lounge</h1>",
		"about": "<h1>Our story</h1>",
	}))

	cases := []struct {
		path string
		want string
	}{
		{"/", "<h1>Broadway Lounge</h1>"},
		{"/about", "<h1>Our story</h1>"},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServePage(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))

			require.Equal(t, http.StatusOK, rec.Code)
			require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			require.Contains(t, rec.Body.String(), tc.want)
		})
	}
}

func TestServePage_MissingTemplateIs500(t *testing.T) {
	h := NewPageHandler(newTestRenderer(t, map[string]string{
		"index": "<h1>Broadway Lounge</h1>",
	}))

	rec := httptest.NewRecorder()
	h.ServePage(rec, httptest.NewRequest(http.MethodGet, "/gallery", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "Broadway")
}

func TestTemplateName(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/", "index"},
		{"", "index"},
		{"/about", "about"},
		{"/about/", "about"},
		{"/philex-index", "philex-index"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, templateName(tc.path), "path %q", tc.path)
	}
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	Health(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
