package soupy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAsMarkdown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<h1>Title</h1><p>Body text</p>`))
	}))
	defer server.Close()

	dir := t.TempDir()
	s := New()

	path, err := s.SaveAsMarkdown(context.Background(), server.URL, "page", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "page.md"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# Title")
}

func TestSaveAsMarkdownDefaultOutputDir(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<p>content</p>`))
	}))
	defer server.Close()

	t.Chdir(t.TempDir())

	path, err := New().SaveAsMarkdown(context.Background(), server.URL, "page", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(DefaultOutputDir, "page.md"), path)

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestSaveAsMarkdownFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	dir := t.TempDir()
	path, err := New().SaveAsMarkdown(context.Background(), server.URL, "page", dir)
	require.Error(t, err)
	assert.Empty(t, path)

	_, statErr := os.Stat(filepath.Join(dir, "page.md"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestSaveAsMarkdownOverwrites(t *testing.T) {
	content := `<p>first</p>`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(content))
	}))
	defer server.Close()

	dir := t.TempDir()
	s := New()

	_, err := s.SaveAsMarkdown(context.Background(), server.URL, "page", dir)
	require.NoError(t, err)

	content = `<p>second</p>`
	path, err := s.SaveAsMarkdown(context.Background(), server.URL, "page", dir)
	require.NoError(t, err)

	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(saved), "second")
	assert.NotContains(t, string(saved), "first")
}
