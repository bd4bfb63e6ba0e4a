package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soupyhq/soupy"
)

func TestSavedFilesSeesSavedDocuments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<h1>Title</h1><p>Body text</p>`))
	}))
	defer server.Close()

	dir := t.TempDir()
	path, err := soupy.New().SaveAsMarkdown(context.Background(), server.URL, "page", dir)
	require.NoError(t, err)

	files, err := savedFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, path, files[0].Path)
	assert.Greater(t, files[0].Size, int64(0))
}

func TestSavedFilesFiltersNonMarkdown(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("# a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.md"), []byte("# b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir.md"), 0o755))

	files, err := savedFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(dir, "a.md"), files[0].Path)
	assert.Equal(t, filepath.Join(dir, "b.md"), files[1].Path)
}

func TestSavedFilesMissingDirectory(t *testing.T) {
	files, err := savedFiles(filepath.Join(t.TempDir(), "never-created"))
	require.NoError(t, err)
	assert.Empty(t, files)
}
