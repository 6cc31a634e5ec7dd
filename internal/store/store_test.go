package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiscover(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"ghes-3.11.json":      `{"openapi": "3.0.3"}`,
		"api.github.com.json": `{"openapi": "3.0.3"}`,
		"ghes-3.10.json":      `{"openapi": "3.0.3"}`,
		"README.md":           "not a schema",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "drafts.json"), 0o755))

	docs, err := Discover(dir)
	require.NoError(t, err)
	require.Len(t, docs, 3)

	// Sorted directory listing keeps discovery deterministic.
	require.Equal(t, "api.github.com", docs[0].Version)
	require.Equal(t, "ghes-3.10", docs[1].Version)
	require.Equal(t, "ghes-3.11", docs[2].Version)

	for _, doc := range docs {
		require.NotEmpty(t, doc.Data)
		require.Equal(t, filepath.Join(dir, doc.Version+".json"), doc.Path)
	}
}

func TestDiscoverEmptyDir(t *testing.T) {
	docs, err := Discover(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, docs)
}

func TestDiscoverMissingDir(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}
