// Package store reads decorated OpenAPI documents from the schema store
// directory, one JSON document per API version, keyed by base name.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Document struct {
	// Version is the document's storage key: its base name without the
	// .json extension, e.g. "api.github.com" or "ghes-3.10".
	Version string
	Path    string
	Data    []byte
}

// Discover reads every *.json document in dir. Results follow the sorted
// directory listing, so discovery order is deterministic across runs.
func Discover(dir string) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading schema store %s: %w", dir, err)
	}

	var docs []Document
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading schema document %s: %w", path, err)
		}
		docs = append(docs, Document{
			Version: strings.TrimSuffix(entry.Name(), ".json"),
			Path:    path,
			Data:    data,
		})
	}

	return docs, nil
}
