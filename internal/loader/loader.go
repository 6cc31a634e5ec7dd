// Package loader parses decorated OpenAPI documents and transforms them into
// typed operation records. All shape checking happens here, at the load
// boundary; downstream packages only ever see well-formed records.
package loader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pb33f/libopenapi"
	"github.com/pb33f/libopenapi/datamodel"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"

	"github.com/mkalis/restcat/internal/store"
)

type Result struct {
	Document *libopenapi.DocumentModel[v3.Document]
	// OpenAPIVersion is the spec version declared by the document itself,
	// not the product version the document describes.
	OpenAPIVersion string
}

// Load parses one decorated schema document into a v3 model.
func Load(doc store.Document) (*Result, error) {
	config := &datamodel.DocumentConfiguration{
		BasePath:            filepath.Dir(doc.Path),
		AllowFileReferences: true,
	}

	d, err := libopenapi.NewDocumentWithConfiguration(doc.Data, config)
	if err != nil {
		return nil, fmt.Errorf("parsing schema document %s: %w", doc.Version, err)
	}

	version := d.GetVersion()
	if !strings.HasPrefix(version, "3.") {
		return nil, fmt.Errorf("schema document %s: unsupported OpenAPI version %s (only 3.x supported)", doc.Version, version)
	}

	model, err := d.BuildV3Model()
	if err != nil {
		return nil, fmt.Errorf("building model for schema document %s: %w", doc.Version, err)
	}

	return &Result{
		Document:       model,
		OpenAPIVersion: version,
	}, nil
}
