// Package catalog builds the reconciled operation catalog from per-version
// decorated schema documents, and derives the flat searchable index over it.
//
// The catalog is a three-level ordered mapping, version -> category ->
// subcategory -> operations. Category and subcategory order is first-seen
// order in the source document for that version; operation order within a
// subcategory is source document order. Registered versions come first, in
// registry order, followed by staged versions in schema store discovery
// order. Once built, the catalog is never mutated.
package catalog

import (
	"fmt"

	"github.com/pb33f/libopenapi/orderedmap"
	"github.com/sirupsen/logrus"

	"github.com/mkalis/restcat/internal/loader"
	"github.com/mkalis/restcat/internal/model"
	"github.com/mkalis/restcat/internal/registry"
	"github.com/mkalis/restcat/internal/store"
)

type (
	SubcategoryMap = orderedmap.Map[string, []*model.Operation]
	CategoryMap    = orderedmap.Map[string, *SubcategoryMap]
)

type Catalog struct {
	Versions *orderedmap.Map[string, *CategoryMap]
}

// Build loads every discovered document and merges the results by version.
// Operations are never combined across versions: each version's records are
// independent, even when they describe the same logical endpoint.
//
// Versions registered in reg are merged first, in registry order; staged
// versions (discovered but not yet registered) follow in discovery order. A
// nil registry keeps pure discovery order.
func Build(docs []store.Document, reg *registry.Registry, log *logrus.Logger) (*Catalog, error) {
	c := &Catalog{Versions: orderedmap.New[string, *CategoryMap]()}

	for _, doc := range orderDocuments(docs, reg) {
		if _, exists := c.Versions.Get(doc.Version); exists {
			return nil, fmt.Errorf("duplicate schema document for version %s", doc.Version)
		}

		result, err := loader.Load(doc)
		if err != nil {
			return nil, err
		}
		ops, err := loader.Transform(result, doc.Version)
		if err != nil {
			return nil, err
		}

		categories, err := groupOperations(doc.Version, ops)
		if err != nil {
			return nil, err
		}
		c.Versions.Set(doc.Version, categories)

		if log != nil {
			log.WithFields(logrus.Fields{
				"version":    doc.Version,
				"operations": len(ops),
			}).Debug("merged schema document into catalog")
		}
	}

	return c, nil
}

// orderDocuments puts registered versions first, in registry order, keeping
// any duplicates so Build can still reject them.
func orderDocuments(docs []store.Document, reg *registry.Registry) []store.Document {
	if reg == nil {
		return docs
	}

	taken := make([]bool, len(docs))
	ordered := make([]store.Document, 0, len(docs))
	for _, v := range reg.Versions() {
		for i, doc := range docs {
			if !taken[i] && doc.Version == v.Name {
				taken[i] = true
				ordered = append(ordered, doc)
			}
		}
	}
	for i, doc := range docs {
		if !taken[i] {
			ordered = append(ordered, doc)
		}
	}
	return ordered
}

func groupOperations(version string, ops []*model.Operation) (*CategoryMap, error) {
	categories := orderedmap.New[string, *SubcategoryMap]()
	seen := make(map[string]struct{}, len(ops))

	for _, op := range ops {
		if op.Verb == "" || op.RequestPath == "" {
			return nil, fmt.Errorf("version %s: malformed operation in %s/%s: missing verb or request path",
				version, op.Category, op.Subcategory)
		}

		// (verb, path) must be unique within one version.
		key := string(op.Verb) + " " + op.RequestPath
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("version %s: duplicate operation %s", version, key)
		}
		seen[key] = struct{}{}

		subcategories, ok := categories.Get(op.Category)
		if !ok {
			subcategories = orderedmap.New[string, []*model.Operation]()
			categories.Set(op.Category, subcategories)
		}
		existing, _ := subcategories.Get(op.Subcategory)
		subcategories.Set(op.Subcategory, append(existing, op))
	}

	return categories, nil
}
