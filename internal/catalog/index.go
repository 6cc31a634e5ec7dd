package catalog

import (
	"fmt"
	"strings"

	"github.com/mkalis/restcat/internal/model"
)

// Index is the flat, ordered view over a catalog. It shares the catalog's
// operation records and is never mutated after Flatten returns.
type Index struct {
	ops []*model.Operation
}

// Flatten walks the catalog depth-first (version -> category -> subcategory
// -> operation, each level in its established order) into one flat sequence.
// A record without a verb is malformed input and fails the build rather than
// being dropped.
func Flatten(c *Catalog) (*Index, error) {
	if c == nil || c.Versions == nil {
		return nil, fmt.Errorf("cannot flatten a nil catalog")
	}

	idx := &Index{}
	for version, categories := range c.Versions.FromOldest() {
		for category, subcategories := range categories.FromOldest() {
			for subcategory, ops := range subcategories.FromOldest() {
				for _, op := range ops {
					if op.Verb == "" {
						return nil, fmt.Errorf("operation missing verb at %s/%s/%s %s",
							version, category, subcategory, op.RequestPath)
					}
					idx.ops = append(idx.ops, op)
				}
			}
		}
	}

	return idx, nil
}

func (i *Index) Len() int {
	return len(i.ops)
}

// Operations returns the indexed records in traversal order. Callers must not
// modify the returned slice or the records it points to.
func (i *Index) Operations() []*model.Operation {
	return i.ops
}

// Find returns the first record matching the verb (case-insensitive) and the
// exact templated request path, in traversal order. When several versions
// define the same (verb, path) pair, the earliest version in traversal order
// wins: registered versions in registry order before staged ones. Use
// FindVersion when a specific version is wanted.
func (i *Index) Find(verb, requestPath string) (*model.Operation, bool) {
	for _, op := range i.ops {
		if strings.EqualFold(string(op.Verb), verb) && op.RequestPath == requestPath {
			return op, true
		}
	}
	return nil, false
}

// FindVersion is Find restricted to a single version.
func (i *Index) FindVersion(verb, requestPath, version string) (*model.Operation, bool) {
	for _, op := range i.ops {
		if op.Version == version && strings.EqualFold(string(op.Verb), verb) && op.RequestPath == requestPath {
			return op, true
		}
	}
	return nil, false
}
