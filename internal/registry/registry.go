// Package registry loads the table of API versions the product currently
// supports. Each entry maps an internal version key to its canonical external
// identifier, which is also the storage key of its schema document.
package registry

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"
)

type Version struct {
	// Key is the internal identifier, e.g. "enterprise-server@3.10".
	Key string
	// Name is the canonical external identifier declared as
	// openApiVersionName, e.g. "ghes-3.10".
	Name string
}

// Registry holds the supported versions in source-file order, so everything
// that iterates it (catalog version ordering, consistency reports) stays
// deterministic across runs.
type Registry struct {
	versions []Version
}

// Load reads the version registry from a YAML file shaped as
//
//	<internal key>:
//	  openApiVersionName: <canonical identifier>
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading version registry: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Registry, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing version registry: %w", err)
	}

	reg := &Registry{}
	if len(root.Content) == 0 {
		return reg, nil
	}

	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("version registry is not a mapping")
	}

	for i := 0; i < len(mapping.Content)-1; i += 2 {
		key := mapping.Content[i].Value
		name := versionName(mapping.Content[i+1])
		if name == "" {
			return nil, fmt.Errorf("version %q: missing openApiVersionName", key)
		}
		reg.versions = append(reg.versions, Version{Key: key, Name: name})
	}

	return reg, nil
}

func versionName(node *yaml.Node) string {
	if node == nil || node.Kind != yaml.MappingNode {
		return ""
	}
	for i := 0; i < len(node.Content)-1; i += 2 {
		if node.Content[i].Value == "openApiVersionName" {
			return node.Content[i+1].Value
		}
	}
	return ""
}

func (r *Registry) Len() int {
	return len(r.versions)
}

// Versions returns the registered versions in source-file order. Callers
// must not modify the returned slice.
func (r *Registry) Versions() []Version {
	return r.versions
}

// ByName looks up a version by its canonical external identifier.
func (r *Registry) ByName(name string) (Version, bool) {
	for _, v := range r.versions {
		if v.Name == name {
			return v, true
		}
	}
	return Version{}, false
}
