package validate

import (
	"fmt"

	"github.com/mkalis/restcat/internal/catalog"
	"github.com/mkalis/restcat/internal/registry"
	"github.com/mkalis/restcat/internal/store"
)

// MinVersions is the smallest number of schema versions a healthy store
// discovers: several enterprise-server generations, the public cloud API, the
// enterprise-cloud variant and at least one more tier. A lower count almost
// always means under-discovery, not a smaller product.
const MinVersions = 6

// Consistency checks the registry, the discovered documents and the built
// catalog against each other. Any returned violation makes downstream example
// validation meaningless, so callers should treat a non-empty result as
// fatal.
//
// A document with no registry entry is not a violation: it represents a
// staged version that ships before it is registered.
func Consistency(reg *registry.Registry, docs []store.Document, c *catalog.Catalog, minVersions int) []Violation {
	var violations []Violation

	discovered := make(map[string]struct{}, len(docs))
	for _, doc := range docs {
		discovered[doc.Version] = struct{}{}
	}

	for _, v := range reg.Versions() {
		if _, ok := discovered[v.Name]; !ok {
			violations = append(violations, Violation{
				Check:  CheckMissingSchema,
				Detail: fmt.Sprintf("registered version %s has no schema document named %s", v.Key, v.Name),
			})
		}
	}

	if len(docs) < minVersions {
		violations = append(violations, Violation{
			Check:  CheckVersionCount,
			Detail: fmt.Sprintf("discovered %d schema versions, need at least %d", len(docs), minVersions),
		})
	}

	if c == nil || c.Versions == nil {
		violations = append(violations, Violation{
			Check:  CheckCatalogShape,
			Detail: "catalog is not a well-formed mapping",
		})
	}

	return violations
}
