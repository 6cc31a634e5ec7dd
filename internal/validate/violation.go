// Package validate asserts the structural invariants between the version
// registry, the schema store and the catalog, and checks that every operation
// carries well-formed usage examples for each supported client integration.
//
// Example-level checks never fail fast: every violation across the full
// operation set is collected and reported in one pass.
package validate

import "strings"

type Check string

const (
	CheckMissingSchema      Check = "missing-schema-document"
	CheckVersionCount       Check = "version-count"
	CheckCatalogShape       Check = "catalog-shape"
	CheckMissingExample     Check = "missing-example"
	CheckDuplicateExample   Check = "duplicate-example"
	CheckAcceptHeader       Check = "accept-header"
	CheckSDKParameters      Check = "sdk-parameters"
	CheckPreviewDeclaration Check = "preview-declaration"
	CheckRenderedContent    Check = "rendered-content"
)

// Violation reports one failed check. Operation and Language are empty for
// catalog-level checks.
type Violation struct {
	Operation string
	Language  string
	Check     Check
	Detail    string
}

func (v Violation) String() string {
	var b strings.Builder
	b.WriteString(string(v.Check))
	if v.Operation != "" {
		b.WriteString(": ")
		b.WriteString(v.Operation)
	}
	if v.Language != "" {
		b.WriteString(" [")
		b.WriteString(v.Language)
		b.WriteString("]")
	}
	if v.Detail != "" {
		b.WriteString(": ")
		b.WriteString(v.Detail)
	}
	return b.String()
}
