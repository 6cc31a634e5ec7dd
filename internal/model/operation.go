package model

import (
	"fmt"
	"strings"
)

type Operation struct {
	ID          string
	Verb        Method
	RequestPath string
	Summary     string
	Category    string
	Subcategory string
	Version     string
	Parameters  []Parameter
	Previews    []Preview
	CodeSamples []CodeSample
}

// Key identifies the operation in diagnostics: "GET /repos/{owner}/{repo} (ghes-3.10)".
func (o *Operation) Key() string {
	return fmt.Sprintf("%s %s (%s)", o.Verb, o.RequestPath, o.Version)
}

// RequiredPreviews returns the previews the operation cannot be invoked without.
func (o *Operation) RequiredPreviews() []Preview {
	var required []Preview
	for _, p := range o.Previews {
		if p.Required {
			required = append(required, p)
		}
	}
	return required
}

// Sample returns the first code sample for the given language label, matched
// case-insensitively. The second return reports whether one exists.
func (o *Operation) Sample(lang string) (CodeSample, bool) {
	for _, s := range o.CodeSamples {
		if strings.EqualFold(s.Lang, lang) {
			return s, true
		}
	}
	return CodeSample{}, false
}

// Samples returns every code sample carrying the language label, matched
// case-insensitively.
func (o *Operation) Samples(lang string) []CodeSample {
	var out []CodeSample
	for _, s := range o.CodeSamples {
		if strings.EqualFold(s.Lang, lang) {
			out = append(out, s)
		}
	}
	return out
}

type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodPatch   Method = "PATCH"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
	MethodTrace   Method = "TRACE"
)

type ParameterLocation string

const (
	LocationPath   ParameterLocation = "path"
	LocationQuery  ParameterLocation = "query"
	LocationHeader ParameterLocation = "header"
	LocationBody   ParameterLocation = "body"
)

type Parameter struct {
	Name     string
	In       ParameterLocation
	Required bool
	Type     string
	// Fields holds the named sub-fields of an object or array-of-object
	// parameter, in declaration order.
	Fields []string
}

// Preview is an opt-in behavior change gated behind a custom media-type
// header. Required previews must be supplied for the operation to work at all.
type Preview struct {
	Name     string
	Required bool
}

type CodeSample struct {
	Lang       string
	Source     string
	SourceHTML string
}
