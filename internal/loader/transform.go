package loader

import (
	"fmt"
	"slices"

	"github.com/pb33f/libopenapi/datamodel/high/base"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"
	"go.yaml.in/yaml/v4"

	"github.com/mkalis/restcat/internal/model"
)

// Transform flattens one decorated document into operation records for the
// given product version. Operation order follows document order: paths in
// declaration order, verbs in the fixed method order below.
func Transform(result *Result, version string) ([]*model.Operation, error) {
	doc := result.Document.Model

	var ops []*model.Operation
	if doc.Paths == nil {
		return ops, nil
	}

	for pathStr, pathItem := range doc.Paths.PathItems.FromOldest() {
		if pathStr == "" {
			return nil, fmt.Errorf("version %s: operation with empty request path", version)
		}
		pathOps, err := transformPathItem(version, pathStr, pathItem)
		if err != nil {
			return nil, err
		}
		ops = append(ops, pathOps...)
	}

	return ops, nil
}

func transformPathItem(version, pathStr string, pathItem *v3.PathItem) ([]*model.Operation, error) {
	// Use a slice for deterministic ordering
	methods := []struct {
		method model.Method
		op     *v3.Operation
	}{
		{model.MethodGet, pathItem.Get},
		{model.MethodPost, pathItem.Post},
		{model.MethodPut, pathItem.Put},
		{model.MethodDelete, pathItem.Delete},
		{model.MethodPatch, pathItem.Patch},
		{model.MethodHead, pathItem.Head},
		{model.MethodOptions, pathItem.Options},
		{model.MethodTrace, pathItem.Trace},
	}

	var ops []*model.Operation
	for _, m := range methods {
		if m.op == nil {
			continue
		}
		op, err := transformOperation(version, pathStr, m.method, m.op)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}

	return ops, nil
}

func transformOperation(version, pathStr string, method model.Method, src *v3.Operation) (*model.Operation, error) {
	meta, err := parseGitHubMeta(src.Extensions)
	if err != nil {
		return nil, fmt.Errorf("version %s: %s %s: %w", version, method, pathStr, err)
	}

	op := &model.Operation{
		ID:          src.OperationId,
		Verb:        method,
		RequestPath: pathStr,
		Summary:     src.Summary,
		Category:    meta.category,
		Subcategory: meta.subcategory,
		Version:     version,
		Previews:    meta.previews,
	}

	for _, p := range src.Parameters {
		op.Parameters = append(op.Parameters, transformParameter(p))
	}
	op.Parameters = append(op.Parameters, transformBodyParameters(src.RequestBody)...)

	op.CodeSamples, err = parseCodeSamples(src.Extensions)
	if err != nil {
		return nil, fmt.Errorf("version %s: %s %s: %w", version, method, pathStr, err)
	}

	return op, nil
}

func transformParameter(p *v3.Parameter) model.Parameter {
	param := model.Parameter{
		Name:     p.Name,
		In:       model.ParameterLocation(p.In),
		Required: p.Required != nil && *p.Required,
	}
	if p.Schema != nil {
		schema := p.Schema.Schema()
		if schema != nil && len(schema.Type) > 0 {
			param.Type = schema.Type[0]
		}
	}
	return param
}

// transformBodyParameters lifts the JSON request body's top-level properties
// into body parameters, capturing one level of nested field names for object
// and array-of-object properties.
func transformBodyParameters(rb *v3.RequestBody) []model.Parameter {
	if rb == nil || rb.Content == nil {
		return nil
	}

	var schema *base.Schema
	for mediaType, content := range rb.Content.FromOldest() {
		if content.Schema == nil {
			continue
		}
		if mediaType == "application/json" || schema == nil {
			schema = content.Schema.Schema()
		}
	}
	if schema == nil || schema.Properties == nil {
		return nil
	}

	var params []model.Parameter
	for name, propProxy := range schema.Properties.FromOldest() {
		prop := propProxy.Schema()
		param := model.Parameter{
			Name:     name,
			In:       model.LocationBody,
			Required: slices.Contains(schema.Required, name),
		}
		if prop != nil {
			if len(prop.Type) > 0 {
				param.Type = prop.Type[0]
			}
			param.Fields = propertyFields(prop)
		}
		params = append(params, param)
	}

	return params
}

// propertyFields returns the named sub-fields of an object property, or of an
// array property's item object, in declaration order.
func propertyFields(s *base.Schema) []string {
	target := s
	if len(s.Type) > 0 && s.Type[0] == "array" && s.Items != nil && s.Items.A != nil {
		target = s.Items.A.Schema()
	}
	if target == nil || target.Properties == nil {
		return nil
	}

	var fields []string
	for name := range target.Properties.FromOldest() {
		fields = append(fields, name)
	}
	return fields
}

type githubMeta struct {
	category    string
	subcategory string
	previews    []model.Preview
}

// parseGitHubMeta decodes the x-github extension carrying the operation's
// place in the documentation taxonomy and its preview descriptors.
func parseGitHubMeta(extensions *orderedExtensions) (githubMeta, error) {
	var meta githubMeta
	node := extensionNode(extensions, "x-github")
	if node == nil {
		return meta, nil
	}
	if node.Kind != yaml.MappingNode {
		return meta, fmt.Errorf("x-github extension is not a mapping")
	}

	for i := 0; i < len(node.Content)-1; i += 2 {
		key := node.Content[i].Value
		value := node.Content[i+1]
		switch key {
		case "category":
			meta.category = value.Value
		case "subcategory":
			meta.subcategory = value.Value
		case "previews":
			previews, err := parsePreviews(value)
			if err != nil {
				return meta, err
			}
			meta.previews = previews
		}
	}

	return meta, nil
}

func parsePreviews(node *yaml.Node) ([]model.Preview, error) {
	if node == nil || node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("x-github previews is not a sequence")
	}

	var previews []model.Preview
	for _, item := range node.Content {
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("x-github preview entry is not a mapping")
		}
		var p model.Preview
		for i := 0; i < len(item.Content)-1; i += 2 {
			key := item.Content[i].Value
			value := item.Content[i+1].Value
			switch key {
			case "name":
				p.Name = value
			case "required":
				p.Required = value == "true"
			}
		}
		if p.Name == "" {
			return nil, fmt.Errorf("x-github preview entry missing name")
		}
		previews = append(previews, p)
	}

	return previews, nil
}

// parseCodeSamples decodes the x-codeSamples extension: an ordered list of
// {lang, source, sourceHTML} entries, one per client integration.
func parseCodeSamples(extensions *orderedExtensions) ([]model.CodeSample, error) {
	node := extensionNode(extensions, "x-codeSamples")
	if node == nil {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("x-codeSamples extension is not a sequence")
	}

	var samples []model.CodeSample
	for _, item := range node.Content {
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("x-codeSamples entry is not a mapping")
		}
		var s model.CodeSample
		for i := 0; i < len(item.Content)-1; i += 2 {
			key := item.Content[i].Value
			value := item.Content[i+1].Value
			switch key {
			case "lang":
				s.Lang = value
			case "source":
				s.Source = value
			case "sourceHTML":
				s.SourceHTML = value
			}
		}
		if s.Lang == "" {
			return nil, fmt.Errorf("x-codeSamples entry missing lang")
		}
		samples = append(samples, s)
	}

	return samples, nil
}
