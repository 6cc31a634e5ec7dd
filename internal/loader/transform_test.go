package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkalis/restcat/internal/model"
	"github.com/mkalis/restcat/internal/store"
)

func loadFixture(t *testing.T) *Result {
	t.Helper()

	path := filepath.Join("testdata", "api.github.com.json")
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	result, err := Load(store.Document{Version: "api.github.com", Path: path, Data: data})
	require.NoError(t, err)
	return result
}

func TestLoadRejectsNonV3Documents(t *testing.T) {
	doc := store.Document{
		Version: "legacy",
		Path:    "legacy.json",
		Data:    []byte(`{"swagger": "2.0", "info": {"title": "t", "version": "1"}, "paths": {}}`),
	}

	_, err := Load(doc)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported OpenAPI version")
}

func TestTransformOperationOrder(t *testing.T) {
	ops, err := Transform(loadFixture(t), "api.github.com")
	require.NoError(t, err)
	require.Len(t, ops, 4)

	// Depth-first over paths in declaration order, verbs in method order.
	require.Equal(t, model.MethodGet, ops[0].Verb)
	require.Equal(t, "/repos/{owner}/{repo}", ops[0].RequestPath)
	require.Equal(t, model.MethodPost, ops[1].Verb)
	require.Equal(t, "/repos/{owner}/{repo}/git/trees", ops[1].RequestPath)
	require.Equal(t, model.MethodPut, ops[2].Verb)
	require.Equal(t, "/authorizations/clients/{client_id}/{fingerprint}", ops[2].RequestPath)
	require.Equal(t, model.MethodGet, ops[3].Verb)
	require.Equal(t, "/codes_of_conduct", ops[3].RequestPath)

	for _, op := range ops {
		require.Equal(t, "api.github.com", op.Version)
	}
}

func TestTransformTaxonomy(t *testing.T) {
	ops, err := Transform(loadFixture(t), "api.github.com")
	require.NoError(t, err)

	require.Equal(t, "repos", ops[0].Category)
	require.Empty(t, ops[0].Subcategory)
	require.Equal(t, "git", ops[1].Category)
	require.Equal(t, "trees", ops[1].Subcategory)
}

func TestTransformPreviews(t *testing.T) {
	ops, err := Transform(loadFixture(t), "api.github.com")
	require.NoError(t, err)

	require.Empty(t, ops[0].Previews)
	require.Empty(t, ops[0].RequiredPreviews())

	conduct := ops[3]
	require.Len(t, conduct.Previews, 1)
	require.Equal(t, "scarlet-witch", conduct.Previews[0].Name)
	require.True(t, conduct.Previews[0].Required)
	require.Len(t, conduct.RequiredPreviews(), 1)
}

func TestTransformParameters(t *testing.T) {
	ops, err := Transform(loadFixture(t), "api.github.com")
	require.NoError(t, err)

	trees := ops[1]
	names := make(map[string]model.Parameter, len(trees.Parameters))
	for _, p := range trees.Parameters {
		names[p.Name] = p
	}

	require.Equal(t, model.LocationPath, names["owner"].In)
	require.True(t, names["owner"].Required)
	require.Equal(t, model.LocationPath, names["repo"].In)

	tree := names["tree"]
	require.Equal(t, model.LocationBody, tree.In)
	require.True(t, tree.Required)
	require.Equal(t, "array", tree.Type)
	require.Equal(t, []string{"path", "mode", "type", "sha", "content"}, tree.Fields)

	baseTree := names["base_tree"]
	require.Equal(t, model.LocationBody, baseTree.In)
	require.False(t, baseTree.Required)
	require.Empty(t, baseTree.Fields)

	auth := ops[2]
	authNames := make(map[string]model.Parameter, len(auth.Parameters))
	for _, p := range auth.Parameters {
		authNames[p.Name] = p
	}
	require.Contains(t, authNames, "client_id")
	require.Contains(t, authNames, "fingerprint")
	require.Contains(t, authNames, "client_secret")
	require.Equal(t, model.LocationBody, authNames["client_secret"].In)
}

func TestTransformCodeSamples(t *testing.T) {
	ops, err := Transform(loadFixture(t), "api.github.com")
	require.NoError(t, err)

	repo := ops[0]
	require.Len(t, repo.CodeSamples, 2)
	require.Equal(t, "Shell", repo.CodeSamples[0].Lang)
	require.Equal(t, "JavaScript", repo.CodeSamples[1].Lang)
	require.Contains(t, repo.CodeSamples[0].Source, `Accept: application/vnd.github.v3+json`)
	require.Contains(t, repo.CodeSamples[0].Source, "https://api.github.com/repos/octocat/hello-world")
	require.NotEmpty(t, repo.CodeSamples[0].SourceHTML)

	sample, ok := repo.Sample("shell")
	require.True(t, ok)
	require.Equal(t, "Shell", sample.Lang)
}

func TestTransformMalformedCodeSamples(t *testing.T) {
	doc := store.Document{
		Version: "broken",
		Path:    "broken.json",
		Data: []byte(`{
			"openapi": "3.0.3",
			"info": {"title": "t", "version": "1"},
			"paths": {
				"/widgets": {
					"get": {
						"responses": {"200": {"description": "ok"}},
						"x-github": {"category": "widgets"},
						"x-codeSamples": {"lang": "Shell"}
					}
				}
			}
		}`),
	}

	result, err := Load(doc)
	require.NoError(t, err)

	_, err = Transform(result, "broken")
	require.Error(t, err)
	require.Contains(t, err.Error(), "x-codeSamples")
}

func TestTransformMalformedPreviewEntry(t *testing.T) {
	doc := store.Document{
		Version: "broken",
		Path:    "broken.json",
		Data: []byte(`{
			"openapi": "3.0.3",
			"info": {"title": "t", "version": "1"},
			"paths": {
				"/widgets": {
					"get": {
						"responses": {"200": {"description": "ok"}},
						"x-github": {"category": "widgets", "previews": [{"required": true}]}
					}
				}
			}
		}`),
	}

	result, err := Load(doc)
	require.NoError(t, err)

	_, err = Transform(result, "broken")
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing name")
}
