package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOperationKey(t *testing.T) {
	op := &Operation{Verb: MethodGet, RequestPath: "/repos/{owner}/{repo}", Version: "ghes-3.10"}
	require.Equal(t, "GET /repos/{owner}/{repo} (ghes-3.10)", op.Key())
}

func TestRequiredPreviews(t *testing.T) {
	op := &Operation{
		Previews: []Preview{
			{Name: "scarlet-witch", Required: true},
			{Name: "mercy", Required: false},
			{Name: "luke-cage", Required: true},
		},
	}

	required := op.RequiredPreviews()
	require.Len(t, required, 2)
	require.Equal(t, "scarlet-witch", required[0].Name)
	require.Equal(t, "luke-cage", required[1].Name)

	require.Empty(t, (&Operation{}).RequiredPreviews())
}

func TestSample(t *testing.T) {
	op := &Operation{
		CodeSamples: []CodeSample{
			{Lang: "Shell", Source: "curl"},
			{Lang: "JavaScript", Source: "await octokit.request()"},
		},
	}

	s, ok := op.Sample("JavaScript")
	require.True(t, ok)
	require.Equal(t, "await octokit.request()", s.Source)

	s, ok = op.Sample("javascript")
	require.True(t, ok)
	require.Equal(t, "JavaScript", s.Lang)

	_, ok = op.Sample("Ruby")
	require.False(t, ok)
}

func TestSamples(t *testing.T) {
	op := &Operation{
		CodeSamples: []CodeSample{
			{Lang: "Shell", Source: "curl -X GET"},
			{Lang: "JavaScript", Source: "await octokit.request()"},
			{Lang: "shell", Source: "curl -X POST"},
		},
	}

	shell := op.Samples("Shell")
	require.Len(t, shell, 2)
	require.Equal(t, "curl -X GET", shell[0].Source)
	require.Equal(t, "curl -X POST", shell[1].Source)

	require.Len(t, op.Samples("JavaScript"), 1)
	require.Empty(t, op.Samples("Ruby"))
}
