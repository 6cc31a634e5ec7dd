package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func testCmd(args ...string) *cobra.Command {
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	BindCommonFlags(cmd)
	cmd.SetArgs(args)
	return cmd
}

func TestLoadFromFlags(t *testing.T) {
	cmd := testCmd("--schema-dir", "schemas", "--registry", "versions.yml", "--min-versions", "3")
	require.NoError(t, cmd.Execute())

	cfg, err := Load(cmd)
	require.NoError(t, err)
	require.Equal(t, "schemas", cfg.SchemaDir)
	require.Equal(t, "versions.yml", cfg.RegistryFile)
	require.Equal(t, 3, cfg.MinVersions)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "restcat.yaml")
	content := `
schema-dir: decorated
registry: versions.yml
min-versions: 7
examples:
  languages:
    - Shell
    - JavaScript
    - Ruby
  baseline-media-type: application/vnd.github.v4+json
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

	cmd := testCmd("--config", configFile)
	require.NoError(t, cmd.Execute())

	cfg, err := Load(cmd)
	require.NoError(t, err)
	require.Equal(t, "decorated", cfg.SchemaDir)
	require.Equal(t, 7, cfg.MinVersions)
	require.Equal(t, []string{"Shell", "JavaScript", "Ruby"}, cfg.Examples.Languages)
	require.Equal(t, "application/vnd.github.v4+json", cfg.Examples.BaselineMediaType)
	// Unset fields still get defaults.
	require.Equal(t, "Shell", cfg.Examples.RawHTTPLanguage)
	require.Equal(t, "application/vnd.github.%s-preview+json", cfg.Examples.PreviewMediaTypeFormat)
}

func TestFlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "restcat.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("schema-dir: from-file\nregistry: versions.yml\n"), 0o644))

	cmd := testCmd("--config", configFile, "--schema-dir", "from-flag")
	require.NoError(t, cmd.Execute())

	cfg, err := Load(cmd)
	require.NoError(t, err)
	require.Equal(t, "from-flag", cfg.SchemaDir)
}

func TestDefaults(t *testing.T) {
	cmd := testCmd("--schema-dir", "schemas", "--registry", "versions.yml")
	require.NoError(t, cmd.Execute())

	cfg, err := Load(cmd)
	require.NoError(t, err)
	require.Equal(t, 6, cfg.MinVersions)
	require.Equal(t, []string{"Shell", "JavaScript"}, cfg.Examples.Languages)
	require.Equal(t, "Shell", cfg.Examples.RawHTTPLanguage)
	require.Equal(t, "JavaScript", cfg.Examples.SDKLanguage)
	require.Equal(t, "application/vnd.github.v3+json", cfg.Examples.BaselineMediaType)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		errContains string
	}{
		{
			name:   "valid",
			config: Config{SchemaDir: "schemas", RegistryFile: "versions.yml", MinVersions: 6},
		},
		{
			name:        "missing schema dir",
			config:      Config{RegistryFile: "versions.yml", MinVersions: 6},
			errContains: "schema directory is required",
		},
		{
			name:        "missing registry",
			config:      Config{SchemaDir: "schemas", MinVersions: 6},
			errContains: "version registry file is required",
		},
		{
			name:        "non-positive min versions",
			config:      Config{SchemaDir: "schemas", RegistryFile: "versions.yml", MinVersions: -1},
			errContains: "min-versions must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.errContains == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.errContains)
		})
	}
}
