package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

type Config struct {
	SchemaDir    string         `koanf:"schema-dir"`
	RegistryFile string         `koanf:"registry"`
	MinVersions  int            `koanf:"min-versions"`
	Examples     ExamplesConfig `koanf:"examples"`
	Verbose      bool           `koanf:"verbose"`
}

type ExamplesConfig struct {
	Languages              []string `koanf:"languages"`
	RawHTTPLanguage        string   `koanf:"raw-http-language"`
	SDKLanguage            string   `koanf:"sdk-language"`
	BaselineMediaType      string   `koanf:"baseline-media-type"`
	PreviewMediaTypeFormat string   `koanf:"preview-media-type-format"`
}

// BindCommonFlags binds the flags shared by every restcat command.
func BindCommonFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP("config", "c", "", "Config file path (default: restcat.yaml)")
	flags.StringP("schema-dir", "d", "", "Directory holding decorated schema documents")
	flags.StringP("registry", "r", "", "Version registry YAML file")
	flags.Int("min-versions", 0, "Minimum number of schema versions expected")
	flags.StringSlice("languages", nil, "Example languages every operation must carry")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
}

func Load(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")

	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" {
		configFile, _ = cmd.PersistentFlags().GetString("config")
	}
	if configFile == "" {
		if _, err := os.Stat("restcat.yaml"); err == nil {
			configFile = "restcat.yaml"
		}
	}

	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	flagsMap := buildFlagsMap(cmd)
	if len(flagsMap) > 0 {
		if err := k.Load(confmap.Provider(flagsMap, "."), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func buildFlagsMap(cmd *cobra.Command) map[string]any {
	m := make(map[string]any)

	getString := func(name string) string {
		if v, err := cmd.Flags().GetString(name); err == nil && v != "" {
			return v
		}
		if v, err := cmd.PersistentFlags().GetString(name); err == nil && v != "" {
			return v
		}
		return ""
	}

	getStringSlice := func(name string) []string {
		if v, err := cmd.Flags().GetStringSlice(name); err == nil && len(v) > 0 {
			return v
		}
		if v, err := cmd.PersistentFlags().GetStringSlice(name); err == nil && len(v) > 0 {
			return v
		}
		return nil
	}

	getInt := func(name string) int {
		if v, err := cmd.Flags().GetInt(name); err == nil && v != 0 {
			return v
		}
		if v, err := cmd.PersistentFlags().GetInt(name); err == nil && v != 0 {
			return v
		}
		return 0
	}

	getBool := func(name string) bool {
		if v, err := cmd.Flags().GetBool(name); err == nil && v {
			return v
		}
		if v, err := cmd.PersistentFlags().GetBool(name); err == nil && v {
			return v
		}
		return false
	}

	if v := getString("schema-dir"); v != "" {
		m["schema-dir"] = v
	}
	if v := getString("registry"); v != "" {
		m["registry"] = v
	}
	if v := getInt("min-versions"); v != 0 {
		m["min-versions"] = v
	}
	if v := getStringSlice("languages"); len(v) > 0 {
		m["examples.languages"] = v
	}
	if getBool("verbose") {
		m["verbose"] = true
	}

	return m
}

func (c *Config) applyDefaults() {
	if c.MinVersions == 0 {
		c.MinVersions = 6
	}
	if len(c.Examples.Languages) == 0 {
		c.Examples.Languages = []string{"Shell", "JavaScript"}
	}
	if c.Examples.RawHTTPLanguage == "" {
		c.Examples.RawHTTPLanguage = "Shell"
	}
	if c.Examples.SDKLanguage == "" {
		c.Examples.SDKLanguage = "JavaScript"
	}
	if c.Examples.BaselineMediaType == "" {
		c.Examples.BaselineMediaType = "application/vnd.github.v3+json"
	}
	if c.Examples.PreviewMediaTypeFormat == "" {
		c.Examples.PreviewMediaTypeFormat = "application/vnd.github.%s-preview+json"
	}
}

func (c *Config) Validate() error {
	if c.SchemaDir == "" {
		return fmt.Errorf("schema directory is required")
	}
	if c.RegistryFile == "" {
		return fmt.Errorf("version registry file is required")
	}
	if c.MinVersions < 1 {
		return fmt.Errorf("min-versions must be positive, got %d", c.MinVersions)
	}
	return nil
}
