package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// maxUpwardSearchLevels limits how far up the directory tree to search for
// a project config file.
const maxUpwardSearchLevels = 10

var (
	k              = koanf.New(".")
	configFileUsed string
)

func configExistsIn(dir string) bool {
	for _, name := range []string{".roup.yaml", ".roup.yml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// findProjectRootUpward searches upward from startDir for a .roup.yaml (or
// .yml) config file.
func findProjectRootUpward(startDir string) string {
	dir := startDir
	for i := 0; i < maxUpwardSearchLevels; i++ {
		if configExistsIn(dir) {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	root := findProjectRootUpward(cwd)
	if root == "" {
		return ""
	}
	for _, name := range []string{".roup.yaml", ".roup.yml"} {
		candidate := filepath.Join(root, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// ResetConfig resets the package-level koanf instance. Used by tests.
func ResetConfig() {
	k = koanf.New(".")
	configFileUsed = ""
}

// Load loads configuration with precedence (lowest to highest): defaults,
// config file, ROUP_-prefixed environment variables, CLI flags.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k = koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"language":         DefaultLanguage,
		"dialect":          DefaultDialect,
		"case_insensitive": false,
		"normalization":    DefaultNormalization,
		"output":           DefaultOutput,
		"verbose":          false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	if err := k.Load(env.Provider("ROUP_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "ROUP_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}

// GetConfigFileUsed returns the path to the config file that was loaded, if
// any.
func GetConfigFileUsed() string {
	return configFileUsed
}
