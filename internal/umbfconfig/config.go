// Package umbfconfig loads the optional umbf.yaml configuration file:
// vendor identity defaults, library search paths, and log settings. The
// umbf CLI in cmd/umbf does not load it; its settings come from flags only.
package umbfconfig

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the umbf.yaml shape. Numeric fields are pointers so a present
// but zero value can be told apart from "not set".
type Config struct {
	VendorSign    *uint32 `yaml:"vendor_sign"`
	VendorVersion *uint32 `yaml:"vendor_version"`
	SpecVersion   *uint32 `yaml:"spec_version"`

	LibraryPaths []string `yaml:"library_paths"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Path returns the default config path, $XDG_CONFIG_HOME/umbf/umbf.yaml
// (or its OS equivalent via os.UserConfigDir), or "" if undeterminable.
func Path() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "umbf", "umbf.yaml")
}

// Load reads the config file at path. A missing file or a file that fails
// to parse yields a zero Config rather than an error.
func Load(path string) Config {
	if path == "" {
		path = Path()
	}
	if path == "" {
		return Config{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}
	return cfg
}
