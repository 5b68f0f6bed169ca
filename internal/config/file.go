package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// FileConfig configures the headless CLI. Values come from an optional YAML
// file, overridden by MEDIAGRAB_* environment variables.
type FileConfig struct {
	BackendURL string        `envconfig:"BACKEND_URL"`
	OutputDir  string        `envconfig:"OUTPUT_DIR"`
	Timeout    time.Duration `envconfig:"TIMEOUT"`
}

// yamlFileConfig is used for YAML unmarshaling with a string timeout.
type yamlFileConfig struct {
	BackendURL string `yaml:"backend_url"`
	OutputDir  string `yaml:"output_dir"`
	Timeout    string `yaml:"timeout"`
}

// EnvPrefix is the prefix for environment overrides (e.g. MEDIAGRAB_BACKEND_URL).
const EnvPrefix = "MEDIAGRAB"

// DefaultFileConfig returns a FileConfig with sensible defaults.
func DefaultFileConfig() FileConfig {
	return FileConfig{
		BackendURL: DefaultBackendURL,
		OutputDir:  ".",
		Timeout:    60 * time.Second,
	}
}

// LoadFileConfig loads CLI configuration: defaults, then the YAML file at
// path if it exists, then environment overrides. An empty path skips the
// file step entirely.
func LoadFileConfig(path string) (FileConfig, error) {
	cfg := DefaultFileConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// Missing config file is fine; env and defaults still apply
		case err != nil:
			return FileConfig{}, fmt.Errorf("read config file: %w", err)
		default:
			var yc yamlFileConfig
			if err := yaml.Unmarshal(data, &yc); err != nil {
				return FileConfig{}, fmt.Errorf("parse config file: %w", err)
			}
			fromFile := FileConfig{BackendURL: yc.BackendURL, OutputDir: yc.OutputDir}
			if yc.Timeout != "" {
				d, err := time.ParseDuration(yc.Timeout)
				if err != nil {
					return FileConfig{}, fmt.Errorf("parse timeout: %w", err)
				}
				fromFile.Timeout = d
			}
			cfg = cfg.merge(fromFile)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("process environment: %w", err)
	}

	return cfg, cfg.validate()
}

// merge merges non-zero override values into c, returning a new FileConfig.
func (c FileConfig) merge(override FileConfig) FileConfig {
	if override.BackendURL != "" {
		c.BackendURL = override.BackendURL
	}
	if override.OutputDir != "" {
		c.OutputDir = override.OutputDir
	}
	if override.Timeout != 0 {
		c.Timeout = override.Timeout
	}
	return c
}

func (c FileConfig) validate() error {
	if !strings.HasPrefix(c.BackendURL, "http://") && !strings.HasPrefix(c.BackendURL, "https://") {
		return fmt.Errorf("config: backend_url must start with http:// or https://, got %q", c.BackendURL)
	}
	if c.Timeout <= 0 {
		return errors.New("config: timeout must be positive")
	}
	return nil
}
