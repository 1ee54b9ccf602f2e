package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the file name looked up in the user and local config directories.
const configFile = "runner.yaml"

// LoadOption configures LoadRunner.
type LoadOption func(*loadOptions)

type loadOptions struct {
	onSkip func(path string, err error)
}

// WithSkipHandler registers fn for config files in the search order that
// exist but cannot be used. Such files are skipped either way.
func WithSkipHandler(fn func(path string, err error)) LoadOption {
	return func(o *loadOptions) {
		o.onSkip = fn
	}
}

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.coinrun/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
func LoadRunner(customPath string, opts ...LoadOption) (RunnerConfig, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}
	skip := func(path string, err error) {
		if o.onSkip != nil {
			o.onSkip(path, err)
		}
	}

	// Start from defaults so partial files only override what they name.
	cfg := DefaultRunnerConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		loaded, ok, err := tryLoad(path)
		if err != nil {
			skip(path, err)
			continue
		}
		if ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. A missing file is not an error;
// an unreadable, unparsable or invalid one is.
func tryLoad(path string) (RunnerConfig, bool, error) {
	cfg := DefaultRunnerConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, false, nil
	}
	if err != nil {
		return cfg, false, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, true, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".coinrun", "configs", filename)
}
