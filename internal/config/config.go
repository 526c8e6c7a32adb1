// Package config handles project configuration loading and validation for
// DataShuttle.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigErrorType represents the type of configuration error.
type ConfigErrorType string

const (
	FileNotFound    ConfigErrorType = "FILE_NOT_FOUND"
	InvalidYAML     ConfigErrorType = "INVALID_YAML"
	ValidationError ConfigErrorType = "VALIDATION_ERROR"
)

// ConfigError represents an error that occurred during configuration loading.
type ConfigError struct {
	Type    ConfigErrorType
	Path    string
	Message string
}

func (e *ConfigError) Error() string {
	switch e.Type {
	case FileNotFound:
		return fmt.Sprintf("configuration file not found: %s", e.Path)
	case InvalidYAML:
		return fmt.Sprintf("invalid YAML in configuration file: %s", e.Message)
	case ValidationError:
		return fmt.Sprintf("configuration validation error: %s", e.Message)
	default:
		return fmt.Sprintf("configuration error: %s", e.Message)
	}
}

// WatchConfig holds watch-mode settings.
type WatchConfig struct {
	DebounceSeconds int      `yaml:"debounce_seconds"`
	IgnorePatterns  []string `yaml:"ignore_patterns"`
}

// ProjectConfig holds all settings for one DataShuttle project.
type ProjectConfig struct {
	ProjectName string `yaml:"project_name"`
	// LocalPath and CentralPath are the two storage roots under which the
	// project folder tree is replicated. CentralPath may be empty for a
	// project that has not been given a central store yet.
	LocalPath   string `yaml:"local_path"`
	CentralPath string `yaml:"central_path"`
	// SubPrefix and SesPrefix lead every subject and session folder name.
	SubPrefix string `yaml:"sub_prefix"`
	SesPrefix string `yaml:"ses_prefix"`
	// TopLevelFolder sits between a storage root and the subject folders.
	TopLevelFolder string      `yaml:"top_level_folder"`
	Watch          WatchConfig `yaml:"watch"`
}

// Default returns a ProjectConfig with the conventional prefixes and tree
// layout filled in.
func Default() ProjectConfig {
	return ProjectConfig{
		SubPrefix:      "sub",
		SesPrefix:      "ses",
		TopLevelFolder: "rawdata",
		Watch: WatchConfig{
			DebounceSeconds: 2,
		},
	}
}

// loadEnvStr replaces *result with the named environment variable when set.
func loadEnvStr(key string, result *string) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return
	}
	*result = s
}

// LoadFromEnv overlays environment variables onto the configuration.
func (c *ProjectConfig) LoadFromEnv() {
	loadEnvStr("DS_PROJECT_NAME", &c.ProjectName)
	loadEnvStr("DS_LOCAL_PATH", &c.LocalPath)
	loadEnvStr("DS_CENTRAL_PATH", &c.CentralPath)
	loadEnvStr("DS_SUB_PREFIX", &c.SubPrefix)
	loadEnvStr("DS_SES_PREFIX", &c.SesPrefix)
	loadEnvStr("DS_TOP_LEVEL_FOLDER", &c.TopLevelFolder)
}

// ApplyDefaults fills in defaults for any fields the file or environment
// left empty.
func (c *ProjectConfig) ApplyDefaults() {
	defaults := Default()
	if c.SubPrefix == "" {
		c.SubPrefix = defaults.SubPrefix
	}
	if c.SesPrefix == "" {
		c.SesPrefix = defaults.SesPrefix
	}
	if c.TopLevelFolder == "" {
		c.TopLevelFolder = defaults.TopLevelFolder
	}
	if c.Watch.DebounceSeconds == 0 {
		c.Watch.DebounceSeconds = defaults.Watch.DebounceSeconds
	}
}

// Validate checks that the configuration has all required fields and that
// the prefixes can lead a well-formed identifier.
func (c *ProjectConfig) Validate() error {
	if c.LocalPath == "" {
		return &ConfigError{
			Type:    ValidationError,
			Message: "local_path must be set",
		}
	}
	for _, prefix := range []string{c.SubPrefix, c.SesPrefix} {
		if prefix == "" {
			return &ConfigError{
				Type:    ValidationError,
				Message: "sub_prefix and ses_prefix cannot be empty",
			}
		}
		if strings.ContainsAny(prefix, "-_ ") {
			return &ConfigError{
				Type:    ValidationError,
				Message: fmt.Sprintf("prefix %q cannot contain separators or whitespace", prefix),
			}
		}
	}
	return nil
}

// Roots returns the storage roots to scan, omitting an unset central path.
func (c *ProjectConfig) Roots() []string {
	roots := []string{c.LocalPath}
	if c.CentralPath != "" {
		roots = append(roots, c.CentralPath)
	}
	return roots
}

// Load reads a configuration file, overlays environment variables, applies
// defaults and validates the result. The file is loaded last so its values
// win over the environment.
func Load(filePath string) (*ProjectConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &ConfigError{
				Type: FileNotFound,
				Path: filePath,
			}
		}
		return nil, &ConfigError{
			Type:    FileNotFound,
			Path:    filePath,
			Message: err.Error(),
		}
	}

	config := Default()
	config.LoadFromEnv()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, &ConfigError{
			Type:    InvalidYAML,
			Message: err.Error(),
		}
	}
	config.ApplyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Save serializes and writes a configuration to the given path.
func Save(config *ProjectConfig, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return &ConfigError{
			Type:    InvalidYAML,
			Message: err.Error(),
		}
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return &ConfigError{
			Type:    ValidationError,
			Message: fmt.Sprintf("failed to write configuration file: %s", err.Error()),
		}
	}
	return nil
}
