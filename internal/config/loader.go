package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load parses the YAML file at path into a raw, unresolved config.
// ${VAR} references are expanded from the environment before parsing.
// Unknown keys are rejected so a typo fails loudly instead of silently
// running on defaults. An empty or comment-only file yields a zero config.
func Load(path string) (*StreamerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	dec := yaml.NewDecoder(strings.NewReader(os.ExpandEnv(string(data))))
	dec.KnownFields(true)

	var cfg StreamerConfig
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}
	return &cfg, nil
}

// LoadWithDefaults is Load followed by default resolution for every field
// left at its zero value.
func LoadWithDefaults(path string) (*StreamerConfig, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

// LoadAndValidate is the one-call path: load, resolve defaults, validate.
func LoadAndValidate(path string) (*StreamerConfig, error) {
	cfg, err := LoadWithDefaults(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Resolve returns the run configuration: built-in defaults when path is
// empty, otherwise the file with defaults applied. Validation is left to
// the caller, which may still override fields before checking them.
func Resolve(path string) (*StreamerConfig, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadWithDefaults(path)
}
