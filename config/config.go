// Package config provides configuration loading and validation for the
// skos2jskos converter.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the complete converter configuration. Exactly one input
// mode (sources, url, or endpoint) must be set.
type Config struct {
	// SourceFiles are local RDF files or glob patterns to load.
	SourceFiles []string `yaml:"sources"`
	// SourceURL is a remote RDF document to fetch.
	SourceURL string `yaml:"url"`
	// Endpoint is a SPARQL endpoint to query.
	Endpoint string `yaml:"endpoint"`

	// OutputDir receives scheme.json and concepts.json.
	OutputDir string `yaml:"output"`
	// Name, when set, prefixes the output file names (<name>-scheme.json).
	Name string `yaml:"name"`
	// Language is the default tag for literals without one.
	Language string `yaml:"language"`
	// SchemeURI pins the concept scheme; auto-discovered when empty.
	SchemeURI string `yaml:"scheme"`

	// Quiet suppresses info logs; Verbose enables debug logs. Flag-only.
	Quiet   bool `yaml:"-"`
	Verbose bool `yaml:"-"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		OutputDir: ".",
		Language:  "en",
	}
}

// Validate checks that the configuration is usable before any querying
// starts.
func (c *Config) Validate() error {
	modes := 0
	if len(c.SourceFiles) > 0 {
		modes++
	}
	if c.SourceURL != "" {
		modes++
	}
	if c.Endpoint != "" {
		modes++
	}
	if modes == 0 {
		return fmt.Errorf("no input specified: set sources, url, or endpoint")
	}
	if modes > 1 {
		return fmt.Errorf("sources, url, and endpoint are mutually exclusive")
	}

	if c.Language == "" {
		return fmt.Errorf("language must not be empty")
	}

	info, err := os.Stat(c.OutputDir)
	if err != nil {
		return fmt.Errorf("output directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output directory: not a directory: %s", c.OutputDir)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file on top of defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return config, nil
}

// Merge merges another config into this one; non-zero values of other
// take precedence.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if len(other.SourceFiles) > 0 {
		c.SourceFiles = other.SourceFiles
	}
	if other.SourceURL != "" {
		c.SourceURL = other.SourceURL
	}
	if other.Endpoint != "" {
		c.Endpoint = other.Endpoint
	}
	if other.OutputDir != "" {
		c.OutputDir = other.OutputDir
	}
	if other.Name != "" {
		c.Name = other.Name
	}
	if other.Language != "" {
		c.Language = other.Language
	}
	if other.SchemeURI != "" {
		c.SchemeURI = other.SchemeURI
	}
	if other.Quiet {
		c.Quiet = true
	}
	if other.Verbose {
		c.Verbose = true
	}
}
