// Package config loads the generator's built-in source manifest and its
// environment settings.
package config

import (
	_ "embed"
	"fmt"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"github.com/zhedye/gl3w-Single-File/glerrors"
	"go.yaml.in/yaml/v4"
)

//go:embed sources.yaml
var defaultManifest []byte

// EnvPrefix is the prefix for environment variables read by LoadEnv.
const EnvPrefix = "gl3w"

// Source is one upstream header.
type Source struct {
	// File is the file name the header is stored under inside the root directory
	File string `yaml:"file"`
	// URL is where the header is downloaded from
	URL string `yaml:"url"`
	// API marks the header that is scanned for procedures
	API bool `yaml:"api"`
}

// Manifest lists the headers to fetch and names the generated file.
type Manifest struct {
	Output  string   `yaml:"output"`
	Sources []Source `yaml:"sources"`
}

// Env holds settings read from GL3W_* environment variables.
type Env struct {
	// Possible values "debug", "info", "warn", "error"
	LogLevel string `split_words:"true" default:"info"`
	// Possible values "console", "json"
	LogFormat string `split_words:"true" default:"console"`
}

// Config is the generator configuration, built once at startup.
type Config struct {
	// IncludeExtensions keeps vendor-suffixed procedures (ARB, EXT, ...)
	IncludeExtensions bool
	// Root is the directory the upstream headers are read from and downloaded into
	Root string
	Manifest
}

// DefaultManifest decodes the embedded source manifest.
func DefaultManifest() (Manifest, error) {
	return ParseManifest(defaultManifest)
}

// ParseManifest decodes and validates a YAML manifest.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, &glerrors.ConfigError{Option: "manifest", Message: "invalid yaml", Cause: err}
	}
	if err := m.Validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// Validate checks that the manifest names an output file and exactly one API header.
func (m Manifest) Validate() error {
	if m.Output == "" {
		return &glerrors.ConfigError{Option: "output", Message: "must not be empty"}
	}
	if filepath.Base(m.Output) != m.Output {
		return &glerrors.ConfigError{Option: "output", Value: m.Output, Message: "must be a bare file name"}
	}
	apis := 0
	seen := make(map[string]bool, len(m.Sources))
	for _, s := range m.Sources {
		if s.File == "" || s.URL == "" {
			return &glerrors.ConfigError{Option: "sources", Value: s.File, Message: "file and url are required"}
		}
		if filepath.Base(s.File) != s.File {
			return &glerrors.ConfigError{Option: "sources", Value: s.File, Message: "file must be a bare file name"}
		}
		if seen[s.File] {
			return &glerrors.ConfigError{Option: "sources", Value: s.File, Message: "duplicate file"}
		}
		seen[s.File] = true
		if s.API {
			apis++
		}
	}
	if apis != 1 {
		return &glerrors.ConfigError{Option: "sources", Value: apis, Message: "exactly one api header is required"}
	}
	return nil
}

// APIHeader returns the source that is scanned for procedures.
func (m Manifest) APIHeader() Source {
	for _, s := range m.Sources {
		if s.API {
			return s
		}
	}
	return Source{}
}

// Load builds a Config from the command-line values and the embedded manifest.
func Load(includeExtensions bool, root string) (*Config, error) {
	m, err := DefaultManifest()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &Config{
		IncludeExtensions: includeExtensions,
		Root:              root,
		Manifest:          m,
	}, nil
}

// LoadEnv reads GL3W_LOG_LEVEL and GL3W_LOG_FORMAT.
func LoadEnv() (*Env, error) {
	env := Env{}
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return nil, &glerrors.ConfigError{Option: "environment", Cause: err}
	}
	return &env, nil
}
