// Package config loads the project configuration file and turns it into a
// validator configuration and component registry.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/githubnext/gh-prtitle/pkg/logger"
	"github.com/githubnext/gh-prtitle/pkg/prtitle"
	"github.com/githubnext/gh-prtitle/pkg/registry"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

var configLog = logger.New("config:config")

//go:embed schemas/config_schema.json
var configSchemaJSON []byte

const configSchemaURL = "https://github.com/githubnext/gh-prtitle/config.json"

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(configSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded config schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(configSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("failed to add config schema: %w", err)
	}
	return c.Compile(configSchemaURL)
})

// File mirrors the on-disk configuration. Omitted fields keep their defaults.
type File struct {
	Types               []string `yaml:"types,omitempty"`
	Scopes              []string `yaml:"scopes,omitempty"`
	SkipChangelogMarker string   `yaml:"skip-changelog-marker,omitempty"`
	NodeSuffix          string   `yaml:"node-suffix,omitempty"`
	Patterns            Patterns `yaml:"patterns,omitempty"`
	Registry            Registry `yaml:"registry,omitempty"`
}

// Patterns overrides the regular expressions.
type Patterns struct {
	ConventionalSchema string `yaml:"conventional-schema,omitempty"`
	Ticket             string `yaml:"ticket,omitempty"`
}

// Registry lists component names inline and in description files.
type Registry struct {
	Names []string `yaml:"names,omitempty"`
	Files []string `yaml:"files,omitempty"`
}

// Config is the resolved configuration.
type Config struct {
	Validator prtitle.Config
	Registry  Registry
	// Dir is the directory registry file patterns are resolved against.
	Dir string
	// Path is the file that was loaded, or "" when defaults were used.
	Path string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{Validator: prtitle.DefaultConfig(), Dir: "."}
}

// Load reads path. When optional is true a missing file yields the defaults.
func Load(path string, optional bool) (*Config, error) {
	configLog.Printf("Loading config: path=%s, optional=%v", path, optional)

	content, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			configLog.Print("Config file not found, using defaults")
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	cfg.Path = path
	cfg.Dir = repoRootFor(path)
	return cfg, nil
}

// Parse validates content against the config schema and overlays it on the
// defaults.
func Parse(content []byte) (*Config, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return Default(), nil
	}
	if err := validateSchema(content); err != nil {
		return nil, err
	}

	var file File
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg := Default()
	file.apply(cfg)
	configLog.Printf("Parsed config: types=%d, scopes=%d, registry_files=%d", len(cfg.Validator.Types), len(cfg.Validator.Scopes), len(cfg.Registry.Files))
	return cfg, nil
}

func (f File) apply(cfg *Config) {
	v := &cfg.Validator
	if f.Types != nil {
		v.Types = f.Types
	}
	if f.Scopes != nil {
		v.Scopes = f.Scopes
	}
	if f.SkipChangelogMarker != "" {
		v.SkipChangelogMarker = f.SkipChangelogMarker
	}
	if f.NodeSuffix != "" {
		v.NodeSuffix = f.NodeSuffix
	}
	if f.Patterns.ConventionalSchema != "" {
		v.SchemaPattern = f.Patterns.ConventionalSchema
	}
	if f.Patterns.Ticket != "" {
		v.TicketPattern = f.Patterns.Ticket
	}
	cfg.Registry = f.Registry
}

func validateSchema(content []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}

	jsonContent, err := yaml.YAMLToJSON(content)
	if err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonContent))
	if err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if inst == nil {
		// Comment-only document.
		return nil
	}
	if err := schema.Validate(inst); err != nil {
		configLog.Printf("Schema validation failed: %v", err)
		return fmt.Errorf("config does not match schema: %w", err)
	}
	return nil
}

// repoRootFor returns the directory registry patterns are relative to. A
// config inside .github belongs to the repository above it.
func repoRootFor(path string) string {
	dir := filepath.Dir(path)
	if filepath.Base(dir) == ".github" {
		return filepath.Dir(dir)
	}
	return dir
}

// ComponentRegistry builds the registry described by the config. Files are
// loaded immediately so errors surface before validation starts. extra
// patterns are resolved against the working directory.
func (c *Config) ComponentRegistry(extra ...string) (registry.Source, error) {
	sources := registry.Union{registry.Static(c.Registry.Names)}

	if len(c.Registry.Files) > 0 {
		files := registry.NewFileRegistry(c.Dir, c.Registry.Files...)
		if err := files.Load(); err != nil {
			return nil, err
		}
		sources = append(sources, files)
	}
	if len(extra) > 0 {
		files := registry.NewFileRegistry(".", extra...)
		if err := files.Load(); err != nil {
			return nil, err
		}
		sources = append(sources, files)
	}
	return sources, nil
}

// Marshal renders the effective configuration as YAML in the file format.
func (c *Config) Marshal() ([]byte, error) {
	f := File{
		Types:               c.Validator.Types,
		Scopes:              c.Validator.Scopes,
		SkipChangelogMarker: c.Validator.SkipChangelogMarker,
		NodeSuffix:          c.Validator.NodeSuffix,
		Patterns: Patterns{
			ConventionalSchema: c.Validator.SchemaPattern,
			Ticket:             c.Validator.TicketPattern,
		},
		Registry: c.Registry,
	}
	return yaml.Marshal(f)
}
