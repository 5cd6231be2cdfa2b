// Package config loads the wayfinder YAML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Graph source kinds.
const (
	SourceFile  = "file"
	SourceNeo4j = "neo4j"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the root of wayfinder.yaml.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Graph  GraphConfig  `yaml:"graph"`
	Log    LogConfig    `yaml:"log"`
	Watch  WatchConfig  `yaml:"watch"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Addr            string        `yaml:"addr" validate:"required,hostname_port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gte=0"`
	Metrics         bool          `yaml:"metrics"`
}

// GraphConfig selects where the location graph is loaded from. Path is
// required for the file source, Neo4j.URI for the neo4j source.
type GraphConfig struct {
	Source       string      `yaml:"source" validate:"required,oneof=file neo4j"`
	Path         string      `yaml:"path"`
	NodeCapacity int         `yaml:"node_capacity" validate:"gte=0"`
	Neo4j        Neo4jConfig `yaml:"neo4j"`
}

// Neo4jConfig holds the Bolt connection and the query returning from, to
// and weight columns. An empty Cypher uses loader.DefaultCypher.
type Neo4jConfig struct {
	URI            string `yaml:"uri" validate:"omitempty,uri"`
	Username       string `yaml:"username"`
	Password       string `yaml:"password"`
	Database       string `yaml:"database"`
	Cypher         string `yaml:"cypher"`
	MaxConnections int    `yaml:"max_connections" validate:"gte=0"`
}

// LogConfig sets the logrus level and output format.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn warning error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// WatchConfig controls hot reload of a file-backed graph.
type WatchConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Debounce time.Duration `yaml:"debounce" validate:"gte=0"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: ServerConfig{Addr: "127.0.0.1:8080", ShutdownTimeout: 10 * time.Second, Metrics: true},
		Graph:  GraphConfig{Source: SourceFile, Path: "campus.dot"},
		Log:    LogConfig{Level: "info", Format: "text"},
		Watch:  WatchConfig{Debounce: 250 * time.Millisecond},
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(graphLevel, GraphConfig{})

	return v
}

// graphLevel requires the field the chosen source depends on.
func graphLevel(sl validator.StructLevel) {
	g := sl.Current().Interface().(GraphConfig)
	switch g.Source {
	case SourceFile:
		if g.Path == "" {
			sl.ReportError(g.Path, "Path", "path", "required_for_file", "")
		}
	case SourceNeo4j:
		if g.Neo4j.URI == "" {
			sl.ReportError(g.Neo4j.URI, "Neo4j.URI", "uri", "required_for_neo4j", "")
		}
	}
}

// Validate checks c against its struct tags and cross-field rules.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Override adjusts a decoded Config before validation, e.g. from CLI flags.
type Override func(*Config)

// Load reads path over the defaults, applies overrides in order and
// validates the result. An empty path starts from the defaults alone.
func Load(path string, overrides ...Override) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := decode(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	for _, o := range overrides {
		o(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}
