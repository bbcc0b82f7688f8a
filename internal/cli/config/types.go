// Package config provides configuration management for the meritboard CLI.
// Precedence, highest to lowest: flags > environment variables > config
// file > defaults.
package config

import (
	"time"

	"github.com/haneul-labs/meritboard/pkg/conduct"
)

// Source types.
const (
	SourceWorkbook = "workbook"
	SourceCSVDir   = "csvdir"
)

// Default configuration values.
const (
	DefaultSourceType   = SourceWorkbook
	DefaultCacheSeconds = 300
	DefaultServePort    = 8765
	DefaultOutput       = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)

// SourceConfig declares where raw worksheet data comes from.
type SourceConfig struct {
	// Type is the backend kind: workbook (xlsx) or csvdir.
	Type string `koanf:"type"`
	// Path is the workbook file or the CSV directory.
	Path string `koanf:"path"`
	// CacheSeconds bounds retrieval memoization; 0 uses the default.
	CacheSeconds int `koanf:"cache_seconds"`
}

// CacheTTL returns the cache bound as a duration.
func (s *SourceConfig) CacheTTL() time.Duration {
	secs := s.CacheSeconds
	if secs <= 0 {
		secs = DefaultCacheSeconds
	}
	return time.Duration(secs) * time.Second
}

// ServeConfig holds HTTP API settings.
type ServeConfig struct {
	Port  int  `koanf:"port"`
	Watch bool `koanf:"watch"`
}

// Config holds all CLI configuration options.
type Config struct {
	Source       *SourceConfig   `koanf:"source"`
	Schema       *conduct.Schema `koanf:"schema"`
	Serve        *ServeConfig    `koanf:"serve"`
	Verbose      bool            `koanf:"verbose"`
	OutputFormat string          `koanf:"output"`
}

// SchemaOrDefault returns the configured schema, or the standard worksheet
// layout when the config declared none.
func (c *Config) SchemaOrDefault() conduct.Schema {
	if c.Schema == nil {
		return conduct.DefaultSchema()
	}
	return *c.Schema
}

// ServeOrDefault returns the serve settings with defaults applied.
func (c *Config) ServeOrDefault() ServeConfig {
	s := ServeConfig{Port: DefaultServePort}
	if c.Serve != nil {
		s = *c.Serve
		if s.Port == 0 {
			s.Port = DefaultServePort
		}
	}
	return s
}
