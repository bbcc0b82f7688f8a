package config

import "fmt"

// Validate checks settings every command relies on. Source path existence
// is checked lazily by the backend so help-style commands work anywhere.
func (c *Config) Validate() error {
	if c.Source == nil {
		return fmt.Errorf("source configuration is required")
	}
	switch c.Source.Type {
	case SourceWorkbook, SourceCSVDir:
	default:
		return fmt.Errorf("unknown source type %q (expected %s or %s)",
			c.Source.Type, SourceWorkbook, SourceCSVDir)
	}
	return nil
}

// ValidateSourcePath checks that a source path was configured. Commands
// that fetch data call this before building a source.
func (c *Config) ValidateSourcePath() error {
	if c.Source == nil || c.Source.Path == "" {
		return fmt.Errorf("source path is required\nHint: set source.path in %s or use --source", ConfigFileName)
	}
	return nil
}
