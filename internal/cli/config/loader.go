package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config file names, in lookup order.
const (
	ConfigFileName    = "meritboard.yaml"
	ConfigFileNameAlt = "meritboard.yml"
)

// loggerKey is used to store the logger in the command context.
type loggerKey struct{}

var (
	configFileUsed string
	currentConfig  *Config // Stores the loaded config for access by commands
)

// findConfigFile finds the config file to use.
// Priority: explicit path > meritboard.yaml > meritboard.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{ConfigFileName, ConfigFileNameAlt} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// flagKey maps a CLI flag name onto its config key. The CLI uses short
// flag names for ergonomics; the config tree is nested.
func flagKey(name string) string {
	switch name {
	case "source":
		return "source.path"
	case "source-type":
		return "source.type"
	case "cache-seconds":
		return "source.cache_seconds"
	case "port":
		return "serve.port"
	case "watch":
		return "serve.watch"
	default:
		return strings.ReplaceAll(name, "-", "_")
	}
}

// LoadConfig loads configuration from file, environment variables, and
// flags. Environment variables use the MERITBOARD_ prefix with "__" as the
// nesting separator (MERITBOARD_SOURCE__PATH -> source.path).
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults.
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"source.type":          DefaultSourceType,
		"source.cache_seconds": DefaultCacheSeconds,
		"serve.port":           DefaultServePort,
		"verbose":              false,
		"output":               DefaultOutput,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file.
	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 3. Environment variables.
	if err := k.Load(env.Provider("MERITBOARD_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "MERITBOARD_"))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags (highest priority).
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return flagKey(f.Name), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if cfg.Source == nil {
		cfg.Source = &SourceConfig{Type: DefaultSourceType, CacheSeconds: DefaultCacheSeconds}
	}

	currentConfig = &cfg
	return &cfg, nil
}

// GetCurrentConfig returns the most recently loaded configuration, or a
// default one when LoadConfig has not run.
func GetCurrentConfig() *Config {
	if currentConfig != nil {
		return currentConfig
	}
	return &Config{
		Source:       &SourceConfig{Type: DefaultSourceType, CacheSeconds: DefaultCacheSeconds},
		OutputFormat: DefaultOutput,
	}
}

// GetConfigFileUsed returns the path to the config file being used, if any.
func GetConfigFileUsed() string {
	return configFileUsed
}

// LoggerKey returns the context key used for storing the logger, shared
// between the cli and commands packages without an import cycle.
func LoggerKey() interface{} {
	return loggerKey{}
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	// Discard logger as safe fallback.
	return slog.New(slog.DiscardHandler)
}
