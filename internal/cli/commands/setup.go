// Package commands implements the meritboard CLI subcommands.
package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/haneul-labs/meritboard/internal/board"
	"github.com/haneul-labs/meritboard/internal/cli/config"
	"github.com/haneul-labs/meritboard/internal/cli/output"
	"github.com/haneul-labs/meritboard/internal/source"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Board    *board.Board
	Cached   *source.Cached
	Renderer *output.Renderer
}

// NewCommandContext wires a board over the configured source for commands
// that fetch data.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	if err := cfg.ValidateSourcePath(); err != nil {
		return nil, err
	}

	backend, err := buildSource(cfg, logger)
	if err != nil {
		return nil, err
	}
	cached := source.NewCached(backend, cfg.Source.CacheTTL(), logger)

	b, err := board.New(board.Config{
		Source: cached,
		Schema: cfg.SchemaOrDefault(),
		Logger: logger,
	})
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Board:    b,
		Cached:   cached,
		Renderer: newRenderer(cmd, cfg),
	}, nil
}

// NewCommandContextWithoutSource serves commands that never fetch data.
func NewCommandContextWithoutSource(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Renderer: newRenderer(cmd, cfg),
	}
}

func getConfig() *config.Config {
	return config.GetCurrentConfig()
}

func newRenderer(cmd *cobra.Command, cfg *config.Config) *output.Renderer {
	return output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))
}

func buildSource(cfg *config.Config, logger *slog.Logger) (source.Source, error) {
	switch cfg.Source.Type {
	case config.SourceCSVDir:
		return source.NewCSVDir(cfg.Source.Path, logger), nil
	case config.SourceWorkbook:
		return source.NewWorkbook(cfg.Source.Path, logger), nil
	default:
		return nil, fmt.Errorf("unknown source type %q", cfg.Source.Type)
	}
}
