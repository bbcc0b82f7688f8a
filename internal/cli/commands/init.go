package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/haneul-labs/meritboard/internal/cli/config"
	"github.com/haneul-labs/meritboard/pkg/conduct"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter meritboard.yaml in the current directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContextWithoutSource(cmd)

			if _, err := os.Stat(config.ConfigFileName); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", config.ConfigFileName)
			}

			schema := conduct.DefaultSchema()
			starter := map[string]any{
				"source": map[string]any{
					"type":          config.DefaultSourceType,
					"path":          "conduct.xlsx",
					"cache_seconds": config.DefaultCacheSeconds,
				},
				"schema": map[string]any{
					"date_column":     schema.DateColumn,
					"id_column":       schema.IDColumn,
					"group_columns":   schema.GroupColumns,
					"display_columns": schema.DisplayColumns,
					"time_column":     schema.TimeColumn,
					"morning_label":   schema.MorningLabel,
					"period_unit":     schema.PeriodUnit,
				},
				"serve": map[string]any{
					"port": config.DefaultServePort,
				},
			}

			data, err := yaml.Marshal(starter)
			if err != nil {
				return fmt.Errorf("failed to render config: %w", err)
			}
			if err := os.WriteFile(config.ConfigFileName, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", config.ConfigFileName, err)
			}

			cmdCtx.Renderer.Textf("wrote %s\n", config.ConfigFileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}
