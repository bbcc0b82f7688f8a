package commands

import (
	"github.com/spf13/cobra"

	"github.com/haneul-labs/meritboard/internal/server"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the board over a JSON HTTP API",
		Long: `Serve the board over a JSON HTTP API. Periods, records and the
distinct-value listings are exposed under /api. With --watch, edits to the
source file or directory flush the fetch cache so the next request sees
fresh data.`,
		Example: `  meritboard serve --source ./conduct.xlsx --port 8765
  meritboard serve --source ./sheets --source-type csvdir --watch`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			serveCfg := cmdCtx.Cfg.ServeOrDefault()
			srv := server.NewServer(server.Config{
				Board:  cmdCtx.Board,
				Cached: cmdCtx.Cached,
				Port:   serveCfg.Port,
				Watch:  serveCfg.Watch,
				Path:   cmdCtx.Cfg.Source.Path,
				Logger: cmdCtx.Logger,
			})
			return srv.Serve(cmd.Context())
		},
	}

	cmd.Flags().Int("port", 0, "Port to listen on")
	cmd.Flags().Bool("watch", false, "Flush the fetch cache when the source changes")

	return cmd
}
