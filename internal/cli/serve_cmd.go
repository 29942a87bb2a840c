package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/projectionctl/internal/service"
	"github.com/alexanderramin/projectionctl/internal/tools"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the document tools over MCP on stdin/stdout",
		Long: `Serve speaks the Model Context Protocol on stdin/stdout. Logs go to stderr.
When --file (or the configured document) is set it is loaded before the first request;
otherwise the client must call load_document.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			rt, err := openWiring(app.cfg, cmd.ErrOrStderr(), true)
			if err != nil {
				return err
			}
			defer rt.Close()

			if app.IsInteractive != nil && app.IsInteractive() {
				fmt.Fprintln(cmd.ErrOrStderr(), "projectionctl serve expects an MCP client on stdin; press Ctrl-C to quit.")
			}
			if app.cfg.DocumentPath != "" {
				if _, err := rt.loadDocument(ctx, ""); err != nil {
					return err
				}
			}

			srv := tools.NewServer(rt.services, app.Version, service.NewLogUseCaseObserver(rt.logger))
			rt.logger.InfoContext(ctx, "serving", "tools", len(srv.ToolNames()), "journal", app.cfg.JournalEnabled())
			return srv.ServeStdio(ctx, app.stdin(), cmd.OutOrStdout(), rt.logger)
		},
	}
}
