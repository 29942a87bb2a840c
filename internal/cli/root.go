package cli

import (
	"io"
	"os"

	"github.com/alexanderramin/projectionctl/internal/config"
	"github.com/spf13/cobra"
)

// App holds process-level dependencies shared by every command. The
// services themselves are built per command from the resolved config.
type App struct {
	Version string
	Getenv  func(string) string
	Stdin   io.Reader

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool

	cfg config.Config
}

func (a *App) getenv(key string) string {
	if a.Getenv == nil {
		return os.Getenv(key)
	}
	return a.Getenv(key)
}

func (a *App) stdin() io.Reader {
	if a.Stdin == nil {
		return os.Stdin
	}
	return a.Stdin
}

// NewRootCmd creates the top-level "projectionctl" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "projectionctl",
		Short:         "Edit retirement projection documents through MCP tools",
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Resolve(cmd.Flags(), app.getenv)
			if err != nil {
				return err
			}
			app.cfg = cfg
			return nil
		},
	}
	config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		newServeCmd(app),
		newValidateCmd(app),
		newSummaryCmd(app),
		newJournalCmd(app),
	)

	return root
}
