package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/projectionctl/internal/cli/formatter"
	"github.com/alexanderramin/projectionctl/internal/contract"
	"github.com/spf13/cobra"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newValidateCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Audit a projection document without changing it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openWiring(app.cfg, cmd.ErrOrStderr(), false)
			if err != nil {
				return err
			}
			defer rt.Close()

			path, err := rt.loadDocument(cmd.Context(), firstArg(args))
			if err != nil {
				return err
			}
			report, err := rt.services.Documents.Validate(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				err = writeJSON(cmd.OutOrStdout(), report)
			} else {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatValidation(path, report))
			}
			if err != nil {
				return err
			}
			if !report.Valid {
				return fmt.Errorf("%s: %d problem(s) found", path, len(report.Problems))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	return cmd
}

func newSummaryCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "summary [file]",
		Short: "Show balances, net worth and plans of a document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openWiring(app.cfg, cmd.ErrOrStderr(), false)
			if err != nil {
				return err
			}
			defer rt.Close()

			if _, err := rt.loadDocument(cmd.Context(), firstArg(args)); err != nil {
				return err
			}
			summary, err := rt.services.Documents.Summary(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), summary)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSummary(summary))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the summary as JSON")
	return cmd
}

func newJournalCmd(app *App) *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "List recent document changes made through the tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !app.cfg.JournalEnabled() {
				return fmt.Errorf("the change journal is disabled; set --journal to a database path")
			}
			rt, err := openWiring(app.cfg, cmd.ErrOrStderr(), true)
			if err != nil {
				return err
			}
			defer rt.Close()

			records, err := rt.services.Journal.Recent(cmd.Context(), contract.RecentChangesRequest{Limit: limit})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), records)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), formatter.FormatJournal(records, time.Now()))
			return err
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of entries")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print entries as JSON")
	return cmd
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
