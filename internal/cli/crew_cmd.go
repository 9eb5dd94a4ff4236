package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/crewclock/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newRosterCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "roster",
		Short: "List the crew",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(app.Roster.Members))
			for _, m := range app.Roster.Members {
				role := "worker"
				if m.Admin {
					role = formatter.StyleYellow.Render("admin")
				}
				rows = append(rows, []string{m.Name, role})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"NAME", "ROLE"}, rows))
			return nil
		},
	}
}

func newProjectsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "List active projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(app.Projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No active projects."))
				return nil
			}
			for _, p := range app.Projects {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
}

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the punch and dashboard HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Serve == nil {
				return fmt.Errorf("http server is not configured")
			}
			if addr == "" {
				addr = app.Addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.OutOrStdout(), "Listening on %s\n", addr)
			return app.Serve(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from the crew file)")
	return cmd
}
