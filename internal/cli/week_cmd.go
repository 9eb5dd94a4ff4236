package cli

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/crewclock/internal/cli/formatter"
	"github.com/alexanderramin/crewclock/internal/domain"
	"github.com/alexanderramin/crewclock/internal/service"
	"github.com/alexanderramin/crewclock/internal/timesheet"
	"github.com/spf13/cobra"
)

// weekFlags are the report selectors shared by week and entries.
type weekFlags struct {
	week    string
	user    string
	project string
	limit   int
}

func (f *weekFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.week, "week", "", "Week start date YYYY-MM-DD (default: this week's Sunday)")
	cmd.Flags().StringVarP(&f.user, "user", "u", "", `Only this worker ("All" for everyone)`)
	cmd.Flags().StringVarP(&f.project, "project", "p", "", `Only this project ("All" for every project)`)
	cmd.Flags().IntVar(&f.limit, "limit", 0, "Maximum punches listed (default 10)")
}

func (f *weekFlags) request() service.WeekRequest {
	return service.WeekRequest{WeekStart: f.week, Worker: f.user, Project: f.project, Limit: f.limit}
}

func newWeekCmd(app *App) *cobra.Command {
	var flags weekFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show the weekly hours dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Reports.Week(cmd.Context(), flags.request())
			if err != nil {
				return err
			}
			today := app.now().In(app.location()).Format(domain.DateLineLayout)

			if asJSON {
				return writeJSON(cmd, struct {
					*timesheet.Report
					Today string `json:"today"`
				}{report, today})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWeekReport(report, today))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	return cmd
}

func newEntriesCmd(app *App) *cobra.Command {
	var flags weekFlags

	cmd := &cobra.Command{
		Use:   "entries",
		Short: "List the week's punches",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Reports.Week(cmd.Context(), flags.request())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderBox("Punches", formatter.FormatEntries(report.Entries)))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
