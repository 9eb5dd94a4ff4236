package cli

import (
	"fmt"

	"github.com/alexanderramin/crewclock/internal/cli/formatter"
	"github.com/alexanderramin/crewclock/internal/service"
	"github.com/spf13/cobra"
)

func newEventCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Correct the punch log (admin)",
	}

	cmd.AddCommand(
		newEventRemoveCmd(app),
		newEventRemoveAtCmd(app),
		newEventEditCmd(app),
	)

	return cmd
}

func newEventRemoveCmd(app *App) *cobra.Command {
	var pin string

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete one punch by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			actor, err := app.adminActor(ctx, pin)
			if err != nil {
				return err
			}
			if err := app.Admin.Delete(ctx, actor, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted punch %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&pin, "pin", "", "Admin PIN")
	return cmd
}

func newEventRemoveAtCmd(app *App) *cobra.Command {
	var pin string

	cmd := &cobra.Command{
		Use:   "rm-at <timestamp>",
		Short: "Delete every punch stored with exactly this timestamp",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			actor, err := app.adminActor(ctx, pin)
			if err != nil {
				return err
			}
			n, err := app.Admin.DeleteAt(ctx, actor, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d punch(es) at %s\n", n, args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&pin, "pin", "", "Admin PIN")
	return cmd
}

func newEventEditCmd(app *App) *cobra.Command {
	var pin, action, project, note, timestamp string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of one punch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			edit := service.EventEdit{ID: args[0]}
			flags := cmd.Flags()
			if flags.Changed("action") {
				edit.Action = &action
			}
			if flags.Changed("project") {
				edit.Project = &project
			}
			if flags.Changed("note") {
				edit.Note = &note
			}
			if flags.Changed("timestamp") {
				edit.Timestamp = &timestamp
			}
			if edit.Action == nil && edit.Project == nil && edit.Note == nil && edit.Timestamp == nil {
				return fmt.Errorf("nothing to change: set at least one of --action, --project, --note, --timestamp")
			}

			actor, err := app.adminActor(ctx, pin)
			if err != nil {
				return err
			}
			ev, err := app.Admin.Edit(ctx, actor, edit)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated punch %s: %s %s at %s on %s\n",
				formatter.TruncID(ev.SourceID), ev.Worker, ev.Action, ev.Timestamp, formatter.Placeholder(ev.Project))
			return nil
		},
	}

	cmd.Flags().StringVar(&pin, "pin", "", "Admin PIN")
	cmd.Flags().StringVar(&action, "action", "", "New action (in or out)")
	cmd.Flags().StringVar(&project, "project", "", "New project")
	cmd.Flags().StringVar(&note, "note", "", "New tasks note")
	cmd.Flags().StringVar(&timestamp, "timestamp", "", "New time, e.g. 2025-10-06 08:00")
	return cmd
}
