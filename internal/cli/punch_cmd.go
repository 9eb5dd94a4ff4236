package cli

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/alexanderramin/crewclock/internal/cli/formatter"
	"github.com/alexanderramin/crewclock/internal/domain"
	"github.com/alexanderramin/crewclock/internal/service"
	"github.com/spf13/cobra"
)

func newPunchCmd(app *App) *cobra.Command {
	var worker, pin, project, note, photo string

	cmd := &cobra.Command{
		Use:       "punch <in|out>",
		Short:     "Clock a worker in or out",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(domain.ActionIn), string(domain.ActionOut)},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := domain.CanonicalWorker(worker)

			secret, err := app.resolvePIN(pin, fmt.Sprintf("PIN for %s", name))
			if err != nil {
				return err
			}

			req := service.PunchRequest{
				Worker:  name,
				PIN:     secret,
				Action:  args[0],
				Project: project,
				Note:    note,
			}
			if photo != "" {
				f, err := os.Open(photo)
				if err != nil {
					return fmt.Errorf("opening photo: %w", err)
				}
				defer f.Close()
				req.Photo = f
				req.PhotoContentType = mime.TypeByExtension(filepath.Ext(photo))
			}

			ev, err := app.Clock.Punch(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPunch(ev))
			return nil
		},
	}

	cmd.Flags().StringVarP(&worker, "worker", "w", "", "Worker name from the roster")
	cmd.Flags().StringVar(&pin, "pin", "", "Worker PIN (prompted on a terminal when omitted)")
	cmd.Flags().StringVarP(&project, "project", "p", "", "Project the time is for")
	cmd.Flags().StringVarP(&note, "note", "n", "", "Tasks worked on")
	cmd.Flags().StringVar(&photo, "photo", "", "Path to a job-site photo")
	_ = cmd.MarkFlagRequired("worker")

	return cmd
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status <worker>",
		Short: "Show whether a worker is clocked in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			last, err := app.Clock.Status(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStatus(domain.CanonicalWorker(args[0]), last))
			return nil
		},
	}
}
