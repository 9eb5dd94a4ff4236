package cli

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/alexanderramin/crewclock/internal/domain"
	"github.com/alexanderramin/crewclock/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Clock   service.ClockService
	Auth    service.AuthService
	Reports service.ReportService
	Admin   service.AdminService
	Export  service.ExportService
	Import  service.ImportService

	Roster   domain.Roster
	Projects []string
	Location *time.Location
	Now      func() time.Time

	// Serve runs the HTTP API on addr until ctx is done.
	Serve func(ctx context.Context, addr string) error
	Addr  string

	// IsInteractive reports whether stdin is a terminal. PIN prompts are
	// only shown when it returns true.
	IsInteractive func() bool
	// PromptPIN asks for a PIN; nil uses the terminal form.
	PromptPIN func(title string) (string, error)
}

// GlobalOptions are the flags main needs before the services exist.
type GlobalOptions struct {
	DBPath     string
	ConfigPath string
	Verbose    bool
}

func (o *GlobalOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.DBPath, "db", o.DBPath, "Path to the punch log database")
	fs.StringVar(&o.ConfigPath, "config", o.ConfigPath, "Path to the crew file")
	fs.BoolVarP(&o.Verbose, "verbose", "v", o.Verbose, "Log debug output to stderr")
}

// ParseGlobalOptions picks the global flags out of args, ignoring every
// other flag and argument.
func ParseGlobalOptions(args []string) (GlobalOptions, error) {
	var opts GlobalOptions
	fs := pflag.NewFlagSet("crewclock", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	opts.AddFlags(fs)
	fs.BoolP("help", "h", false, "")
	if err := fs.Parse(args); err != nil && !errors.Is(err, pflag.ErrHelp) {
		return opts, err
	}
	return opts, nil
}

// NewRootCmd creates the top-level "crewclock" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "crewclock",
		Short:         "Crew time clock and weekly hours",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var globals GlobalOptions
	globals.AddFlags(root.PersistentFlags())

	root.AddCommand(
		newPunchCmd(app),
		newStatusCmd(app),
		newWeekCmd(app),
		newEntriesCmd(app),
		newEventCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newRosterCmd(app),
		newProjectsCmd(app),
		newServeCmd(app),
	)

	return root
}

func (app *App) now() time.Time {
	if app.Now != nil {
		return app.Now()
	}
	return time.Now()
}

func (app *App) location() *time.Location {
	if app.Location != nil {
		return app.Location
	}
	return time.UTC
}
