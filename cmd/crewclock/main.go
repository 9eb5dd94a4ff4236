package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alexanderramin/crewclock/internal/cli"
	"github.com/alexanderramin/crewclock/internal/config"
	"github.com/alexanderramin/crewclock/internal/db"
	"github.com/alexanderramin/crewclock/internal/httpapi"
	"github.com/alexanderramin/crewclock/internal/photostore"
	"github.com/alexanderramin/crewclock/internal/repository"
	"github.com/alexanderramin/crewclock/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	opts, err := cli.ParseGlobalOptions(os.Args[1:])
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if opts.ConfigPath != "" {
		os.Setenv("CREWCLOCK_CONFIG", opts.ConfigPath)
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// DB path: flag, crew file or env, default ~/.crewclock/crewclock.db
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = cfg.DBPath
	}
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".crewclock", "crewclock.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	photos, err := openPhotoStore(ctx, cfg)
	if err != nil {
		return err
	}

	var observers []service.UseCaseObserver
	if opts.Verbose {
		observers = append(observers, service.NewSlogUseCaseObserver(logger))
	}

	events := repository.NewSQLiteEventRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)
	roster := cfg.Roster()
	loc := cfg.Location()

	app := &cli.App{
		Clock: service.NewClockService(events, photos, roster, loc, nil, observers...),
		Auth:  service.NewAuthService(roster, observers...),
		Reports: service.NewReportService(events, service.ReportSettings{
			Roster:         roster,
			Location:       loc,
			CapacityHours:  cfg.WeeklyCapacityHours,
			DefaultLimit:   cfg.DefaultLimit,
			WarnOnDoubleIn: cfg.WarnOnDoubleIn,
			Logger:         logger,
		}, observers...),
		Admin:    service.NewAdminService(events, roster, loc, observers...),
		Export:   service.NewExportService(events, observers...),
		Import:   service.NewImportService(uow, nil, observers...),
		Roster:   roster,
		Projects: cfg.ActiveProjects(),
		Location: loc,
		Addr:     cfg.Addr,
	}

	app.Serve = func(ctx context.Context, addr string) error {
		if cfg.JWTSecret == "" {
			return errors.New("jwt_secret (or CREWCLOCK_JWT_SECRET) must be set to serve the dashboard")
		}
		if !opts.Verbose {
			gin.SetMode(gin.ReleaseMode)
		}
		router := httpapi.NewRouter(httpapi.Deps{
			Clock:     app.Clock,
			Auth:      app.Auth,
			Reports:   app.Reports,
			Admin:     app.Admin,
			Export:    app.Export,
			Photos:    photos,
			Tokens:    httpapi.NewTokenService(cfg.JWTSecret),
			Projects:  app.Projects,
			AllowedIP: cfg.AllowedIP,
			Location:  loc,
			Logger:    logger,
		})
		return httpapi.Serve(ctx, addr, router)
	}

	// Detect interactive terminal for PIN prompts.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}

// openPhotoStore uses the configured bucket, or the local photo directory
// when no bucket is set.
func openPhotoStore(ctx context.Context, cfg *config.Config) (photostore.Store, error) {
	if cfg.S3.Bucket == "" {
		store, err := photostore.NewLocalStore(cfg.PhotoDir)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
	client, err := photostore.NewS3Client(ctx, photostore.S3Options{
		Bucket:          cfg.S3.Bucket,
		Region:          cfg.S3.Region,
		Endpoint:        cfg.S3.Endpoint,
		AccessKeyID:     cfg.S3.AccessKeyID,
		SecretAccessKey: cfg.S3.SecretAccessKey,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting photo bucket: %w", err)
	}
	return photostore.NewS3Store(client, cfg.S3.Bucket, ""), nil
}
