// Command sitegen writes the Hevin Design landing page to a file.
//
// Run with no arguments it emits the embedded page to index.html and prints
// one confirmation line.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/hevindesign/sitegen/internal/config"
	"github.com/hevindesign/sitegen/internal/database"
	"github.com/hevindesign/sitegen/internal/domain"
	"github.com/hevindesign/sitegen/internal/emitter"
	"github.com/hevindesign/sitegen/internal/handler"
	"github.com/hevindesign/sitegen/internal/logger"
	"github.com/hevindesign/sitegen/internal/repository"
	"github.com/hevindesign/sitegen/internal/service"
)

func main() {
	app := &cli.App{
		Name:  "sitegen",
		Usage: "Write the landing page to a file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "database-url",
				Aliases: []string{"d"},
				Value:   config.DefaultDatabaseURL,
				Usage:   "PostgreSQL URL for the emission ledger (disabled when empty)",
				EnvVars: []string{"DATABASE_URL"},
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML site file (output, parts)",
				EnvVars: []string{"SITEGEN_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Destination path (overrides the site file)",
				EnvVars: []string{"SITEGEN_OUTPUT"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.Setup(os.Stderr, logger.ParseLevel(c.String("log-level")))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "emit",
				Usage:  "Write the page to the destination path",
				Action: runEmit,
			},
			{
				Name:  "serve",
				Usage: "Preview the output directory over HTTP",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "port",
						Aliases: []string{"p"},
						Value:   config.DefaultPort,
						Usage:   "HTTP server port",
						EnvVars: []string{"PORT"},
					},
					&cli.StringFlag{
						Name:  "dir",
						Usage: "Directory to serve (defaults to the output's directory)",
					},
				},
				Action: runServe,
			},
			{
				Name:  "history",
				Usage: "List recorded emissions",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Value:   config.DefaultHistoryLimit,
						Usage:   "Number of emissions to list",
					},
				},
				Action: runHistory,
			},
		},
		Action: runEmit,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

// loadSite builds the site from the optional config file and output flag.
func loadSite(c *cli.Context) (*config.Site, error) {
	site := config.DefaultSite()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadSite(path)
		if err != nil {
			return nil, err
		}
		site = loaded
	}

	if output := c.String("output"); output != "" {
		site.Output = output
	}

	return site, site.Validate()
}

// openLedger connects to the ledger database and applies migrations.
func openLedger(ctx context.Context, databaseURL string) (*database.DB, error) {
	db, err := database.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.RunMigrations(ctx, db.Pool()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func runEmit(c *cli.Context) error {
	ctx := c.Context

	site, err := loadSite(c)
	if err != nil {
		return err
	}

	var ledger service.Ledger
	if databaseURL := c.String("database-url"); databaseURL != "" {
		db, err := openLedger(ctx, databaseURL)
		if err != nil {
			return err
		}
		defer db.Close()

		ledger = repository.NewEmissionRepository(db.Pool())
	}

	svc := service.NewEmitService(emitter.New(os.Stdout), ledger)

	if _, err := svc.Emit(ctx, site); err != nil {
		return fmt.Errorf("emit %s: %w", site.Output, err)
	}

	return nil
}

func runServe(c *cli.Context) error {
	ctx := c.Context

	port := c.String("port")
	if port == "" {
		port = config.DefaultPort
	}

	dir := c.String("dir")
	if dir == "" {
		site, err := loadSite(c)
		if err != nil {
			return err
		}
		dir = filepath.Dir(site.Output)
	}

	var store handler.EmissionStore
	if databaseURL := c.String("database-url"); databaseURL != "" {
		db, err := openLedger(ctx, databaseURL)
		if err != nil {
			return err
		}
		defer db.Close()

		store = repository.NewEmissionRepository(db.Pool())
	}

	h := handler.New(dir, store)

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           h.Routes(),
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting preview server", "server_addr", "http://localhost:"+port, "dir", dir)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-done:
		slog.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

func runHistory(c *cli.Context) error {
	ctx := c.Context

	databaseURL := c.String("database-url")
	if databaseURL == "" {
		return fmt.Errorf("history: %w (set --database-url or DATABASE_URL)", domain.ErrLedgerDisabled)
	}

	limit := c.Int("limit")
	if limit <= 0 {
		return fmt.Errorf("history: limit must be positive, got %d", limit)
	}

	db, err := openLedger(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	emissions, err := repository.NewEmissionRepository(db.Pool()).List(ctx, limit)
	if err != nil {
		return fmt.Errorf("list emissions: %w", err)
	}

	for _, e := range emissions {
		fmt.Fprintf(c.App.Writer, "%s  %s  %8d bytes  %.12s  %s\n",
			e.EmittedAt.Format(time.RFC3339), e.ID, e.Bytes, e.SHA256, e.Destination)
	}

	return nil
}
