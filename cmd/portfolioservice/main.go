package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"portfolio-api/internal/chat"
	"portfolio-api/internal/config"
	"portfolio-api/internal/portfolio"
	"portfolio-api/internal/server"
	"portfolio-api/internal/status"

	"github.com/spf13/cobra"
)

// main is the entry point for the portfolio API service.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		envFile    string
	)

	cmd := &cobra.Command{
		Use:           "portfolioservice",
		Short:         "Backend API for the portfolio website",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := run(ctx, configPath, envFile); err != nil {
				slog.Error("service stopped with error", "err", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Config file path (yaml, toml or json)")
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "Dotenv file to load before reading the environment")

	return cmd
}

func run(ctx context.Context, configPath, envFile string) error {
	// ---- Configuration ----
	if err := config.LoadEnvFile(envFile); err != nil {
		return err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Log)
	slog.SetDefault(logger)
	for _, warning := range cfg.Validate() {
		logger.Warn("config warning", "warning", warning)
	}

	// ---- Catalog storage ----
	repo, closeRepo, err := newCatalogRepository(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	// ---- Services and handlers ----
	chatHandler := chat.NewHandler(chat.NewService())
	portfolioHandler := portfolio.NewHandler(portfolio.NewService(repo))
	statusHandler := status.NewHandler(cfg.ServiceName)

	router := server.NewRouter(cfg.AllowedOrigin, logger, statusHandler, chatHandler, portfolioHandler)

	return server.New(cfg.Addr(), router, logger, cfg.ShutdownTimeout).Run(ctx)
}

// newCatalogRepository picks the database backed catalog when a connection
// string is configured and the built-in catalog otherwise.
func newCatalogRepository(ctx context.Context, connStr string, logger *slog.Logger) (portfolio.Repository, func(), error) {
	if connStr == "" {
		logger.Info("serving built-in catalog")
		return portfolio.NewStaticRepository(), func() {}, nil
	}

	db, err := connectDB(ctx, connStr)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to database: %w", err)
	}
	logger.Info("database connected, serving catalog from postgres")

	return portfolio.NewPostgresRepository(db), func() { db.Close() }, nil
}

// connectDB is a helper to open and verify the database connection.
func connectDB(ctx context.Context, connStr string) (*sql.DB, error) {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, err
	}
	// PingContext ensures the connection is actually valid.
	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// newLogger builds the process logger from the log section of the config.
func newLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
