package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/priyasinghal/skillpath/internal/api"
	"github.com/priyasinghal/skillpath/internal/catalog"
	"github.com/priyasinghal/skillpath/internal/coach"
	"github.com/priyasinghal/skillpath/internal/config"
	"github.com/priyasinghal/skillpath/internal/db"
	"github.com/priyasinghal/skillpath/internal/llm"
	"github.com/priyasinghal/skillpath/internal/repository"
	"github.com/priyasinghal/skillpath/internal/roadmap"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func serve() error {
	logger := newLogger()
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Info("starting server", "port", cfg.Port, "dev", cfg.Dev)

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer database.Close()
	logger.Info("database ready", "path", cfg.DBPath)

	// The catalog is loaded once and read-only afterwards; a missing or
	// corrupt file degrades to the matcher's built-in fallback list.
	resources := catalog.Load(cfg.CatalogPath, logger)
	generator := roadmap.NewGenerator(catalog.NewMatcher(resources))

	llmCfg := llm.LoadConfig()
	var model coach.Responder
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		model = coach.NewModelResponder(llm.NewGeminiClient(llmCfg, observer))
		logger.Info("external model enabled", "model", llmCfg.Model)
	} else {
		logger.Info("external model disabled, rule-based coach only")
	}

	coachSvc := coach.NewService(model, coach.NewRuleResponder(), generator, logger)
	handler := api.NewHandler(database, coachSvc, cfg.SessionTTL, cfg.Dev, logger)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))
	handler.RegisterRoutes(r)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startSessionSweeper(ctx, database, logger)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	logger.Info("listening", "addr", srv.Addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// startSessionSweeper periodically removes expired login sessions.
func startSessionSweeper(ctx context.Context, database *sql.DB, logger *slog.Logger) {
	sessions := repository.NewSQLiteAuthSessionRepo(database)
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := sessions.DeleteExpired(ctx, time.Now().UTC())
				if err != nil {
					logger.Warn("sweeping expired auth sessions", "error", err)
					continue
				}
				if n > 0 {
					logger.Info("expired auth sessions removed", "count", n)
				}
			}
		}
	}()
}

func newLogger() *slog.Logger {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
