package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pg "medications-api/internal/adapters/storage/postgres"
	"medications-api/internal/config"
	"medications-api/internal/platform/logger"
	"medications-api/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openDatabase(ctx, cfg, lg)
	if err != nil {
		lg.Error("invalid DATABASE_URL", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	if db != nil {
		defer db.Close()
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.NewRouter(router.Options{DB: db, Logger: lg}),
		ReadHeaderTimeout: 5 * time.Second,
	}
	if sl, ok := lg.(*logger.SlogLogger); ok {
		srv.ErrorLog = slog.NewLogLogger(sl.Slog().Handler(), slog.LevelError)
	}

	databaseURL := "NÃO CONFIGURADA!"
	if cfg.HasDatabase() {
		databaseURL = "Configurada"
	}
	lg.Info("starting server", map[string]any{"addr": srv.Addr, "database_url": databaseURL})

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			lg.Error("server error", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	case <-ctx.Done():
		lg.Info("shutting down", nil)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error("shutdown error", map[string]any{"error": err.Error()})
	}
}

// openDatabase devuelve nil solo si no hay DATABASE_URL (el router usa el
// store en memoria). Con DSN configurado siempre devuelve el pool, aunque
// Postgres no responda al arrancar: las queries fallan con 500 hasta que vuelva.
func openDatabase(ctx context.Context, cfg *config.Config, lg logger.Logger) (*sql.DB, error) {
	if !cfg.HasDatabase() {
		lg.Warn("DATABASE_URL not set, using in-memory store", nil)
		return nil, nil
	}

	if cfg.AutoMigrate {
		if err := pg.Migrate(cfg.DatabaseURL); err != nil {
			lg.Error("migrations failed", map[string]any{"error": err.Error()})
		}
	}

	db, err := pg.Open(cfg.DatabaseURL, pg.PoolOptions{
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
	})
	if err != nil {
		return nil, err
	}

	serverNow, err := pg.Now(ctx, db)
	if err != nil {
		lg.Error("postgres unavailable", map[string]any{"error": err.Error()})
		return db, nil
	}

	lg.Info("postgres connected", map[string]any{"server_time": serverNow.Format(time.RFC3339)})
	return db, nil
}
