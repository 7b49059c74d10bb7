package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// PoolOptions son los límites del pool; cero usa los defaults.
type PoolOptions struct {
	MaxOpenConns int
	MaxIdleConns int
}

// Open crea el pool a Postgres usando pgx (database/sql). No conecta todavía:
// un servidor caído se ve recién en Now o en la primera query.
func Open(dsn string, opts PoolOptions) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if opts.MaxOpenConns <= 0 {
		opts.MaxOpenConns = 10
	}
	if opts.MaxIdleConns <= 0 {
		opts.MaxIdleConns = 5
	}
	db.SetMaxOpenConns(opts.MaxOpenConns)
	db.SetMaxIdleConns(opts.MaxIdleConns)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// Now verifica la conexión con SELECT NOW() y devuelve la hora del servidor.
func Now(ctx context.Context, db *sql.DB) (time.Time, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var serverNow time.Time
	if err := db.QueryRowContext(ctx, `SELECT NOW()`).Scan(&serverNow); err != nil {
		return time.Time{}, fmt.Errorf("ping postgres: %w", err)
	}
	return serverNow, nil
}
