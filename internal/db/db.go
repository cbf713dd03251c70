package db

import (
	"context"
	"fmt"
	"time"

	"educator-site/internal/event"

	"github.com/jackc/pgx/v5/pgxpool"
)

var log = event.Log

var Pool *pgxpool.Pool

// InitDB initializes the PostgreSQL connection pool. ctx bounds the initial ping.
func InitDB(ctx context.Context, connString string) error {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return fmt.Errorf("unable to parse connection string: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	Pool, err = pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return fmt.Errorf("unable to create connection pool: %w", err)
	}

	// Test connection
	if err := Pool.Ping(ctx); err != nil {
		return fmt.Errorf("unable to ping database: %w", err)
	}

	log.Infof("db: connected to postgres %s/%s", config.ConnConfig.Host, config.ConnConfig.Database)
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS gallery_photos (
	id            SERIAL PRIMARY KEY,
	title         TEXT NOT NULL,
	image_url     TEXT NOT NULL,
	storage_key   TEXT,
	display_order INTEGER NOT NULL DEFAULT 0,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
ALTER TABLE gallery_photos ADD COLUMN IF NOT EXISTS storage_key TEXT;
CREATE INDEX IF NOT EXISTS gallery_photos_order_idx ON gallery_photos (display_order DESC, created_at DESC);
`

// Migrate creates the gallery schema if it does not exist yet.
func Migrate(ctx context.Context) error {
	if _, err := Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("unable to migrate schema: %w", err)
	}
	return nil
}

// CloseDB closes the database connection pool
func CloseDB() {
	if Pool != nil {
		Pool.Close()
	}
}
