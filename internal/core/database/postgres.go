package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"carrier-intel/internal/core/config"
	"carrier-intel/internal/core/logger"

	"go.uber.org/zap"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Connect opens a Postgres connection using the pgx stdlib driver and waits
// for the database to become reachable, retrying the ping a bounded number
// of times. The caller owns the returned handle.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)

	const (
		maxRetries = 10
		retryDelay = 2 * time.Second
		pingTTL    = 5 * time.Second
	)

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		pctx, cancel := context.WithTimeout(ctx, pingTTL)
		err = db.PingContext(pctx)
		cancel()
		if err == nil {
			return db, nil
		}

		logger.Get().Warn("Database not reachable yet",
			zap.Int("attempt", attempt),
			zap.Error(err),
		)

		select {
		case <-time.After(retryDelay):
		case <-ctx.Done():
			db.Close()
			return nil, fmt.Errorf("database connect canceled: %w", ctx.Err())
		}
	}

	db.Close()
	return nil, fmt.Errorf("database unreachable after %d attempts: %w", maxRetries, err)
}
