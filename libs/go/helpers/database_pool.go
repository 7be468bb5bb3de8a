package helpers

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/cyphera/cyphera-tax/libs/go/logger"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// PoolConfig tunes the connection pool and the startup ping retry
type PoolConfig struct {
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	PingMaxElapsed  time.Duration
	PingMaxRetries  uint64
}

// DefaultPoolConfig returns the pool settings used by the API
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		MaxConns:        20,
		MinConns:        2,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 15 * time.Minute,
		PingMaxElapsed:  30 * time.Second,
		PingMaxRetries:  5,
	}
}

// pinger is the part of *pgxpool.Pool the startup check needs
type pinger interface {
	Ping(ctx context.Context) error
}

// ConnectPool opens a pool for dsn and waits for the database to answer a ping.
// The DSN is never logged since it carries credentials.
func ConnectPool(ctx context.Context, dsn string, cfg PoolConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, errors.New("unable to parse database DSN")
	}

	poolConfig.MaxConns = cfg.MaxConns
	poolConfig.MinConns = cfg.MinConns
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create connection pool")
	}

	if err := PingWithRetry(ctx, pool, cfg); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// PingWithRetry pings db with exponential backoff until it answers or the retry budget runs out
func PingWithRetry(ctx context.Context, db pinger, cfg PoolConfig) error {
	attempt := 0
	operation := func() error {
		attempt++
		err := db.Ping(ctx)
		if err != nil {
			logger.Warn("Database ping failed", zap.Int("attempt", attempt), zap.Error(err))
		}
		return err
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = 200 * time.Millisecond
	expBackoff.MaxElapsedTime = cfg.PingMaxElapsed

	policy := backoff.WithContext(backoff.WithMaxRetries(expBackoff, cfg.PingMaxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return errors.Wrap(err, "database did not answer ping")
	}
	return nil
}
