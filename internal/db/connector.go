package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vvka-141/fixinsert/internal/retry"
	"github.com/vvka-141/fixinsert/pkg/fixinsert"
)

// Pool configuration for the check command: a handful of catalog queries,
// so one connection is enough.
const (
	DefaultMaxConns = 1
	DefaultMinConns = 0

	// DefaultConnectRetries is the number of retries after the first connection attempt.
	DefaultConnectRetries = 3
)

// Connect opens a pgx pool for config and verifies it with a ping.
// Transient failures (server starting up, connection refused) are retried
// with backoff; each retry is logged at verbose level.
// Failures wrap fixinsert.ErrConnectionFailed with guidance for common causes.
func Connect(ctx context.Context, config *fixinsert.ConnectionConfig, logger fixinsert.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(BuildConnectionString(config))
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection config: %w", fixinsert.ErrInvalidConfig)
	}
	poolConfig.MaxConns = DefaultMaxConns
	poolConfig.MinConns = DefaultMinConns

	executor := retry.NewExecutor(retry.NewConnectionClassifier(), retry.NewExponentialBackoff(DefaultConnectRetries)).
		WithOnRetry(func(attempt int, err error, delay time.Duration) {
			logger.Verbose("Connection attempt %d failed (%v), retrying in %v", attempt+1, err, delay.Round(time.Millisecond))
		})

	var pool *pgxpool.Pool
	err = executor.Execute(ctx, func(ctx context.Context) error {
		p, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			return err
		}
		if err := p.Ping(ctx); err != nil {
			p.Close()
			return err
		}
		pool = p
		return nil
	})
	if err != nil {
		return nil, wrapConnectionError(err, config)
	}
	return pool, nil
}

// wrapConnectionError wraps raw pgx connection errors with actionable guidance.
func wrapConnectionError(err error, config *fixinsert.ConnectionConfig) error {
	errStr := strings.ToLower(err.Error())
	addr := fmt.Sprintf("%s:%d", config.Host, config.Port)

	switch {
	case strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "actively refused"):
		return fmt.Errorf(`%w: connection refused to %s

Possible causes:
  - PostgreSQL is not running (check: pg_isready -h %s -p %d)
  - Wrong host or port

Original error: %v`, fixinsert.ErrConnectionFailed, addr, config.Host, config.Port, err)

	case strings.Contains(errStr, "no such host"):
		return fmt.Errorf(`%w: cannot resolve host "%s"

Original error: %v`, fixinsert.ErrConnectionFailed, config.Host, err)

	case strings.Contains(errStr, "password authentication failed"):
		return fmt.Errorf(`%w: password authentication failed for database "%s"

Possible causes:
  - Wrong password (check $PGPASSWORD, ~/.pgpass or the connection string)
  - Wrong username

Original error: %v`, fixinsert.ErrConnectionFailed, config.Database, err)

	case strings.Contains(errStr, "does not exist"):
		return fmt.Errorf(`%w: database "%s" does not exist

The check command compares against an existing schema; load the DDL first.

Original error: %v`, fixinsert.ErrConnectionFailed, config.Database, err)

	case strings.Contains(errStr, "timeout") || strings.Contains(errStr, "timed out"):
		return fmt.Errorf(`%w: connection timed out to %s

Original error: %v`, fixinsert.ErrConnectionFailed, addr, err)

	default:
		return fmt.Errorf("%w: failed to connect to database: %v", fixinsert.ErrConnectionFailed, err)
	}
}
