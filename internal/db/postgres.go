package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	defaultMaxOpenConns = 25
	defaultMaxIdleConns = 5
	defaultConnLifetime = time.Hour
	defaultConnIdleTime = 30 * time.Minute
)

// NewPostgres creates a pgx/stdlib backed *sql.DB pool. The connection is not
// validated here; sql.Open is lazy and the readiness probe reports the real
// state on each request.
func NewPostgres(dsn string) (*sql.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("db: empty DSN")
	}

	pool, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	pool.SetMaxOpenConns(defaultMaxOpenConns)
	pool.SetMaxIdleConns(defaultMaxIdleConns)
	pool.SetConnMaxLifetime(defaultConnLifetime)
	pool.SetConnMaxIdleTime(defaultConnIdleTime)

	return pool, nil
}

// Probe adapts a *sql.DB to the readiness probe interface.
type Probe struct {
	pool    *sql.DB
	timeout time.Duration
}

// NewProbe wraps the pool with a per-ping timeout.
func NewProbe(pool *sql.DB, timeout time.Duration) *Probe {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Probe{pool: pool, timeout: timeout}
}

// Name identifies this probe on the readiness endpoint.
func (p *Probe) Name() string {
	return "postgres"
}

// Ping checks database connectivity.
func (p *Probe) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	return p.pool.PingContext(ctx)
}
