// Package db owns the PostgreSQL connection pool and its process lifecycle.
package db

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotInitialized is returned when a session is requested before Init or
// after Teardown.
var ErrNotInitialized = errors.New("platform/db: provider not initialized")

const (
	// poolSize plus poolOverflow bounds the total number of connections.
	poolSize     = 20
	poolOverflow = 10
)

// Provider owns the process-wide connection pool. Exactly one Provider is
// created at startup and torn down at shutdown; every request acquires its
// own short-lived session from it.
type Provider struct {
	mu   sync.Mutex
	pool *pgxpool.Pool
}

// NewProvider returns an uninitialized provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Init creates the connection pool from dsn and verifies connectivity.
// Calling Init on an initialized provider is an error.
func (p *Provider) Init(ctx context.Context, dsn string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pool != nil {
		return errors.New("platform/db: provider already initialized")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return fmt.Errorf("platform/db: parse config: %w", err)
	}
	config.MaxConns = poolSize + poolOverflow
	config.MinConns = 2
	config.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return fmt.Errorf("platform/db: new pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("platform/db: ping: %w", err)
	}

	p.pool = pool
	return nil
}

// Acquire checks out a connection for the duration of one request. The caller
// must Release it on every exit path.
func (p *Provider) Acquire(ctx context.Context) (*pgxpool.Conn, error) {
	p.mu.Lock()
	pool := p.pool
	p.mu.Unlock()

	if pool == nil {
		return nil, ErrNotInitialized
	}
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("platform/db: acquire: %w", err)
	}
	return conn, nil
}

// Pool exposes the underlying pool, or nil when uninitialized.
func (p *Provider) Pool() *pgxpool.Pool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pool
}

// Teardown releases all pooled connections and clears the reference. Safe to
// call on an uninitialized provider.
func (p *Provider) Teardown() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pool != nil {
		p.pool.Close()
		p.pool = nil
	}
}
