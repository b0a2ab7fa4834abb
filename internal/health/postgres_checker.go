package health

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// PostgresChecker pings a Postgres database. Wired into readiness only when
// a connection string is configured.
type PostgresChecker struct {
	db *sql.DB
}

func NewPostgresChecker(conn string) (*PostgresChecker, error) {
	db, err := sql.Open("postgres", conn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return &PostgresChecker{db: db}, nil
}

func (c *PostgresChecker) Name() string {
	return "database"
}

func (c *PostgresChecker) Check(ctx context.Context) error {
	if err := c.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

func (c *PostgresChecker) Close() error {
	return c.db.Close()
}
