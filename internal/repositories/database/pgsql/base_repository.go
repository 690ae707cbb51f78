package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Querier is the read side of *pgxpool.Pool that the repositories use.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB Querier
}
