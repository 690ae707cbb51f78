package pgsql

import (
	portsrepo "github.com/SscSPs/growth_estimator/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the PostgreSQL repositories. db is usually a *pgxpool.Pool.
func NewRepositoryProvider(db Querier) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		HistoryFinder: newPgxHistoryRepository(db),
	}
}
