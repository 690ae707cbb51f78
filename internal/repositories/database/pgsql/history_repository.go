package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/growth_estimator/internal/apperrors"
	"github.com/SscSPs/growth_estimator/internal/core/domain"
	portsrepo "github.com/SscSPs/growth_estimator/internal/core/ports/repositories"
	"github.com/SscSPs/growth_estimator/internal/models"
	"github.com/SscSPs/growth_estimator/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

// PgxHistoryRepository reads stored financial history. Estimates are never written back.
type PgxHistoryRepository struct {
	BaseRepository
}

// newPgxHistoryRepository creates a new repository for financial history data.
func newPgxHistoryRepository(db Querier) *PgxHistoryRepository {
	return &PgxHistoryRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// Ensure implementation matches interface
var _ portsrepo.HistoryFinder = (*PgxHistoryRepository)(nil)

// FindHistoryByTicker retrieves every stored period of ticker, oldest first.
func (r *PgxHistoryRepository) FindHistoryByTicker(ctx context.Context, ticker string) (*domain.FinancialHistory, error) {
	query := `
		SELECT ticker, period, period_order, revenue, net_income, market_share, created_at
		FROM financial_history
		WHERE ticker = $1
		ORDER BY period_order, period;
	`
	rows, err := r.DB.Query(ctx, query, ticker)
	if err != nil {
		return nil, fmt.Errorf("failed to query financial history for %s: %w", ticker, err)
	}
	defer rows.Close()

	modelRows, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.FinancialHistoryRow, error) {
		var m models.FinancialHistoryRow
		err := row.Scan(
			&m.Ticker,
			&m.Period,
			&m.PeriodOrder,
			&m.Revenue,
			&m.NetIncome,
			&m.MarketShare,
			&m.CreatedAt,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan financial history for %s: %w", ticker, err)
	}
	if len(modelRows) == 0 {
		return nil, fmt.Errorf("%w: no financial history for ticker %s", apperrors.ErrNotFound, ticker)
	}

	history := mapping.ToDomainFinancialHistory(ticker, modelRows)
	if err := history.CheckEndpoints(); err != nil {
		return nil, err
	}
	return &history, nil
}
