package repositories

import (
	"context"

	"github.com/SscSPs/growth_estimator/internal/core/domain"
)

// HistoryReader supplies a financial history table from some source
// (a local file, a download or a database).
// Implementations return rows in chronological order and fail with
// apperrors.ErrMissingColumn when a required column is absent.
type HistoryReader interface {
	// LoadHistory reads the history identified by source.
	LoadHistory(ctx context.Context, source string) (*domain.FinancialHistory, error)
}

// HistoryFinder reads stored history by ticker.
type HistoryFinder interface {
	// FindHistoryByTicker returns every stored period for ticker, oldest first.
	FindHistoryByTicker(ctx context.Context, ticker string) (*domain.FinancialHistory, error)
}
