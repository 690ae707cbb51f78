package history

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/growth_estimator/internal/apperrors"
	"github.com/SscSPs/growth_estimator/internal/core/domain"
	portsrepo "github.com/SscSPs/growth_estimator/internal/core/ports/repositories"
)

// DatabaseScheme prefixes sources read from the financial_history table, e.g. "db://ACME".
const DatabaseScheme = "db://"

// DatabaseReader resolves db://TICKER sources through a HistoryFinder.
type DatabaseReader struct {
	finder portsrepo.HistoryFinder
}

// NewDatabaseReader creates a DatabaseReader.
func NewDatabaseReader(finder portsrepo.HistoryFinder) *DatabaseReader {
	return &DatabaseReader{finder: finder}
}

// LoadHistory reads every stored period of the ticker named by source.
func (r *DatabaseReader) LoadHistory(ctx context.Context, source string) (*domain.FinancialHistory, error) {
	source = strings.TrimSpace(source)
	if len(source) >= len(DatabaseScheme) && strings.EqualFold(source[:len(DatabaseScheme)], DatabaseScheme) {
		source = source[len(DatabaseScheme):]
	}
	ticker := strings.ToUpper(strings.TrimSpace(source))
	if ticker == "" {
		return nil, fmt.Errorf("%w: database source needs a ticker, e.g. db://ACME", apperrors.ErrValidation)
	}
	return r.finder.FindHistoryByTicker(ctx, ticker)
}
