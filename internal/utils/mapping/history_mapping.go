package mapping

import (
	"math"

	"github.com/SscSPs/growth_estimator/internal/core/domain"
	"github.com/SscSPs/growth_estimator/internal/models"
)

// ToDomainFinancialRecord converts a stored row to a domain record.
// NULL figures become NaN.
func ToDomainFinancialRecord(m models.FinancialHistoryRow) domain.FinancialRecord {
	return domain.FinancialRecord{
		Period:      m.Period,
		Revenue:     nullableToNaN(m.Revenue),
		NetIncome:   nullableToNaN(m.NetIncome),
		MarketShare: nullableToNaN(m.MarketShare),
	}
}

// ToDomainFinancialHistory converts ordered rows of one ticker to a history.
func ToDomainFinancialHistory(ticker string, ms []models.FinancialHistoryRow) domain.FinancialHistory {
	rows := make([]domain.FinancialRecord, len(ms))
	for i, m := range ms {
		rows[i] = ToDomainFinancialRecord(m)
	}
	return domain.FinancialHistory{Ticker: ticker, Rows: rows}
}

func nullableToNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}
