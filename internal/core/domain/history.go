package domain

import (
	"fmt"
	"math"

	"github.com/SscSPs/growth_estimator/internal/apperrors"
)

// Column names of a financial history table.
const (
	ColumnRevenue     = "Revenue"
	ColumnNetIncome   = "Net Income"
	ColumnMarketShare = "Market Share"
)

// RequiredColumns lists the columns every history table must carry.
var RequiredColumns = []string{ColumnRevenue, ColumnNetIncome, ColumnMarketShare}

// FinancialRecord is one period (row) of a company's financial history.
type FinancialRecord struct {
	Period      string             `json:"period,omitempty"`
	Revenue     float64            `json:"revenue"`
	NetIncome   float64            `json:"netIncome"`
	MarketShare float64            `json:"marketShare"`
	Extra       map[string]float64 `json:"extra,omitempty"` // Columns not used by the estimator
}

// Value returns the named column of the record.
func (r FinancialRecord) Value(name string) (float64, bool) {
	switch name {
	case ColumnRevenue:
		return r.Revenue, true
	case ColumnNetIncome:
		return r.NetIncome, true
	case ColumnMarketShare:
		return r.MarketShare, true
	}
	v, ok := r.Extra[name]
	return v, ok
}

// FinancialHistory is a chronologically ordered table of financial records.
// It is read-only for the estimator and lives for a single estimation.
type FinancialHistory struct {
	Ticker string            `json:"ticker,omitempty"`
	Rows   []FinancialRecord `json:"rows"`
}

// Len returns the number of periods in the history.
func (h FinancialHistory) Len() int {
	return len(h.Rows)
}

// Column extracts the named column in row order.
func (h FinancialHistory) Column(name string) ([]float64, error) {
	if len(h.Rows) == 0 {
		return nil, fmt.Errorf("%w: financial history has no rows", apperrors.ErrMissingData)
	}

	values := make([]float64, len(h.Rows))
	for i, row := range h.Rows {
		v, ok := row.Value(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", apperrors.ErrMissingColumn, name)
		}
		values[i] = v
	}
	return values, nil
}

// CheckEndpoints verifies the history has rows and that the first and last
// rows, the only ones the estimator reads, carry every required value.
// Missing values are represented as NaN.
func (h FinancialHistory) CheckEndpoints() error {
	if len(h.Rows) == 0 {
		return fmt.Errorf("%w: financial history has no rows", apperrors.ErrMissingData)
	}
	for _, row := range []FinancialRecord{h.Rows[0], h.Rows[len(h.Rows)-1]} {
		for _, name := range RequiredColumns {
			if v, _ := row.Value(name); math.IsNaN(v) {
				return fmt.Errorf("%w: period %q is missing %s", apperrors.ErrMissingData, row.Period, name)
			}
		}
	}
	return nil
}
