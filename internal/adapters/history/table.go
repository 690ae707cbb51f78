// Package history provides the table providers that turn a source
// (CSV or XLSX file, HTML page, database ticker) into a FinancialHistory.
package history

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/SscSPs/growth_estimator/internal/apperrors"
	"github.com/SscSPs/growth_estimator/internal/core/domain"
)

// periodHeaders are the header names recognised as the period label column.
var periodHeaders = map[string]bool{"year": true, "period": true, "fiscal year": true, "date": true}

// normalizeHeader lowercases a header and collapses separators so
// "Net_Income", "net income" and "NetIncome" all match.
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
	h = strings.NewReplacer("_", " ", "-", " ").Replace(h)
	return strings.Join(strings.Fields(h), " ")
}

func headerKey(h string) string {
	return strings.ReplaceAll(normalizeHeader(h), " ", "")
}

// columnIndex maps each required column to its position in header.
type columnIndex struct {
	revenue     int
	netIncome   int
	marketShare int
	period      int
	extra       map[string]int
}

func indexColumns(header []string) (*columnIndex, error) {
	idx := &columnIndex{revenue: -1, netIncome: -1, marketShare: -1, period: -1, extra: map[string]int{}}
	for i, h := range header {
		switch key := headerKey(h); {
		case key == headerKey(domain.ColumnRevenue):
			idx.revenue = i
		case key == headerKey(domain.ColumnNetIncome):
			idx.netIncome = i
		case key == headerKey(domain.ColumnMarketShare):
			idx.marketShare = i
		case periodHeaders[normalizeHeader(h)]:
			idx.period = i
		case strings.TrimSpace(h) != "":
			idx.extra[strings.TrimSpace(h)] = i
		}
	}

	positions := map[string]int{
		domain.ColumnRevenue:     idx.revenue,
		domain.ColumnNetIncome:   idx.netIncome,
		domain.ColumnMarketShare: idx.marketShare,
	}
	var missing []string
	for _, name := range domain.RequiredColumns {
		if positions[name] < 0 {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrMissingColumn, strings.Join(missing, ", "))
	}
	return idx, nil
}

var errMissingValue = errors.New("missing value")

// buildHistory converts a header and string cells into a history.
// Blank rows are skipped. Empty cells in the required columns become NaN and
// are only rejected in the first and last row, the only rows the estimator reads.
// Extra columns are kept only when they parse.
func buildHistory(header []string, records [][]string) (*domain.FinancialHistory, error) {
	idx, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	history := &domain.FinancialHistory{}
	for n, rec := range records {
		if isBlank(rec) {
			continue
		}
		row := domain.FinancialRecord{Period: cell(rec, idx.period)}

		if row.Revenue, err = requiredNumber(rec, idx.revenue); err != nil {
			return nil, rowError(n, domain.ColumnRevenue, err)
		}
		if row.NetIncome, err = requiredNumber(rec, idx.netIncome); err != nil {
			return nil, rowError(n, domain.ColumnNetIncome, err)
		}
		if row.MarketShare, err = requiredNumber(rec, idx.marketShare); err != nil {
			return nil, rowError(n, domain.ColumnMarketShare, err)
		}

		for name, i := range idx.extra {
			if v, perr := parseNumber(cell(rec, i)); perr == nil {
				if row.Extra == nil {
					row.Extra = make(map[string]float64)
				}
				row.Extra[name] = v
			}
		}
		history.Rows = append(history.Rows, row)
	}

	if len(history.Rows) == 0 {
		return nil, fmt.Errorf("%w: table has a header but no data rows", apperrors.ErrMissingData)
	}
	if err := history.CheckEndpoints(); err != nil {
		return nil, err
	}
	return history, nil
}

func requiredNumber(rec []string, i int) (float64, error) {
	v, err := parseNumber(cell(rec, i))
	if errors.Is(err, errMissingValue) {
		return math.NaN(), nil
	}
	return v, err
}

func rowError(n int, column string, err error) error {
	return fmt.Errorf("%w: row %d, column %s: %v", apperrors.ErrMissingData, n+1, column, err)
}

func cell(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func isBlank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseNumber accepts plain numbers plus the usual spreadsheet decorations:
// thousands separators, currency symbols, a trailing percent sign and
// accounting-style negatives such as "(1,200)".
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" || strings.EqualFold(s, "n/a") {
		return 0, errMissingValue
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	s = strings.NewReplacer(",", "", "$", "", "€", "", "£", "", "%", "", " ", "", "\u00a0", "").Replace(s)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	if negative {
		v = -v
	}
	return v, nil
}
