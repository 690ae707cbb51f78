package history

import (
	"math"
	"testing"

	"github.com/SscSPs/growth_estimator/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"42", 42},
		{" 1,234.5 ", 1234.5},
		{"$1,000", 1000},
		{"€12", 12},
		{"12.5%", 12.5},
		{"(1,200)", -1200},
		{"-3.25", -3.25},
		{"1 000", 1000},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseNumber(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}

	for _, blank := range []string{"", "  ", "-", "N/A"} {
		_, err := parseNumber(blank)
		assert.ErrorIs(t, err, errMissingValue, "input %q", blank)
	}

	_, err := parseNumber("abc")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, errMissingValue)
}

func TestIndexColumns_HeaderVariants(t *testing.T) {
	idx, err := indexColumns([]string{"Fiscal Year", "REVENUE", "net_income", "MarketShare", "Employees"})
	require.NoError(t, err)
	assert.Equal(t, 0, idx.period)
	assert.Equal(t, 1, idx.revenue)
	assert.Equal(t, 2, idx.netIncome)
	assert.Equal(t, 3, idx.marketShare)
	assert.Equal(t, map[string]int{"Employees": 4}, idx.extra)
}

func TestIndexColumns_ByteOrderMark(t *testing.T) {
	idx, err := indexColumns([]string{"\ufeffRevenue", "Net Income", "Market Share"})
	require.NoError(t, err)
	assert.Equal(t, 0, idx.revenue)
}

func TestSplitSheet(t *testing.T) {
	tests := []struct {
		source    string
		wantPath  string
		wantSheet string
	}{
		{"acme.xlsx", "acme.xlsx", ""},
		{"acme.xlsx#Financials", "acme.xlsx", "Financials"},
		{"data/ACME.XLSM#FY 2024", "data/ACME.XLSM", "FY 2024"},
		{"reports#2024/acme.xlsx", "reports#2024/acme.xlsx", ""},
		{"reports#2024/acme.xlsx#P&L", "reports#2024/acme.xlsx", "P&L"},
		{"data/acme#1.xlsx", "data/acme#1.xlsx", ""},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			path, sheet := splitSheet(tt.source)
			assert.Equal(t, tt.wantPath, path)
			assert.Equal(t, tt.wantSheet, sheet)
		})
	}
}

func TestIndexColumns_Missing(t *testing.T) {
	_, err := indexColumns([]string{"Year", "Revenue"})
	require.ErrorIs(t, err, apperrors.ErrMissingColumn)
	assert.Contains(t, err.Error(), "Net Income")
	assert.Contains(t, err.Error(), "Market Share")
}

func TestBuildHistory(t *testing.T) {
	header := []string{"Year", "Revenue", "Net Income", "Market Share", "Notes"}
	records := [][]string{
		{"2021", "100", "10", "0.20", "first"},
		{"", "", "", "", ""},
		{"2022", "", "11", "", "gap"},
		{"2023", "121", "12.1", "0.22", "last"},
	}

	history, err := buildHistory(header, records)
	require.NoError(t, err)
	require.Equal(t, 3, history.Len())
	assert.Equal(t, "2021", history.Rows[0].Period)
	assert.True(t, math.IsNaN(history.Rows[1].Revenue))
	assert.Equal(t, 11.0, history.Rows[1].NetIncome)
	assert.Nil(t, history.Rows[0].Extra, "non-numeric extra columns are dropped")
}

func TestBuildHistory_Errors(t *testing.T) {
	header := []string{"Revenue", "Net Income", "Market Share"}

	_, err := buildHistory(header, nil)
	assert.ErrorIs(t, err, apperrors.ErrMissingData)

	_, err = buildHistory(header, [][]string{{"100", "ten", "0.2"}})
	require.ErrorIs(t, err, apperrors.ErrMissingData)
	assert.Contains(t, err.Error(), "Net Income")

	_, err = buildHistory(header, [][]string{{"100", "10", "0.2"}, {"", "11", "0.3"}})
	assert.ErrorIs(t, err, apperrors.ErrMissingData)
}
