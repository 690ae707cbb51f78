package domain_test

import (
	"math"
	"testing"

	"github.com/SscSPs/growth_estimator/internal/apperrors"
	"github.com/SscSPs/growth_estimator/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinancialHistory_Column(t *testing.T) {
	history := domain.FinancialHistory{Rows: []domain.FinancialRecord{
		{Period: "2021", Revenue: 10, NetIncome: 1, MarketShare: 0.5, Extra: map[string]float64{"Employees": 40}},
		{Period: "2022", Revenue: 12, NetIncome: 2, MarketShare: 0.6, Extra: map[string]float64{"Employees": 45}},
	}}

	revenue, err := history.Column(domain.ColumnRevenue)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 12}, revenue)

	netIncome, err := history.Column(domain.ColumnNetIncome)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, netIncome)

	share, err := history.Column(domain.ColumnMarketShare)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.6}, share)

	employees, err := history.Column("Employees")
	require.NoError(t, err)
	assert.Equal(t, []float64{40, 45}, employees)

	assert.Equal(t, 2, history.Len())
}

func TestFinancialHistory_ColumnErrors(t *testing.T) {
	_, err := domain.FinancialHistory{}.Column(domain.ColumnRevenue)
	assert.ErrorIs(t, err, apperrors.ErrMissingData)

	history := domain.FinancialHistory{Rows: []domain.FinancialRecord{{Revenue: 1}}}
	_, err = history.Column("EBITDA")
	assert.ErrorIs(t, err, apperrors.ErrMissingColumn)
	assert.Contains(t, err.Error(), "EBITDA")
}

func TestFinancialHistory_CheckEndpoints(t *testing.T) {
	nan := math.NaN()

	assert.ErrorIs(t, domain.FinancialHistory{}.CheckEndpoints(), apperrors.ErrMissingData)

	gapInMiddle := domain.FinancialHistory{Rows: []domain.FinancialRecord{
		{Revenue: 1, NetIncome: 1, MarketShare: 1},
		{Revenue: nan, NetIncome: nan, MarketShare: nan},
		{Revenue: 2, NetIncome: 1, MarketShare: 1},
	}}
	assert.NoError(t, gapInMiddle.CheckEndpoints())

	gapAtEnd := domain.FinancialHistory{Rows: []domain.FinancialRecord{
		{Revenue: 1, NetIncome: 1, MarketShare: 1},
		{Period: "2024", Revenue: 2, NetIncome: nan, MarketShare: 1},
	}}
	err := gapAtEnd.CheckEndpoints()
	assert.ErrorIs(t, err, apperrors.ErrMissingData)
	assert.Contains(t, err.Error(), "2024")
	assert.Contains(t, err.Error(), domain.ColumnNetIncome)
}

func TestFinancialRecord_Value(t *testing.T) {
	row := domain.FinancialRecord{Revenue: 10, NetIncome: 1, MarketShare: 0.5, Extra: map[string]float64{"Employees": 40}}

	for _, name := range domain.RequiredColumns {
		_, ok := row.Value(name)
		assert.True(t, ok, name)
	}
	v, ok := row.Value("Employees")
	assert.True(t, ok)
	assert.Equal(t, 40.0, v)
	_, ok = row.Value("EBITDA")
	assert.False(t, ok)
}
