package mapping_test

import (
	"math"
	"testing"

	"github.com/SscSPs/growth_estimator/internal/models"
	"github.com/SscSPs/growth_estimator/internal/utils/mapping"
	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func TestToDomainFinancialHistory(t *testing.T) {
	rows := []models.FinancialHistoryRow{
		{Ticker: "ACME", Period: "2022", Revenue: ptr(100), NetIncome: ptr(10), MarketShare: ptr(0.2)},
		{Ticker: "ACME", Period: "2023", Revenue: nil, NetIncome: ptr(12), MarketShare: nil},
	}

	history := mapping.ToDomainFinancialHistory("ACME", rows)

	assert.Equal(t, "ACME", history.Ticker)
	assert.Equal(t, 2, history.Len())
	assert.Equal(t, "2022", history.Rows[0].Period)
	assert.Equal(t, 100.0, history.Rows[0].Revenue)
	assert.True(t, math.IsNaN(history.Rows[1].Revenue))
	assert.Equal(t, 12.0, history.Rows[1].NetIncome)
	assert.True(t, math.IsNaN(history.Rows[1].MarketShare))
}
