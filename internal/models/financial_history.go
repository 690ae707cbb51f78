package models

import "time"

// FinancialHistoryRow is one stored period of the financial_history table.
// The figure columns are nullable.
type FinancialHistoryRow struct {
	Ticker      string    `json:"ticker"`      // Part of the primary key
	Period      string    `json:"period"`      // Part of the primary key (e.g., "FY2023")
	PeriodOrder int       `json:"periodOrder"` // Sort key; ties fall back to Period
	Revenue     *float64  `json:"revenue"`
	NetIncome   *float64  `json:"netIncome"`
	MarketShare *float64  `json:"marketShare"`
	CreatedAt   time.Time `json:"createdAt"`
}
