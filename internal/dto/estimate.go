package dto

import (
	"math"

	"github.com/SscSPs/growth_estimator/internal/core/domain"
	"github.com/SscSPs/growth_estimator/internal/utils"
)

// FinancialRecordRequest is one period of an inline history table.
// A null figure is treated as missing; only the first and last rows must be complete.
type FinancialRecordRequest struct {
	Period      string   `json:"period" example:"FY2023"`
	Revenue     *float64 `json:"revenue" example:"121"`
	NetIncome   *float64 `json:"netIncome" example:"10"`
	MarketShare *float64 `json:"marketShare" example:"5"`
}

// MacroParametersRequest holds the macroeconomic scalars of a scenario, as raw magnitudes.
type MacroParametersRequest struct {
	ExchangeRateChange float64 `json:"exchangeRateChange" example:"0"`
	GDPGrowth          float64 `json:"gdpGrowth" example:"0"`
	Inflation          float64 `json:"inflation" example:"0"`
	InterestRate       float64 `json:"interestRate" example:"0"`
	GovernmentPolicy   string  `json:"governmentPolicy" example:"stable"` // Echoed back, not used in the calculation
}

// EstimateRequest defines the data needed to estimate growth from an inline history.
type EstimateRequest struct {
	Ticker  string                   `json:"ticker" example:"ACME"`
	History []FinancialRecordRequest `json:"history" binding:"required,min=1"`
	Macro   MacroParametersRequest   `json:"macro"`
	Weights map[string]float64       `json:"weights" binding:"required,min=1"` // Keyed by force name
	Strict  bool                     `json:"strict"`                           // Clamp the intensity score to [0,1]
}

// EstimateFromSourceRequest defines the data needed to estimate growth from a history source.
type EstimateFromSourceRequest struct {
	Source  string                 `json:"source" binding:"required" example:"db://ACME"` // .csv, .xlsx[#Sheet], http(s):// or db://TICKER
	Macro   MacroParametersRequest `json:"macro"`
	Weights map[string]float64     `json:"weights" binding:"required,min=1"`
	Strict  bool                   `json:"strict"`
}

// EstimateResponse defines the data returned for an estimate.
type EstimateResponse struct {
	Ticker              string             `json:"ticker,omitempty"`
	GrowthRate          float64            `json:"growthRate"`        // Percentage, unrounded
	GrowthRateDisplay   string             `json:"growthRateDisplay"` // Percentage rounded to 2 decimals
	RevenueCAGR         float64            `json:"revenueCagr"`
	NetIncomeCAGR       float64            `json:"netIncomeCagr"`
	MarketShareCAGR     float64            `json:"marketShareCagr"`
	Intensity           float64            `json:"intensity"`
	IntensityOutOfRange bool               `json:"intensityOutOfRange"`
	Signals             map[string]float64 `json:"signals"`
	Periods             int                `json:"periods"`
	Strict              bool               `json:"strict"`
	GovernmentPolicy    string             `json:"governmentPolicy,omitempty"`
}

// ToDomainHistory converts the inline rows to a domain history. Null figures become NaN.
func (r EstimateRequest) ToDomainHistory() domain.FinancialHistory {
	rows := make([]domain.FinancialRecord, len(r.History))
	for i, rec := range r.History {
		rows[i] = domain.FinancialRecord{
			Period:      rec.Period,
			Revenue:     valueOrNaN(rec.Revenue),
			NetIncome:   valueOrNaN(rec.NetIncome),
			MarketShare: valueOrNaN(rec.MarketShare),
		}
	}
	return domain.FinancialHistory{Ticker: r.Ticker, Rows: rows}
}

// ToDomain converts the request to domain macro parameters.
func (m MacroParametersRequest) ToDomain() domain.MacroParameters {
	return domain.MacroParameters{
		ExchangeRateChange: m.ExchangeRateChange,
		GDPGrowth:          m.GDPGrowth,
		Inflation:          m.Inflation,
		InterestRate:       m.InterestRate,
		GovernmentPolicy:   m.GovernmentPolicy,
	}
}

// ToDomainWeights converts force-name keyed weights. Unknown names are kept so validation can reject them.
func ToDomainWeights(w map[string]float64) domain.ForceWeights {
	weights := make(domain.ForceWeights, len(w))
	for name, v := range w {
		weights[domain.ForceName(name)] = v
	}
	return weights
}

// ToEstimateResponse converts a domain.GrowthEstimate to EstimateResponse DTO
func ToEstimateResponse(e *domain.GrowthEstimate) EstimateResponse {
	signals := make(map[string]float64, len(e.Signals))
	for f, v := range e.Signals {
		signals[string(f)] = v
	}
	return EstimateResponse{
		Ticker:              e.Ticker,
		GrowthRate:          e.Value,
		GrowthRateDisplay:   utils.FormatPercent(e.Value),
		RevenueCAGR:         e.RevenueCAGR,
		NetIncomeCAGR:       e.NetIncomeCAGR,
		MarketShareCAGR:     e.MarketShareCAGR,
		Intensity:           e.Intensity,
		IntensityOutOfRange: e.IntensityOutOfRange(),
		Signals:             signals,
		Periods:             e.Periods,
		Strict:              e.Strict,
		GovernmentPolicy:    e.GovernmentPolicy,
	}
}

func valueOrNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}
