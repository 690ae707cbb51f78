package growth

import (
	"fmt"

	"github.com/SscSPs/growth_estimator/internal/apperrors"
	"github.com/SscSPs/growth_estimator/internal/core/domain"
)

// Estimator blends the revenue CAGR with the five-forces intensity score.
type Estimator struct {
	Scorer *ForcesScorer
}

// NewEstimator returns an estimator backed by a default, unclamped scorer.
func NewEstimator() *Estimator {
	return &Estimator{Scorer: NewForcesScorer()}
}

// Estimate is shorthand for NewEstimator().Estimate.
func Estimate(history domain.FinancialHistory, macro domain.MacroParameters, weights domain.ForceWeights) (*domain.GrowthEstimate, error) {
	return NewEstimator().Estimate(history, macro, weights)
}

// Estimate computes the forward growth rate, as a percentage, for one company.
//
// final = revenueCAGR * (1 - intensity/5) * 100
//
// Revenue CAGR only enters the blend; market-share and net-income CAGR feed the
// scorer. macro.GovernmentPolicy is echoed back and never used numerically.
// No rounding is applied.
func (e *Estimator) Estimate(history domain.FinancialHistory, macro domain.MacroParameters, weights domain.ForceWeights) (*domain.GrowthEstimate, error) {
	if err := history.CheckEndpoints(); err != nil {
		return nil, err
	}

	revenueCAGR, err := columnCAGR(history, domain.ColumnRevenue)
	if err != nil {
		return nil, err
	}
	netIncomeCAGR, err := columnCAGR(history, domain.ColumnNetIncome)
	if err != nil {
		return nil, err
	}
	marketShareCAGR, err := columnCAGR(history, domain.ColumnMarketShare)
	if err != nil {
		return nil, err
	}

	scorer := e.Scorer
	if scorer == nil {
		scorer = NewForcesScorer()
	}
	intensity, signals, err := scorer.Breakdown(ForceSignals{
		MarketShareGrowth:  marketShareCAGR,
		NetIncomeGrowth:    netIncomeCAGR,
		Inflation:          macro.Inflation,
		InterestRate:       macro.InterestRate,
		GDPGrowth:          macro.GDPGrowth,
		ExchangeRateChange: macro.ExchangeRateChange,
	}, weights)
	if err != nil {
		return nil, err
	}

	return &domain.GrowthEstimate{
		Ticker:           history.Ticker,
		Value:            revenueCAGR * (1 - intensity/MaxForceValue) * 100,
		RevenueCAGR:      revenueCAGR,
		NetIncomeCAGR:    netIncomeCAGR,
		MarketShareCAGR:  marketShareCAGR,
		Intensity:        intensity,
		Signals:          signals,
		Periods:          history.Len(),
		Strict:           scorer.Strict,
		GovernmentPolicy: macro.GovernmentPolicy,
	}, nil
}

// columnCAGR computes the CAGR of a column from its first and last values,
// using the row count as the period count.
func columnCAGR(history domain.FinancialHistory, column string) (float64, error) {
	values, err := history.Column(column)
	if err != nil {
		return 0, err
	}

	rate, err := CAGR(values[0], values[len(values)-1], len(values))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", column, err)
	}
	if rate == nil {
		return 0, fmt.Errorf("%w: %s has %d periods", apperrors.ErrInvalidPeriod, column, len(values))
	}
	return *rate, nil
}
