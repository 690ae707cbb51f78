package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/SscSPs/growth_estimator/internal/apperrors"
	"github.com/SscSPs/growth_estimator/internal/core/domain"
	"github.com/SscSPs/growth_estimator/internal/core/growth"
	portsrepo "github.com/SscSPs/growth_estimator/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/growth_estimator/internal/core/ports/services"
	"github.com/SscSPs/growth_estimator/internal/utils"
)

// estimationService implements the EstimationSvcFacade interface
type estimationService struct {
	BaseService
	historyReader portsrepo.HistoryReader
	coefficients  map[domain.ForceName]float64
}

// EstimationOption is a functional option for configuring the estimation service
type EstimationOption func(*estimationService)

// WithHistoryReader sets the provider used by EstimateFromSource.
func WithHistoryReader(reader portsrepo.HistoryReader) EstimationOption {
	return func(s *estimationService) {
		s.historyReader = reader
	}
}

// WithForceCoefficients overrides the per-force scaling coefficients.
func WithForceCoefficients(coefficients map[domain.ForceName]float64) EstimationOption {
	return func(s *estimationService) {
		for f, c := range coefficients {
			s.coefficients[f] = c
		}
	}
}

// NewEstimationService creates a new estimation service with the provided options
func NewEstimationService(options ...EstimationOption) portssvc.EstimationSvcFacade {
	svc := &estimationService{
		coefficients: growth.DefaultCoefficients(),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure estimationService implements the EstimationSvcFacade interface
var _ portssvc.EstimationSvcFacade = (*estimationService)(nil)

func (s *estimationService) EstimateFromSource(ctx context.Context, source string, macro domain.MacroParameters, weights domain.ForceWeights, opts portssvc.EstimationOptions) (*domain.GrowthEstimate, error) {
	if s.historyReader == nil {
		return nil, fmt.Errorf("%w: no history provider is configured", apperrors.ErrValidation)
	}

	history, err := s.historyReader.LoadHistory(ctx, source)
	if err != nil {
		s.logFailure(ctx, err, "Failed to load financial history", slog.String("source", source))
		return nil, err
	}
	s.LogDebug(ctx, "Financial history loaded",
		slog.String("source", source),
		slog.Int("periods", history.Len()))

	return s.EstimateFromHistory(ctx, *history, macro, weights, opts)
}

func (s *estimationService) EstimateFromHistory(ctx context.Context, history domain.FinancialHistory, macro domain.MacroParameters, weights domain.ForceWeights, opts portssvc.EstimationOptions) (*domain.GrowthEstimate, error) {
	if err := validateMacro(macro); err != nil {
		s.logFailure(ctx, err, "Rejected macro parameters")
		return nil, err
	}
	if err := weights.Validate(); err != nil {
		s.logFailure(ctx, err, "Rejected force weights")
		return nil, err
	}

	estimator := &growth.Estimator{Scorer: &growth.ForcesScorer{
		Coefficients: s.coefficients,
		Strict:       opts.Strict,
	}}
	estimate, err := estimator.Estimate(history, macro, weights)
	if err != nil {
		s.logFailure(ctx, err, "Growth estimation failed",
			slog.String("ticker", history.Ticker),
			slog.Int("periods", history.Len()))
		return nil, err
	}

	if estimate.IntensityOutOfRange() {
		s.GetLogger(ctx).Warn("Five-forces intensity outside [0,1]",
			slog.Float64("intensity", estimate.Intensity),
			slog.Bool("strict", estimate.Strict))
	}
	s.LogInfo(ctx, "Growth estimated",
		slog.String("ticker", history.Ticker),
		slog.Int("periods", estimate.Periods),
		slog.String("growth_pct", utils.FormatWithPrecision(estimate.Value, 4)),
		slog.String("intensity", utils.FormatWithPrecision(estimate.Intensity, 4)))
	return estimate, nil
}

// logFailure logs caller mistakes at warn level and everything else at error level.
func (s *estimationService) logFailure(ctx context.Context, err error, msg string, keyvals ...any) {
	switch {
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrMissingData),
		errors.Is(err, apperrors.ErrMissingColumn),
		errors.Is(err, apperrors.ErrInvalidPeriod),
		errors.Is(err, apperrors.ErrDomainMath):
		s.LogWarn(ctx, err, msg, keyvals...)
	default:
		s.LogError(ctx, err, msg, keyvals...)
	}
}

func validateMacro(m domain.MacroParameters) error {
	for name, v := range map[string]float64{
		"exchangeRateChange": m.ExchangeRateChange,
		"gdpGrowth":          m.GDPGrowth,
		"inflation":          m.Inflation,
		"interestRate":       m.InterestRate,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: macro parameter %s must be a finite number", apperrors.ErrValidation, name)
		}
	}
	return nil
}
