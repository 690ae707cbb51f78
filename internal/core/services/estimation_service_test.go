package services_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/SscSPs/growth_estimator/internal/apperrors"
	"github.com/SscSPs/growth_estimator/internal/core/domain"
	portssvc "github.com/SscSPs/growth_estimator/internal/core/ports/services"
	"github.com/SscSPs/growth_estimator/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock HistoryReader ---
type MockHistoryReader struct {
	mock.Mock
}

func (m *MockHistoryReader) LoadHistory(ctx context.Context, source string) (*domain.FinancialHistory, error) {
	args := m.Called(ctx, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialHistory), args.Error(1)
}

// --- Test Suite ---
type EstimationServiceTestSuite struct {
	suite.Suite
	mockReader *MockHistoryReader
	service    portssvc.EstimationSvcFacade
	ctx        context.Context
}

func (suite *EstimationServiceTestSuite) SetupTest() {
	suite.mockReader = new(MockHistoryReader)
	suite.service = services.NewEstimationService(services.WithHistoryReader(suite.mockReader))
	suite.ctx = context.Background()
}

func acmeHistory() *domain.FinancialHistory {
	return &domain.FinancialHistory{
		Ticker: "ACME",
		Rows: []domain.FinancialRecord{
			{Period: "2022", Revenue: 100, NetIncome: 10, MarketShare: 5},
			{Period: "2023", Revenue: 121, NetIncome: 10, MarketShare: 5},
		},
	}
}

// --- Test Cases ---

func (suite *EstimationServiceTestSuite) TestEstimateFromSource_Success() {
	suite.mockReader.On("LoadHistory", suite.ctx, "data/acme.csv").Return(acmeHistory(), nil).Once()

	got, err := suite.service.EstimateFromSource(suite.ctx, "data/acme.csv", domain.MacroParameters{}, domain.UniformForceWeights(1), portssvc.EstimationOptions{})

	suite.Require().NoError(err)
	suite.InDelta(9.8667, got.Value, 1e-4)
	suite.Equal(2, got.Periods)
	suite.False(got.Strict)
	suite.mockReader.AssertExpectations(suite.T())
}

func (suite *EstimationServiceTestSuite) TestEstimateFromSource_ReaderError() {
	suite.mockReader.On("LoadHistory", suite.ctx, "db://GONE").Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.EstimateFromSource(suite.ctx, "db://GONE", domain.MacroParameters{}, domain.UniformForceWeights(1), portssvc.EstimationOptions{})

	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockReader.AssertExpectations(suite.T())
}

func (suite *EstimationServiceTestSuite) TestEstimateFromSource_NoReader() {
	svc := services.NewEstimationService()

	_, err := svc.EstimateFromSource(suite.ctx, "data/acme.csv", domain.MacroParameters{}, domain.UniformForceWeights(1), portssvc.EstimationOptions{})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *EstimationServiceTestSuite) TestEstimateFromHistory_StrictClampsIntensity() {
	macro := domain.MacroParameters{Inflation: 50}
	weights := domain.UniformForceWeights(1)

	loose, err := suite.service.EstimateFromHistory(suite.ctx, *acmeHistory(), macro, weights, portssvc.EstimationOptions{})
	suite.Require().NoError(err)
	suite.InDelta(10.4/6, loose.Intensity, 1e-12)
	suite.True(loose.IntensityOutOfRange())

	strict, err := suite.service.EstimateFromHistory(suite.ctx, *acmeHistory(), macro, weights, portssvc.EstimationOptions{Strict: true})
	suite.Require().NoError(err)
	suite.Equal(1.0, strict.Intensity)
	suite.True(strict.Strict)
	suite.InDelta(8.0, strict.Value, 1e-9)
}

func (suite *EstimationServiceTestSuite) TestEstimateFromHistory_CoefficientOverride() {
	svc := services.NewEstimationService(services.WithForceCoefficients(map[domain.ForceName]float64{
		domain.ThreatOfNewEntrants: 0,
	}))

	got, err := svc.EstimateFromHistory(suite.ctx, *acmeHistory(), domain.MacroParameters{}, domain.UniformForceWeights(1), portssvc.EstimationOptions{})

	suite.Require().NoError(err)
	suite.InDelta(0.2/6, got.Intensity, 1e-12)
	suite.Equal(0.0, got.Signals[domain.ThreatOfNewEntrants])
	suite.InDelta(0.2, got.Signals[domain.ThreatOfSubstitutes], 1e-12)
}

func (suite *EstimationServiceTestSuite) TestEstimateFromHistory_Failures() {
	zeroStart := acmeHistory()
	zeroStart.Rows[0].Revenue = 0

	tests := []struct {
		name    string
		history domain.FinancialHistory
		macro   domain.MacroParameters
		weights domain.ForceWeights
		wantErr error
	}{
		{"empty history", domain.FinancialHistory{}, domain.MacroParameters{}, domain.UniformForceWeights(1), apperrors.ErrMissingData},
		{"zero initial revenue", *zeroStart, domain.MacroParameters{}, domain.UniformForceWeights(1), apperrors.ErrDivisionByZero},
		{"zero weights", *acmeHistory(), domain.MacroParameters{}, domain.UniformForceWeights(0), apperrors.ErrZeroWeightSum},
		{"negative weight", *acmeHistory(), domain.MacroParameters{}, domain.ForceWeights{domain.ExchangeRateEffect: -1}, apperrors.ErrValidation},
		{"NaN inflation", *acmeHistory(), domain.MacroParameters{Inflation: math.NaN()}, domain.UniformForceWeights(1), apperrors.ErrValidation},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			got, err := suite.service.EstimateFromHistory(suite.ctx, tt.history, tt.macro, tt.weights, portssvc.EstimationOptions{})
			suite.Nil(got)
			suite.True(errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}
}

func (suite *EstimationServiceTestSuite) TestNewServiceContainer() {
	suite.mockReader.On("LoadHistory", suite.ctx, "acme.csv").Return(acmeHistory(), nil).Once()

	container := services.NewServiceContainer(suite.mockReader)
	suite.Require().NotNil(container.Estimation)

	_, err := container.Estimation.EstimateFromSource(suite.ctx, "acme.csv", domain.MacroParameters{}, domain.UniformForceWeights(1), portssvc.EstimationOptions{})
	suite.NoError(err)
	suite.mockReader.AssertExpectations(suite.T())
}

func TestEstimationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EstimationServiceTestSuite))
}
