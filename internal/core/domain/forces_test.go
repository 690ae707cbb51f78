package domain_test

import (
	"math"
	"testing"

	"github.com/SscSPs/growth_estimator/internal/apperrors"
	"github.com/SscSPs/growth_estimator/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestForceWeights_Sum(t *testing.T) {
	assert.Equal(t, 12.0, domain.UniformForceWeights(2).Sum())
	assert.Equal(t, 0.0, domain.ForceWeights{}.Sum())

	// Unknown names never count towards the total.
	w := domain.ForceWeights{domain.ExchangeRateEffect: 0.5, "market_mood": 10}
	assert.Equal(t, 0.5, w.Sum())
}

func TestForceWeights_Validate(t *testing.T) {
	tests := []struct {
		name    string
		weights domain.ForceWeights
		wantErr bool
		errMsg  string
	}{
		{name: "uniform", weights: domain.UniformForceWeights(0.5)},
		{name: "partial", weights: domain.ForceWeights{domain.ThreatOfSubstitutes: 1}},
		{name: "all zero is left to the scorer", weights: domain.UniformForceWeights(0)},
		{name: "weights above one", weights: domain.UniformForceWeights(7)},
		{name: "unknown force", weights: domain.ForceWeights{"market_mood": 1}, wantErr: true, errMsg: "unknown force"},
		{name: "negative", weights: domain.ForceWeights{domain.ThreatOfNewEntrants: -0.1}, wantErr: true, errMsg: "non-negative"},
		{name: "NaN", weights: domain.ForceWeights{domain.ThreatOfNewEntrants: math.NaN()}, wantErr: true, errMsg: "finite"},
		{name: "infinite", weights: domain.ForceWeights{domain.ThreatOfNewEntrants: math.Inf(1)}, wantErr: true, errMsg: "finite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.weights.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestGrowthEstimate_IntensityOutOfRange(t *testing.T) {
	assert.False(t, domain.GrowthEstimate{Intensity: 0}.IntensityOutOfRange())
	assert.False(t, domain.GrowthEstimate{Intensity: 1}.IntensityOutOfRange())
	assert.True(t, domain.GrowthEstimate{Intensity: 1.01}.IntensityOutOfRange())
	assert.True(t, domain.GrowthEstimate{Intensity: -0.2}.IntensityOutOfRange())
}
