package services

import (
	"context"

	"github.com/SscSPs/growth_estimator/internal/core/domain"
)

// EstimationOptions tweaks a single estimation.
type EstimationOptions struct {
	// Strict clamps the intensity score to [0,1]. Off by default.
	Strict bool
}

// EstimationSvc runs growth estimations.
type EstimationSvc interface {
	// EstimateFromHistory estimates growth from an in-memory history table.
	EstimateFromHistory(ctx context.Context, history domain.FinancialHistory, macro domain.MacroParameters, weights domain.ForceWeights, opts EstimationOptions) (*domain.GrowthEstimate, error)

	// EstimateFromSource loads the history from source and then estimates growth.
	EstimateFromSource(ctx context.Context, source string, macro domain.MacroParameters, weights domain.ForceWeights, opts EstimationOptions) (*domain.GrowthEstimate, error)
}

// EstimationSvcFacade combines all estimation-related service interfaces
type EstimationSvcFacade interface {
	EstimationSvc
}
