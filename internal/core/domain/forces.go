package domain

import (
	"fmt"
	"math"

	"github.com/SscSPs/growth_estimator/internal/apperrors"
)

// ForceName identifies one of the competitive forces.
type ForceName string

const (
	ThreatOfNewEntrants        ForceName = "threat_of_new_entrants"
	ThreatOfSubstitutes        ForceName = "threat_of_substitutes"
	BargainingPowerOfBuyers    ForceName = "bargaining_power_of_buyers"
	BargainingPowerOfSuppliers ForceName = "bargaining_power_of_suppliers"
	RivalryAmongCompetitors    ForceName = "rivalry_among_existing_competitors"
	ExchangeRateEffect         ForceName = "exchange_rate_effect"
)

// AllForces lists the forces in their canonical order.
var AllForces = []ForceName{
	ThreatOfNewEntrants,
	ThreatOfSubstitutes,
	BargainingPowerOfBuyers,
	BargainingPowerOfSuppliers,
	RivalryAmongCompetitors,
	ExchangeRateEffect,
}

// IsValid reports whether f is one of the known forces.
func (f ForceName) IsValid() bool {
	for _, known := range AllForces {
		if f == known {
			return true
		}
	}
	return false
}

// ForceWeights maps each force to its user-supplied weight.
// A force without an entry weighs zero.
type ForceWeights map[ForceName]float64

// UniformForceWeights returns weights with every force set to w.
func UniformForceWeights(w float64) ForceWeights {
	weights := make(ForceWeights, len(AllForces))
	for _, f := range AllForces {
		weights[f] = w
	}
	return weights
}

// Get returns the weight of f, zero when unset.
func (w ForceWeights) Get(f ForceName) float64 {
	return w[f]
}

// Sum returns the total weight over the known forces.
func (w ForceWeights) Sum() float64 {
	var total float64
	for _, f := range AllForces {
		total += w[f]
	}
	return total
}

// Validate rejects unknown force names and negative or non-finite weights.
// A zero sum is not checked here; the scorer reports it as a domain math error.
func (w ForceWeights) Validate() error {
	for name, v := range w {
		if !name.IsValid() {
			return fmt.Errorf("%w: unknown force %q", apperrors.ErrValidation, name)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: weight for %s must be finite", apperrors.ErrValidation, name)
		}
		if v < 0 {
			return fmt.Errorf("%w: weight for %s must be non-negative", apperrors.ErrValidation, name)
		}
	}
	return nil
}
