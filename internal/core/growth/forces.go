package growth

import (
	"github.com/SscSPs/growth_estimator/internal/apperrors"
	"github.com/SscSPs/growth_estimator/internal/core/domain"
)

// MaxForceValue is the fixed divisor applied to every raw force signal.
const MaxForceValue = 5.0

// Per-force scaling coefficients. All are 1; they stay named so callers can override them.
const (
	NewEntrantsCoefficient  = 1.0
	SubstitutesCoefficient  = 1.0
	BuyersCoefficient       = 1.0
	SuppliersCoefficient    = 1.0
	RivalryCoefficient      = 1.0
	ExchangeRateCoefficient = 1.0
)

// DefaultCoefficients returns a fresh copy of the default per-force coefficients.
func DefaultCoefficients() map[domain.ForceName]float64 {
	return map[domain.ForceName]float64{
		domain.ThreatOfNewEntrants:        NewEntrantsCoefficient,
		domain.ThreatOfSubstitutes:        SubstitutesCoefficient,
		domain.BargainingPowerOfBuyers:    BuyersCoefficient,
		domain.BargainingPowerOfSuppliers: SuppliersCoefficient,
		domain.RivalryAmongCompetitors:    RivalryCoefficient,
		domain.ExchangeRateEffect:         ExchangeRateCoefficient,
	}
}

// ForceSignals are the raw inputs of the intensity score.
type ForceSignals struct {
	MarketShareGrowth  float64
	NetIncomeGrowth    float64
	Inflation          float64
	InterestRate       float64
	GDPGrowth          float64
	ExchangeRateChange float64
}

// ForcesScorer turns force signals and weights into one intensity score.
//
// The score is documented as normalized to [0,1] but is NOT clamped unless
// Strict is set: raw macro magnitudes (inflation 15 means 15) push it outside
// that range and the blend only partly compensates. Keep the default unclamped.
type ForcesScorer struct {
	// Coefficients scale each force signal. A missing entry falls back to the default.
	Coefficients map[domain.ForceName]float64
	// Strict clamps the score to [0,1].
	Strict bool
}

// NewForcesScorer returns a scorer with default coefficients and no clamping.
func NewForcesScorer() *ForcesScorer {
	return &ForcesScorer{Coefficients: DefaultCoefficients()}
}

func (s *ForcesScorer) coefficient(f domain.ForceName) float64 {
	if c, ok := s.Coefficients[f]; ok {
		return c
	}
	return DefaultCoefficients()[f]
}

// Signals computes the six scaled force signals.
func (s *ForcesScorer) Signals(in ForceSignals) map[domain.ForceName]float64 {
	raw := map[domain.ForceName]float64{
		domain.ThreatOfNewEntrants:        1 - in.MarketShareGrowth,
		domain.ThreatOfSubstitutes:        1 - in.NetIncomeGrowth,
		domain.BargainingPowerOfBuyers:    in.Inflation,
		domain.BargainingPowerOfSuppliers: in.InterestRate,
		domain.RivalryAmongCompetitors:    in.GDPGrowth,
		domain.ExchangeRateEffect:         in.ExchangeRateChange,
	}

	signals := make(map[domain.ForceName]float64, len(raw))
	for f, v := range raw {
		signals[f] = s.coefficient(f) * v / MaxForceValue
	}
	return signals
}

// Score returns the weight-normalized average of the force signals.
// A zero total weight is reported as apperrors.ErrZeroWeightSum.
func (s *ForcesScorer) Score(in ForceSignals, weights domain.ForceWeights) (float64, error) {
	score, _, err := s.Breakdown(in, weights)
	return score, err
}

// Breakdown returns the score together with the individual signals.
func (s *ForcesScorer) Breakdown(in ForceSignals, weights domain.ForceWeights) (float64, map[domain.ForceName]float64, error) {
	total := weights.Sum()
	if total == 0 {
		return 0, nil, apperrors.ErrZeroWeightSum
	}

	signals := s.Signals(in)

	// Summed in canonical order so identical inputs give bit-identical scores.
	var weighted float64
	for _, f := range domain.AllForces {
		weighted += weights.Get(f) * signals[f]
	}
	score := weighted / total

	if s.Strict {
		score = clamp(score, 0, 1)
	}
	return score, signals, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
