package domain

// MacroParameters holds the macroeconomic scalars of one scenario.
// Values are raw magnitudes as entered (inflation 15 means 15, not 0.15).
type MacroParameters struct {
	ExchangeRateChange float64 `json:"exchangeRateChange"` // Percentage
	GDPGrowth          float64 `json:"gdpGrowth"`
	Inflation          float64 `json:"inflation"`
	InterestRate       float64 `json:"interestRate"`
	// GovernmentPolicy is carried for display and audit only. It has no effect on the estimate.
	GovernmentPolicy string `json:"governmentPolicy,omitempty"`
}
