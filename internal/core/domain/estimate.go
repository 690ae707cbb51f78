package domain

// GrowthEstimate is the result of one estimation.
// Value is the forward growth rate as a percentage (already multiplied by 100), unrounded.
type GrowthEstimate struct {
	Ticker          string                `json:"ticker,omitempty"`
	Value           float64               `json:"value"`
	RevenueCAGR     float64               `json:"revenueCagr"`
	NetIncomeCAGR   float64               `json:"netIncomeCagr"`
	MarketShareCAGR float64               `json:"marketShareCagr"`
	Intensity       float64               `json:"intensity"`
	Signals         map[ForceName]float64 `json:"signals"`
	Periods         int                   `json:"periods"`
	Strict          bool                  `json:"strict"`
	// GovernmentPolicy echoes the scenario's policy text; it is not used numerically.
	GovernmentPolicy string `json:"governmentPolicy,omitempty"`
}

// IntensityOutOfRange reports whether the intensity score fell outside [0,1].
func (e GrowthEstimate) IntensityOutOfRange() bool {
	return e.Intensity < 0 || e.Intensity > 1
}
