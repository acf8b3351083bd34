package tracker

// RateConfig holds the jurisdiction-level assumptions of the projection
// engine. All rates are fractions (0.035 for 3.5%). A RateConfig is always an
// explicit argument to engine calls: the caller resolves it (by country tag
// or override) before invocation, the engine never looks it up.
type RateConfig struct {
	Appreciation float64 `yaml:"appreciation" json:"appreciation"`
	Inflation    float64 `yaml:"inflation" json:"inflation"`
	SellingCosts float64 `yaml:"sellingCosts" json:"sellingCosts"`
	CapitalGains float64 `yaml:"capitalGains" json:"capitalGains"`
	MortgageRate float64 `yaml:"mortgageRate" json:"mortgageRate"`
}

// defaultAppreciation is assumed for a property whose country has no rate
// configuration and that carries no override.
const defaultAppreciation = 0.035

// AppreciationFor returns the appreciation rate to use for a property: its
// own override when set, otherwise the configured rate, otherwise the flat
// 3.5% fallback.
func (r RateConfig) AppreciationFor(p PropertyFacts) float64 {
	if p.AppreciationOverride != 0 {
		return p.AppreciationOverride
	}
	if r.Appreciation != 0 {
		return r.Appreciation
	}
	return defaultAppreciation
}

// RateSet holds named RateConfigs, keyed by a stable country-name string.
type RateSet struct {
	Default   RateConfig            `yaml:"default"`
	Countries map[string]RateConfig `yaml:"countries,omitempty"`
}

// For returns the RateConfig for a country, falling back to the default
// config for unknown countries.
func (s RateSet) For(country string) RateConfig {
	if c, ok := s.Countries[country]; ok {
		return c
	}
	return s.Default
}

// DefaultRates returns the built-in rate set used when no settings file
// exists yet.
func DefaultRates() RateSet {
	return RateSet{
		Default: RateConfig{
			Appreciation: 0.035,
			Inflation:    0.025,
			SellingCosts: 0.06,
			CapitalGains: 0.15,
			MortgageRate: 0.065,
		},
		Countries: map[string]RateConfig{
			"USA": {
				Appreciation: 0.035,
				Inflation:    0.025,
				SellingCosts: 0.06,
				CapitalGains: 0.15,
				MortgageRate: 0.065,
			},
			"Turkey": {
				Appreciation: 0.30,
				Inflation:    0.45,
				SellingCosts: 0.04,
				CapitalGains: 0.0,
				MortgageRate: 0.40,
			},
		},
	}
}
