/*
defaults.go - Baseline charge values

PURPOSE:
  Carries the fixed default charge set (July 2025 market values) and the
  default projection parameters. Callers that collect partial input merge
  their overrides over DefaultCharges() before calculating, replacing the
  original use-defaults toggle with a plain defaulting step.

SEE ALSO:
  - factory/: JSON tariff definitions merged over these defaults
  - api/: HTTP layer defaulting of per-field overrides
*/
package tariff

// Default projection parameters. The presentation layer passes these
// explicitly; nothing in the engines reads them.
const (
	DefaultHorizonYears = 15
	DefaultBaseYear     = 2025
)

// DefaultConsumptionKWh is the baseline annual consumption, 1 GWh/year.
const DefaultConsumptionKWh = 1_000_000

// DefaultCharges returns the baseline charge set, market values as of
// July 2025. A fresh value is returned per call; mutating it never affects
// other callers.
func DefaultCharges() ChargeSet {
	return ChargeSet{
		ConsumptionKWh: DefaultConsumptionKWh,
		WholesalePrice: 90.0,   // £/MWh
		DUoS:           20.0,   // £/MWh
		TNUoS:          10.0,   // £/MWh
		BSUoS:          5.0,    // £/MWh
		CfDLevy:        15.0,   // £/MWh
		ROLevy:         5.0,    // £/MWh
		CCL:            5.85,   // £/MWh
		StandingCharge: 0.5137, // £/day
		VATRate:        0.05,
		EscalationRate: 0.025,
	}
}
