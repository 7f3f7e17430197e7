/*
Package tariff provides the core electricity cost calculation engine.

PURPOSE:
  This package contains the domain types and algorithms for estimating a UK
  business's annual electricity cost from per-unit market charges, and for
  projecting that cost across a multi-year horizon under compound escalation.

KEY CONCEPTS IN THIS FILE (types.go):
  - ChargeSet: The full set of inputs for one estimate (consumption, seven
    per-MWh market charges, daily standing charge, VAT and escalation rates)
  - CostBreakdown: The computed annual cost, split into its components
  - Projection: An ordered per-year sequence of breakdowns

DESIGN PRINCIPLES:
  1. Purity: Both engines are pure functions. No state, no I/O, no clocks.
  2. Value semantics: Every type is a value created per call and never
     mutated afterwards. Safe for any number of concurrent callers.
  3. Units are part of the contract: per-MWh rates, a per-day standing
     charge, and dimensionless fractions must never be mixed. Field comments
     carry the unit; callers own unit discipline.
  4. No validation in the core: non-negative inputs are a documented
     precondition. Out-of-range values propagate arithmetically rather than
     raising; guarding them is the caller's job (see api package).

USAGE:
  charges := tariff.DefaultCharges()
  charges.ConsumptionKWh = 2_500_000
  breakdown := tariff.CalculateAnnualCost(charges)
  projection := tariff.ProjectCosts(charges, 15)

SEE ALSO:
  - calculator.go: Single-year cost breakdown
  - projection.go: Multi-year compound escalation
  - defaults.go: Baseline charge values
*/
package tariff

// =============================================================================
// CHARGE SET - Inputs for one estimate
// =============================================================================

// ChargeSet is the complete set of inputs for a cost estimate.
//
// All seven market charges are expressed in £ per MWh. The standing charge is
// £ per day. VATRate and EscalationRate are fractions (0.05 means 5%). Fields
// must be non-negative; the engines do not check.
type ChargeSet struct {
	// ConsumptionKWh is annual electricity consumption in kWh.
	ConsumptionKWh float64

	// Per-MWh market charges, £/MWh.
	WholesalePrice float64 // wholesale energy price
	DUoS           float64 // distribution use-of-system
	TNUoS          float64 // transmission network use-of-system
	BSUoS          float64 // balancing services use-of-system
	CfDLevy        float64 // Contracts for Difference levy
	ROLevy         float64 // Renewables Obligation levy
	CCL            float64 // Climate Change Levy

	// StandingCharge is the fixed daily fee, £/day.
	StandingCharge float64

	// VATRate is the VAT fraction applied to the pre-tax subtotal.
	VATRate float64

	// EscalationRate is the assumed constant annual compound growth rate
	// applied to all per-unit charges and the standing charge when
	// projecting. Not used by the single-year calculator.
	EscalationRate float64
}

// UnitRateMWh returns the sum of the seven per-MWh charges, £/MWh.
func (c ChargeSet) UnitRateMWh() float64 {
	return c.WholesalePrice + c.DUoS + c.TNUoS + c.BSUoS + c.CfDLevy + c.ROLevy + c.CCL
}

// Escalated returns a copy of c with the seven per-MWh charges and the
// standing charge multiplied by factor. Consumption, VAT rate, and the
// escalation rate itself are carried through unchanged.
func (c ChargeSet) Escalated(factor float64) ChargeSet {
	out := c
	out.WholesalePrice *= factor
	out.DUoS *= factor
	out.TNUoS *= factor
	out.BSUoS *= factor
	out.CfDLevy *= factor
	out.ROLevy *= factor
	out.CCL *= factor
	out.StandingCharge *= factor
	return out
}

// =============================================================================
// COST BREAKDOWN - Computed annual cost
// =============================================================================

// CostBreakdown is the annual cost for one year, split into components.
// It is fully determined by one ChargeSet and has no identity beyond its
// values.
type CostBreakdown struct {
	// EnergyCost is consumption times the summed unit rate, £.
	EnergyCost float64

	// StandingChargeTotal is the daily standing charge over a 365-day
	// year, £.
	StandingChargeTotal float64

	// VATAmount is VAT on the pre-tax subtotal, £.
	VATAmount float64

	// TotalCost is subtotal plus VAT, £.
	TotalCost float64

	// EffectiveUnitCost is the summed energy rate in pence per kWh. It
	// deliberately excludes the standing charge and VAT: it is a pure
	// energy-rate metric, not an all-in average rate.
	EffectiveUnitCost float64
}

// =============================================================================
// PROJECTION - Ordered per-year sequence
// =============================================================================

// Projection is an ordered sequence of per-year breakdowns, index 0 being
// the unescalated base year.
type Projection []CostBreakdown
