/*
projection.go - Multi-year cost projection under compound escalation

PURPOSE:
  Produces an ordered per-year sequence of cost breakdowns by escalating the
  base charges with a compounding factor and delegating each year to
  CalculateAnnualCost.

KEY INSIGHT:
  Escalation applies to PRICES, not to usage or tax policy. The seven
  per-MWh charges and the daily standing charge grow by (1+r)^y; consumption
  and the VAT rate are carried through unchanged for every year.

COMPOUNDING:
  Year 0 is the unescalated base year (factor 1). Year y uses
  factor = (1 + escalation_rate)^y, so year-over-year growth of each charge
  is exactly (1 + escalation_rate) - compound, not simple, escalation.

EDGE CASES:
  years = 0            -> empty projection, not an error
  escalation_rate = 0  -> identical breakdowns every year
  escalation_rate < 0  -> permitted; produces a decaying cost trend

The engine holds no state between calls and caches nothing; each call is
O(years) pure arithmetic recomputed from scratch.

SEE ALSO:
  - calculator.go: Per-year breakdown
  - render/: Table and chart-series reshaping of a Projection
*/
package tariff

import "math"

// =============================================================================
// PROJECTION ENGINE
// =============================================================================

// ProjectionEngine projects annual costs forward under compound escalation.
// It is stateless; the zero value is ready to use.
type ProjectionEngine struct{}

// Project returns one CostBreakdown per year for years 0..years-1, in
// chronological order. Year y's charges are the base charges scaled by
// (1 + base.EscalationRate)^y; consumption and VAT rate are not escalated.
//
// years <= 0 yields an empty projection.
func (ProjectionEngine) Project(base ChargeSet, years int) Projection {
	if years <= 0 {
		return Projection{}
	}

	out := make(Projection, 0, years)
	for y := 0; y < years; y++ {
		factor := math.Pow(1+base.EscalationRate, float64(y))
		out = append(out, CalculateAnnualCost(base.Escalated(factor)))
	}
	return out
}

// ProjectCosts is a convenience wrapper around a zero ProjectionEngine.
func ProjectCosts(base ChargeSet, years int) Projection {
	return ProjectionEngine{}.Project(base, years)
}
