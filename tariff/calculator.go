/*
calculator.go - Single-year annual cost breakdown

PURPOSE:
  Converts a ChargeSet into the annual CostBreakdown for one year. This is
  the arithmetic heart of the engine; everything else (projection, API,
  rendering) is built on top of it.

ALGORITHM:
  1. Convert each £/MWh charge to £/kWh (divide by 1000)
  2. Sum the seven per-kWh rates into one unit rate
  3. energy_cost          = unit_rate * consumption
  4. standing_total       = standing_charge * 365
  5. subtotal             = energy_cost + standing_total
  6. vat                  = subtotal * vat_rate
  7. total                = subtotal + vat
  8. effective_unit_cost  = unit_rate * 100  (pence/kWh, energy only)

NOTES:
  The 365-day year is a deliberate simplification; there is no leap-year
  adjustment. EffectiveUnitCost excludes standing charge and VAT on purpose.

SEE ALSO:
  - projection.go: Applies this per year under escalation
*/
package tariff

// daysPerYear is fixed; the standing charge contract uses a 365-day year.
const daysPerYear = 365

// CalculateAnnualCost computes the cost breakdown for one year from the
// given charges. Pure and deterministic: identical inputs produce
// bit-identical outputs, and concurrent calls need no coordination.
//
// Precondition: all fields of c are non-negative. The function performs no
// validation; negative inputs flow through the arithmetic and produce a
// consistent but meaningless result.
func CalculateAnnualCost(c ChargeSet) CostBreakdown {
	// £/MWh -> £/kWh
	unitRateKWh := c.UnitRateMWh() / 1000

	energyCost := unitRateKWh * c.ConsumptionKWh
	standingTotal := c.StandingCharge * daysPerYear

	subtotal := energyCost + standingTotal
	vat := subtotal * c.VATRate

	return CostBreakdown{
		EnergyCost:          energyCost,
		StandingChargeTotal: standingTotal,
		VATAmount:           vat,
		TotalCost:           subtotal + vat,
		EffectiveUnitCost:   unitRateKWh * 100, // pence/kWh
	}
}
