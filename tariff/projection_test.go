package tariff_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voltline/cost-engine/tariff"
)

// =============================================================================
// EDGE CASES
// =============================================================================

func TestProject_ZeroYears_EmptyProjection(t *testing.T) {
	p := tariff.ProjectCosts(baselineCharges(), 0)
	assert.Empty(t, p, "years=0 must yield an empty projection, not an error")

	p = tariff.ProjectCosts(baselineCharges(), -3)
	assert.Empty(t, p, "negative years behaves like zero")
}

func TestProject_ZeroEscalation_IdenticalYears(t *testing.T) {
	// GIVEN: escalation_rate = 0
	// THEN: Every year equals the single-year calculation on the base charges
	c := baselineCharges()
	c.EscalationRate = 0

	p := tariff.ProjectCosts(c, 10)
	require.Len(t, p, 10)

	want := tariff.CalculateAnnualCost(c)
	for y, b := range p {
		assert.Equal(t, want, b, "year %d differs from the base-year breakdown", y)
	}
}

func TestProject_NegativeEscalation_DecayingTrend(t *testing.T) {
	c := baselineCharges()
	c.EscalationRate = -0.05

	p := tariff.ProjectCosts(c, 8)
	require.Len(t, p, 8)
	for y := 1; y < len(p); y++ {
		assert.Less(t, p[y].TotalCost, p[y-1].TotalCost,
			"negative escalation must produce a strictly decaying total")
	}
}

// =============================================================================
// COMPOUNDING CONTRACT
// =============================================================================

func TestProject_CompoundEscalation(t *testing.T) {
	// GIVEN: escalation rate r
	// THEN: year y's charges are base * (1+r)^y, so year 1's energy cost is
	//       exactly year 0's times (1+r), and year y's matches the closed form
	c := baselineCharges()
	r := c.EscalationRate

	p := tariff.ProjectCosts(c, 15)
	require.Len(t, p, 15)

	// Base year is unescalated.
	assert.Equal(t, tariff.CalculateAnnualCost(c), p[0])

	assert.InDelta(t, p[0].EnergyCost*(1+r), p[1].EnergyCost, 1e-6,
		"year 1 energy cost must be year 0 times (1+r)")

	for y, b := range p {
		factor := math.Pow(1+r, float64(y))
		assert.InDelta(t, p[0].EnergyCost*factor, b.EnergyCost, 1e-5, "energy cost, year %d", y)
		assert.InDelta(t, p[0].StandingChargeTotal*factor, b.StandingChargeTotal, 1e-6, "standing charge, year %d", y)
		assert.InDelta(t, p[0].EffectiveUnitCost*factor, b.EffectiveUnitCost, 1e-9, "effective unit cost, year %d", y)
	}
}

func TestProject_ConsumptionAndVATNotEscalated(t *testing.T) {
	// The VAT share of the total must stay constant across years: VAT is a
	// fixed fraction of the subtotal, and consumption never changes.
	c := baselineCharges()
	p := tariff.ProjectCosts(c, 15)

	for y, b := range p {
		subtotal := b.EnergyCost + b.StandingChargeTotal
		assert.InDelta(t, c.VATRate, b.VATAmount/subtotal, 1e-12, "VAT fraction drifted in year %d", y)

		// Energy cost / effective unit rate recovers consumption in every year.
		kwh := b.EnergyCost / (b.EffectiveUnitCost / 100)
		assert.InDelta(t, c.ConsumptionKWh, kwh, 1e-3, "implied consumption drifted in year %d", y)
	}
}

// =============================================================================
// STATELESSNESS
// =============================================================================

func TestProject_RepeatedCallsIdentical(t *testing.T) {
	// The engine holds no state between calls; repeated invocations on the
	// same inputs are bit-identical.
	var eng tariff.ProjectionEngine
	c := baselineCharges()

	first := eng.Project(c, 15)
	second := eng.Project(c, 15)
	assert.Equal(t, first, second)
}

func TestEscalated_ScalesChargesOnly(t *testing.T) {
	c := baselineCharges()
	e := c.Escalated(2)

	assert.Equal(t, c.ConsumptionKWh, e.ConsumptionKWh)
	assert.Equal(t, c.VATRate, e.VATRate)
	assert.Equal(t, c.EscalationRate, e.EscalationRate)
	assert.Equal(t, c.WholesalePrice*2, e.WholesalePrice)
	assert.Equal(t, c.CCL*2, e.CCL)
	assert.Equal(t, c.StandingCharge*2, e.StandingCharge)
	assert.Equal(t, c.UnitRateMWh()*2, e.UnitRateMWh())
}
