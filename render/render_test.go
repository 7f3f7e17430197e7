package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voltline/cost-engine/render"
	"github.com/voltline/cost-engine/tariff"
)

func defaultProjection(years int) tariff.Projection {
	return tariff.ProjectCosts(tariff.DefaultCharges(), years)
}

// =============================================================================
// TABLE
// =============================================================================

func TestTable_YearsAndRounding(t *testing.T) {
	rows := render.Table(defaultProjection(15), 2025)
	require.Len(t, rows, 15)

	assert.Equal(t, 2025, rows[0].Year)
	assert.Equal(t, 2039, rows[14].Year)

	// Base-year figures rounded to 2dp from the worked reference values.
	assert.Equal(t, 150_850.00, rows[0].EnergyCost)
	assert.Equal(t, 187.50, rows[0].StandingChargeTotal)
	assert.Equal(t, 7_551.88, rows[0].VATAmount)
	assert.Equal(t, 158_589.38, rows[0].TotalCost)
	// float64 unit rate is 15.084999999999999 p/kWh, so display shows 15.08.
	assert.Equal(t, 15.08, rows[0].EffectiveUnitCost)
}

func TestTable_EmptyProjection(t *testing.T) {
	assert.Empty(t, render.Table(tariff.Projection{}, 2025))
}

func TestRound2_HalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 1.24, render.Round2(1.235))
	assert.Equal(t, -1.24, render.Round2(-1.235))
	assert.Equal(t, 187.50, render.Round2(187.5005))
}

// =============================================================================
// SERIES
// =============================================================================

func TestSeries_MeltedShape(t *testing.T) {
	p := defaultProjection(15)
	points := render.Series(p, 2025)
	require.Len(t, points, 4*15)

	// Component-major, chronological within a component.
	assert.Equal(t, render.ComponentTotal, points[0].Component)
	assert.Equal(t, 2025, points[0].Year)
	assert.Equal(t, 2039, points[14].Year)
	assert.Equal(t, render.ComponentEnergy, points[15].Component)

	// Values are the rounded breakdown figures.
	assert.Equal(t, render.Round2(p[0].TotalCost), points[0].Value)
	assert.Equal(t, render.Round2(p[3].EnergyCost), points[15+3].Value)
}

func TestSeries_ComponentsSumToTotal(t *testing.T) {
	// For each year, energy + standing + VAT equals the total within
	// rounding slack of the three 2dp roundings.
	p := defaultProjection(15)
	points := render.Series(p, 2025)

	byComp := map[render.Component][]render.Point{}
	for _, pt := range points {
		byComp[pt.Component] = append(byComp[pt.Component], pt)
	}
	for y := 0; y < len(p); y++ {
		sum := byComp[render.ComponentEnergy][y].Value +
			byComp[render.ComponentStanding][y].Value +
			byComp[render.ComponentVAT][y].Value
		assert.InDelta(t, byComp[render.ComponentTotal][y].Value, sum, 0.02, "year index %d", y)
	}
}

// =============================================================================
// FORMATTING
// =============================================================================

func TestFormatGBP(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "£0.00"},
		{5, "£5.00"},
		{187.5005, "£187.50"},
		{1_234.56, "£1,234.56"},
		{158_589.375525, "£158,589.38"},
		{1_000_000, "£1,000,000.00"},
		{-42.5, "-£42.50"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, render.FormatGBP(c.in), "input %v", c.in)
	}
}
