/*
Package render reshapes projections for display.

PURPOSE:
  Pure data-reshaping adapters between the tariff engine and whatever draws
  the output (JSON API, terminal table, frontend chart). Two shapes are
  produced:
  - Table: one row per calendar year with display-rounded figures
  - Series: long-format (year, component, value) points for a line chart

DESIGN PRINCIPLES:
  1. No I/O and no mutation of the input projection.
  2. Rounding here is DISPLAY rounding only. The engine's float64 figures
     are the source of truth; this package rounds through decimal.Decimal
     so 2dp half-up rounding is exact rather than drifting with binary
     representation.
  3. The core never depends on this package; dependency runs one way.

SEE ALSO:
  - table.go: Per-year table rows and money formatting
  - series.go: Melted chart series
*/
package render

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/voltline/cost-engine/tariff"
)

// =============================================================================
// TABLE - One row per calendar year
// =============================================================================

// Row is one display-rounded projection year.
type Row struct {
	Year                int     `json:"year"`
	EnergyCost          float64 `json:"energy_cost"`
	StandingChargeTotal float64 `json:"standing_charge"`
	VATAmount           float64 `json:"vat"`
	TotalCost           float64 `json:"total_cost"`
	EffectiveUnitCost   float64 `json:"effective_unit_cost"` // p/kWh
}

// Table builds one row per projection year, keyed by calendar year starting
// at baseYear. All monetary figures and the unit rate are rounded to 2dp.
func Table(p tariff.Projection, baseYear int) []Row {
	rows := make([]Row, 0, len(p))
	for y, b := range p {
		rows = append(rows, Row{
			Year:                baseYear + y,
			EnergyCost:          Round2(b.EnergyCost),
			StandingChargeTotal: Round2(b.StandingChargeTotal),
			VATAmount:           Round2(b.VATAmount),
			TotalCost:           Round2(b.TotalCost),
			EffectiveUnitCost:   Round2(b.EffectiveUnitCost),
		})
	}
	return rows
}

// =============================================================================
// FORMATTING HELPERS
// =============================================================================

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// FormatGBP renders a monetary value as "£1,234.56". Negative values carry
// the sign before the currency symbol.
func FormatGBP(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)

	neg := d.IsNegative()
	if neg {
		d = d.Neg()
	}

	s := d.StringFixed(2)
	whole, frac, _ := strings.Cut(s, ".")

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	sb.WriteString("£")
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}
	sb.WriteByte('.')
	sb.WriteString(frac)
	return sb.String()
}
