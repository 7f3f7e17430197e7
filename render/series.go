/*
series.go - Long-format chart series

PURPOSE:
  Melts a projection into (year, component, value) points, one series per
  cost component, for time-series charting. Order is component-major then
  chronological so a chart library can consume the points as contiguous
  lines.
*/
package render

import "github.com/voltline/cost-engine/tariff"

// Component names a cost series in melted output.
type Component string

const (
	ComponentTotal    Component = "Total Cost (£)"
	ComponentEnergy   Component = "Energy Cost (£)"
	ComponentStanding Component = "Standing Charge (£)"
	ComponentVAT      Component = "VAT (£)"
)

// Components lists the melted series in display order, total first.
var Components = []Component{ComponentTotal, ComponentEnergy, ComponentStanding, ComponentVAT}

// Point is one value of one component in one calendar year.
type Point struct {
	Year      int       `json:"year"`
	Component Component `json:"component"`
	Value     float64   `json:"value"`
}

// Series melts a projection into long-format points: for each component in
// Components order, one point per year from baseYear upward. Values are
// display-rounded to 2dp.
func Series(p tariff.Projection, baseYear int) []Point {
	points := make([]Point, 0, len(Components)*len(p))
	for _, comp := range Components {
		for y, b := range p {
			points = append(points, Point{
				Year:      baseYear + y,
				Component: comp,
				Value:     Round2(componentValue(b, comp)),
			})
		}
	}
	return points
}

func componentValue(b tariff.CostBreakdown, c Component) float64 {
	switch c {
	case ComponentEnergy:
		return b.EnergyCost
	case ComponentStanding:
		return b.StandingChargeTotal
	case ComponentVAT:
		return b.VATAmount
	default:
		return b.TotalCost
	}
}
