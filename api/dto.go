/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the tariff domain model from the external API contract, allowing field
  renaming and version evolution without touching the engine.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/charges.go: ChargeSetJSON, the shared tariff-definition shape
*/
package api

import (
	"github.com/voltline/cost-engine/factory"
	"github.com/voltline/cost-engine/render"
	"github.com/voltline/cost-engine/tariff"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// EstimateRequest carries optional charge overrides for a single-year
// estimate. Absent fields fall back to the server's baseline tariff.
type EstimateRequest struct {
	factory.ChargeSetJSON
}

// ProjectionRequest carries charge overrides plus the projection horizon.
type ProjectionRequest struct {
	factory.ChargeSetJSON

	// Years is the projection horizon; nil uses the server default.
	Years *int `json:"years,omitempty"`

	// BaseYear keys the output by calendar year; nil uses the server
	// default.
	BaseYear *int `json:"base_year,omitempty"`
}

// LoadScenarioRequest selects a preset what-if scenario.
type LoadScenarioRequest struct {
	ScenarioID string `json:"scenario_id"`
	Years      *int   `json:"years,omitempty"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// BreakdownDTO is one year's cost breakdown. Monetary figures are the raw
// engine values; *Display fields carry the formatted rendering.
type BreakdownDTO struct {
	Year                int     `json:"year"`
	EnergyCost          float64 `json:"energy_cost"`
	StandingChargeTotal float64 `json:"standing_charge"`
	VATAmount           float64 `json:"vat"`
	TotalCost           float64 `json:"total_cost"`
	EffectiveUnitCost   float64 `json:"effective_unit_cost"` // p/kWh
	TotalCostDisplay    string  `json:"total_cost_display"`
	EnergyCostDisplay   string  `json:"energy_cost_display"`
}

// ProjectionResponse wraps a full projection: the base-year breakdown, the
// per-year table, and the melted chart series.
type ProjectionResponse struct {
	BaseYear  int            `json:"base_year"`
	Years     int            `json:"years"`
	Charges   ChargesDTO     `json:"charges"`
	Current   BreakdownDTO   `json:"current"`
	Table     []render.Row   `json:"table"`
	Series    []render.Point `json:"series"`
}

// ChargesDTO echoes the effective input charges back to the client.
type ChargesDTO struct {
	ConsumptionKWh float64 `json:"consumption_kwh"`
	WholesalePrice float64 `json:"wholesale_price"`
	DUoS           float64 `json:"duos"`
	TNUoS          float64 `json:"tnuos"`
	BSUoS          float64 `json:"bsuos"`
	CfDLevy        float64 `json:"cfd_levy"`
	ROLevy         float64 `json:"ro_levy"`
	CCL            float64 `json:"ccl"`
	StandingCharge float64 `json:"standing_charge"`
	VATRate        float64 `json:"vat_rate"`
	EscalationRate float64 `json:"escalation_rate"`
}

// DefaultsResponse lists the baseline charge values with their units.
type DefaultsResponse struct {
	AsOf    string     `json:"as_of"`
	Charges ChargesDTO `json:"charges"`
	Units   UnitsDTO   `json:"units"`
}

// UnitsDTO documents the unit of each charge field.
type UnitsDTO struct {
	PerMWhCharges  string `json:"per_mwh_charges"`
	StandingCharge string `json:"standing_charge"`
	Consumption    string `json:"consumption"`
	Rates          string `json:"rates"`
}

// ScenarioDTO describes a preset what-if scenario.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ScenarioResponse is a loaded scenario with its projection.
type ScenarioResponse struct {
	Scenario   ScenarioDTO        `json:"scenario"`
	Projection ProjectionResponse `json:"projection"`
}

// ErrorResponse is the JSON error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func chargesDTO(c tariff.ChargeSet) ChargesDTO {
	return ChargesDTO{
		ConsumptionKWh: c.ConsumptionKWh,
		WholesalePrice: c.WholesalePrice,
		DUoS:           c.DUoS,
		TNUoS:          c.TNUoS,
		BSUoS:          c.BSUoS,
		CfDLevy:        c.CfDLevy,
		ROLevy:         c.ROLevy,
		CCL:            c.CCL,
		StandingCharge: c.StandingCharge,
		VATRate:        c.VATRate,
		EscalationRate: c.EscalationRate,
	}
}

func breakdownDTO(b tariff.CostBreakdown, year int) BreakdownDTO {
	return BreakdownDTO{
		Year:                year,
		EnergyCost:          b.EnergyCost,
		StandingChargeTotal: b.StandingChargeTotal,
		VATAmount:           b.VATAmount,
		TotalCost:           b.TotalCost,
		EffectiveUnitCost:   b.EffectiveUnitCost,
		TotalCostDisplay:    render.FormatGBP(b.TotalCost),
		EnergyCostDisplay:   render.FormatGBP(b.EnergyCost),
	}
}
