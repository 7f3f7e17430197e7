/*
scenarios.go - Preset what-if scenarios

PURPOSE:
  Provides canned charge sets that demonstrate how the projection reacts to
  specific market movements. Each scenario is a partial tariff definition
  merged over the server's baseline, then projected over the configured
  horizon. Nothing is stored; loading a scenario is just a calculation.

AVAILABLE SCENARIOS:
  baseline:           July 2025 defaults, unchanged
  wholesale-shock:    Wholesale price up ~55% (140 £/MWh)
  zero-escalation:    Flat charges across the horizon
  high-escalation:    6% annual compound escalation
  intensive-consumer: 10 GWh/year site with a larger supply connection
  levy-free:          CfD, RO and CCL removed (policy-cost sensitivity)

ADDING NEW SCENARIOS:
 1. Add a scenarioDef with ID, name, description
 2. Express the change as a ChargeSetJSON partial

USAGE VIA API:

	POST /api/scenarios/load
	{"scenario_id": "wholesale-shock"}

SEE ALSO:
  - handlers.go: LoadScenario/ListScenarios routing helpers
  - factory/charges.go: The merge semantics scenarios rely on
*/
package api

import (
	"encoding/json"
	"net/http"

	"github.com/voltline/cost-engine/factory"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

func f(v float64) *float64 { return &v }

type scenarioDef struct {
	ScenarioDTO
	Overrides factory.ChargeSetJSON
}

var scenarios = []scenarioDef{
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "baseline",
			Name:        "Baseline",
			Description: "July 2025 default charges, 2.5% escalation",
		},
	},
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "wholesale-shock",
			Name:        "Wholesale Shock",
			Description: "Wholesale price at 140 £/MWh, other charges unchanged",
		},
		Overrides: factory.ChargeSetJSON{WholesalePrice: f(140)},
	},
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "zero-escalation",
			Name:        "Zero Escalation",
			Description: "Charges held flat for every projected year",
		},
		Overrides: factory.ChargeSetJSON{EscalationRate: f(0)},
	},
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "high-escalation",
			Name:        "High Escalation",
			Description: "6% annual compound growth on all charges",
		},
		Overrides: factory.ChargeSetJSON{EscalationRate: f(0.06)},
	},
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "intensive-consumer",
			Name:        "Intensive Consumer",
			Description: "10 GWh/year site with a 1.20 £/day standing charge",
		},
		Overrides: factory.ChargeSetJSON{
			ConsumptionKWh: f(10_000_000),
			StandingCharge: f(1.20),
		},
	},
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "levy-free",
			Name:        "Levy Free",
			Description: "CfD, RO and CCL at zero: policy-cost sensitivity",
		},
		Overrides: factory.ChargeSetJSON{
			CfDLevy: f(0),
			ROLevy:  f(0),
			CCL:     f(0),
		},
	},
}

// =============================================================================
// HANDLERS
// =============================================================================

// ListScenarios returns the available scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	dtos := make([]ScenarioDTO, 0, len(scenarios))
	for _, s := range scenarios {
		dtos = append(dtos, s.ScenarioDTO)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// LoadScenario projects a preset scenario over the configured horizon.
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req LoadScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var def *scenarioDef
	for i := range scenarios {
		if scenarios[i].ID == req.ScenarioID {
			def = &scenarios[i]
			break
		}
	}
	if def == nil {
		writeError(w, http.StatusNotFound, "Unknown scenario", nil)
		return
	}

	charges, err := def.Overrides.Apply(h.Config.Baseline)
	if err != nil {
		// Presets are static and non-negative; reaching this means a bad
		// server baseline, not client input.
		writeError(w, http.StatusInternalServerError, "Failed to build scenario charges", err)
		return
	}

	years := h.Config.HorizonYears
	if req.Years != nil {
		years = *req.Years
	}
	if years < 0 || years > maxHorizonYears {
		writeError(w, http.StatusBadRequest, "years out of range", nil)
		return
	}

	writeJSON(w, http.StatusOK, ScenarioResponse{
		Scenario:   def.ScenarioDTO,
		Projection: h.projectionResponse(charges, years, h.Config.BaseYear),
	})
}
