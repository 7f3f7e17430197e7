/*
handlers.go - HTTP API handlers for the cost estimation engine

PURPOSE:
  Exposes the tariff engine via a JSON API. Handles HTTP request/response,
  input defaulting and validation, and delegates the arithmetic to the
  tariff package.

ENDPOINTS:
  GET  /api/defaults        Baseline charge values and units
  POST /api/estimate        Single-year breakdown from (partial) charges
  POST /api/projection      Multi-year projection: table + chart series
  GET  /api/scenarios       List preset what-if scenarios
  POST /api/scenarios/load  Project a preset scenario

ARCHITECTURE:
  Handler holds the server configuration (baseline tariff, default horizon
  and base year) and a stateless projection engine. There is nothing else:
  every request recomputes from its own inputs, so handlers are safe for
  any level of concurrency.

REQUEST FLOW:
  1. Decode JSON body (unknown fields rejected)
  2. Merge overrides onto the baseline tariff
  3. Validate (non-negative fields, bounded horizon)
  4. Calculate / project
  5. Serialize response

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed body, negative inputs, horizon out of bounds
  - 404: Unknown scenario
  Validation lives entirely here: the engine's contract is "caller owns
  non-negativity", and this layer is the caller.

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Preset what-if tariffs
  - server.go: Router setup and middleware
*/
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/voltline/cost-engine/render"
	"github.com/voltline/cost-engine/tariff"
)

// maxHorizonYears bounds the projection horizon accepted over HTTP.
const maxHorizonYears = 60

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Config carries the server-level projection parameters. What the original
// tool hard-coded (15-year horizon, base year 2025, July 2025 charges) is
// injected here instead.
type Config struct {
	HorizonYears int
	BaseYear     int
	Baseline     tariff.ChargeSet
}

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Config Config
	engine tariff.ProjectionEngine
}

// NewHandler creates a handler, filling unset config fields with the
// standard defaults.
func NewHandler(cfg Config) *Handler {
	if cfg.HorizonYears == 0 {
		cfg.HorizonYears = tariff.DefaultHorizonYears
	}
	if cfg.BaseYear == 0 {
		cfg.BaseYear = tariff.DefaultBaseYear
	}
	if cfg.Baseline == (tariff.ChargeSet{}) {
		cfg.Baseline = tariff.DefaultCharges()
	}
	return &Handler{Config: cfg}
}

// =============================================================================
// DEFAULTS
// =============================================================================

// GetDefaults returns the server's baseline charge values with units.
func (h *Handler) GetDefaults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, DefaultsResponse{
		AsOf:    "July 2025",
		Charges: chargesDTO(h.Config.Baseline),
		Units: UnitsDTO{
			PerMWhCharges:  "£/MWh",
			StandingCharge: "£/day",
			Consumption:    "kWh/year",
			Rates:          "fraction (0.05 = 5%)",
		},
	})
}

// =============================================================================
// ESTIMATE
// =============================================================================

// Estimate computes a single-year breakdown from the request's charges
// merged over the baseline.
func (h *Handler) Estimate(w http.ResponseWriter, r *http.Request) {
	var req EstimateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	charges, err := req.ChargeSetJSON.Apply(h.Config.Baseline)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid charges", err)
		return
	}

	b := tariff.CalculateAnnualCost(charges)
	writeJSON(w, http.StatusOK, breakdownDTO(b, h.Config.BaseYear))
}

// =============================================================================
// PROJECTION
// =============================================================================

// Project computes a multi-year projection and returns the base-year
// breakdown, a per-year table, and melted chart series.
func (h *Handler) Project(w http.ResponseWriter, r *http.Request) {
	var req ProjectionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	charges, err := req.ChargeSetJSON.Apply(h.Config.Baseline)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid charges", err)
		return
	}

	years := h.Config.HorizonYears
	if req.Years != nil {
		years = *req.Years
	}
	if years < 0 || years > maxHorizonYears {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("years must be between 0 and %d", maxHorizonYears), nil)
		return
	}

	baseYear := h.Config.BaseYear
	if req.BaseYear != nil {
		baseYear = *req.BaseYear
	}

	writeJSON(w, http.StatusOK, h.projectionResponse(charges, years, baseYear))
}

// projectionResponse runs the engine and reshapes the result for clients.
func (h *Handler) projectionResponse(charges tariff.ChargeSet, years, baseYear int) ProjectionResponse {
	p := h.engine.Project(charges, years)

	resp := ProjectionResponse{
		BaseYear: baseYear,
		Years:    years,
		Charges:  chargesDTO(charges),
		Table:    render.Table(p, baseYear),
		Series:   render.Series(p, baseYear),
	}
	if len(p) > 0 {
		resp.Current = breakdownDTO(p[0], baseYear)
	}
	return resp
}

// =============================================================================
// HELPERS
// =============================================================================

// decodeBody decodes a JSON request body, rejecting unknown fields. An
// empty body decodes to the zero value so every override stays optional.
func decodeBody(r *http.Request, dst any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
