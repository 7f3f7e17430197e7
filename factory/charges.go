/*
Package factory provides JSON to Go tariff conversion.

PURPOSE:
  Converts JSON tariff definitions into tariff.ChargeSet values. This
  enables charge configuration without code changes - an analyst can define
  a tariff in JSON and the factory produces the proper Go struct, merged
  over the built-in defaults.

WHY JSON?
  - Non-developers can adjust market assumptions
  - Version control for tariff definitions
  - A server can load a custom baseline at startup (-tariff flag)

JSON SCHEMA:
  {
    "name": "Winter 2026 forward curve",
    "consumption_kwh": 2500000,
    "wholesale_price": 110.0,
    "duos": 22.0,
    "tnuos": 11.0,
    "bsuos": 5.5,
    "cfd_levy": 16.0,
    "ro_levy": 5.0,
    "ccl": 5.85,
    "standing_charge": 0.55,
    "vat_rate": 0.05,
    "escalation_rate": 0.03
  }

KEY FEATURES:
  - Every field is optional; omitted fields fall back to the default
    charge set (or to an explicit base)
  - Rejects negative values, since the engine itself never validates
  - Unknown fields are rejected to catch typos in hand-written files

USAGE:
  charges, err := factory.ParseChargeSet(jsonBytes)

  // Merge a partial definition over a custom base instead of the defaults
  charges, err := factory.MergeChargeSet(base, jsonBytes)

SEE ALSO:
  - tariff/defaults.go: The baseline merged under partial definitions
  - api/scenarios.go: Preset what-if tariffs built on the same merge
*/
package factory

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/voltline/cost-engine/tariff"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// ChargeSetJSON is the JSON representation of a tariff. Pointer fields
// distinguish "absent, use the base value" from an explicit zero.
type ChargeSetJSON struct {
	Name           string   `json:"name,omitempty"`
	ConsumptionKWh *float64 `json:"consumption_kwh,omitempty"`
	WholesalePrice *float64 `json:"wholesale_price,omitempty"` // £/MWh
	DUoS           *float64 `json:"duos,omitempty"`            // £/MWh
	TNUoS          *float64 `json:"tnuos,omitempty"`           // £/MWh
	BSUoS          *float64 `json:"bsuos,omitempty"`           // £/MWh
	CfDLevy        *float64 `json:"cfd_levy,omitempty"`        // £/MWh
	ROLevy         *float64 `json:"ro_levy,omitempty"`         // £/MWh
	CCL            *float64 `json:"ccl,omitempty"`             // £/MWh
	StandingCharge *float64 `json:"standing_charge,omitempty"` // £/day
	VATRate        *float64 `json:"vat_rate,omitempty"`
	EscalationRate *float64 `json:"escalation_rate,omitempty"`
}

// =============================================================================
// PARSING
// =============================================================================

// ParseChargeSet decodes a JSON tariff definition and merges it over the
// built-in default charges. Fields absent from the JSON keep their default
// values; negative values and unknown fields are errors.
func ParseChargeSet(data []byte) (tariff.ChargeSet, error) {
	return MergeChargeSet(tariff.DefaultCharges(), data)
}

// MergeChargeSet decodes a JSON tariff definition and merges it over base.
func MergeChargeSet(base tariff.ChargeSet, data []byte) (tariff.ChargeSet, error) {
	var def ChargeSetJSON
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&def); err != nil {
		return tariff.ChargeSet{}, fmt.Errorf("invalid tariff definition: %w", err)
	}
	return def.Apply(base)
}

// Apply merges the definition's present fields over base. The engine has no
// validation of its own, so negative fields are rejected here.
func (d ChargeSetJSON) Apply(base tariff.ChargeSet) (tariff.ChargeSet, error) {
	out := base
	fields := []struct {
		name string
		src  *float64
		dst  *float64
	}{
		{"consumption_kwh", d.ConsumptionKWh, &out.ConsumptionKWh},
		{"wholesale_price", d.WholesalePrice, &out.WholesalePrice},
		{"duos", d.DUoS, &out.DUoS},
		{"tnuos", d.TNUoS, &out.TNUoS},
		{"bsuos", d.BSUoS, &out.BSUoS},
		{"cfd_levy", d.CfDLevy, &out.CfDLevy},
		{"ro_levy", d.ROLevy, &out.ROLevy},
		{"ccl", d.CCL, &out.CCL},
		{"standing_charge", d.StandingCharge, &out.StandingCharge},
		{"vat_rate", d.VATRate, &out.VATRate},
		{"escalation_rate", d.EscalationRate, &out.EscalationRate},
	}

	for _, f := range fields {
		if f.src == nil {
			continue
		}
		if *f.src < 0 {
			return tariff.ChargeSet{}, fmt.Errorf("%s must be non-negative, got %v", f.name, *f.src)
		}
		*f.dst = *f.src
	}
	return out, nil
}
