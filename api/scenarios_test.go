package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voltline/cost-engine/api"
)

func TestListScenarios(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/scenarios")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[[]api.ScenarioDTO](t, resp)
	require.NotEmpty(t, out)

	ids := make(map[string]bool)
	for _, s := range out {
		ids[s.ID] = true
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.Description)
	}
	for _, want := range []string{"baseline", "wholesale-shock", "zero-escalation", "high-escalation", "intensive-consumer", "levy-free"} {
		assert.True(t, ids[want], "missing scenario %q", want)
	}
}

func TestLoadScenario_Baseline(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv, "/api/scenarios/load", `{"scenario_id": "baseline"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[api.ScenarioResponse](t, resp)
	assert.Equal(t, "baseline", out.Scenario.ID)
	require.Len(t, out.Projection.Table, 15)
	assert.Equal(t, 158_589.38, out.Projection.Table[0].TotalCost)
}

func TestLoadScenario_WholesaleShock_RaisesOnlyWholesale(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv, "/api/scenarios/load", `{"scenario_id": "wholesale-shock"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[api.ScenarioResponse](t, resp)
	assert.Equal(t, 140.0, out.Projection.Charges.WholesalePrice)
	assert.Equal(t, 20.0, out.Projection.Charges.DUoS)
	// 50 £/MWh more on 1 GWh = £50,000 more energy cost before VAT.
	assert.InDelta(t, 150_850+50_000, out.Projection.Current.EnergyCost, 1e-3)
}

func TestLoadScenario_ZeroEscalation_FlatProjection(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv, "/api/scenarios/load", `{"scenario_id": "zero-escalation"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[api.ScenarioResponse](t, resp)
	require.Len(t, out.Projection.Table, 15)
	for _, row := range out.Projection.Table {
		assert.Equal(t, out.Projection.Table[0].TotalCost, row.TotalCost, "year %d", row.Year)
	}
}

func TestLoadScenario_LevyFree_LowersUnitRate(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv, "/api/scenarios/load", `{"scenario_id": "levy-free"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[api.ScenarioResponse](t, resp)
	// (90+20+10+5)/10 = 12.5 p/kWh with all three levies at zero.
	assert.InDelta(t, 12.5, out.Projection.Current.EffectiveUnitCost, 1e-9)
}

func TestLoadScenario_CustomYears(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv, "/api/scenarios/load", `{"scenario_id": "baseline", "years": 5}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[api.ScenarioResponse](t, resp)
	assert.Len(t, out.Projection.Table, 5)
}

func TestLoadScenario_Unknown(t *testing.T) {
	srv := newTestServer(t)
	resp := postJSON(t, srv, "/api/scenarios/load", `{"scenario_id": "does-not-exist"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
