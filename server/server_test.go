package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dallen2021/AeroStack/server"
)

func newTestServer(t *testing.T, cfg server.Config) *httptest.Server {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	ts := httptest.NewServer(server.New(cfg, log).Handler())
	t.Cleanup(ts.Close)

	return ts
}

func getJSON(t *testing.T, url string, out interface{}) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))

	return resp.StatusCode
}

func postJSON(t *testing.T, url string, body, out interface{}) int {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))

	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, server.DefaultConfig())

	var body map[string]bool
	code := getJSON(t, ts.URL+"/api/health", &body)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, body["ok"])
}

func TestAirfoils(t *testing.T) {
	ts := newTestServer(t, server.DefaultConfig())

	var list []map[string]interface{}
	code := getJSON(t, ts.URL+"/api/airfoils", &list)
	assert.Equal(t, http.StatusOK, code)
	require.Len(t, list, 11)
	assert.Equal(t, "naca-0012", list[0]["id"])

	var detail struct {
		Preset   map[string]interface{} `json:"preset"`
		Geometry struct {
			Chord float64   `json:"chord"`
			X     []float64 `json:"x"`
		} `json:"geometry"`
	}
	code = getJSON(t, ts.URL+"/api/airfoils/naca-2412?chord=2&n_points=50", &detail)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "naca-2412", detail.Preset["id"])
	assert.Equal(t, 2.0, detail.Geometry.Chord)
	assert.Len(t, detail.Geometry.X, 50)

	var fail map[string]string
	code = getJSON(t, ts.URL+"/api/airfoils/naca-1337", &fail)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, fail["error"], "naca-1337")
}

func TestNACA4(t *testing.T) {
	ts := newTestServer(t, server.DefaultConfig())

	var body struct {
		Metrics struct {
			Thickness float64 `json:"max_thickness_pct"`
		} `json:"metrics"`
		Geometry struct {
			Code string    `json:"code"`
			X    []float64 `json:"x"`
		} `json:"geometry"`
	}
	code := getJSON(t, ts.URL+"/api/naca4?digits=0012&n_points=40", &body)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "0012", body.Geometry.Code)
	assert.InDelta(t, 12.0, body.Metrics.Thickness, 1e-9)
	assert.Len(t, body.Geometry.X, 40)

	var fail map[string]string
	code = getJSON(t, ts.URL+"/api/naca4?digits=24X2", &fail)
	assert.Equal(t, http.StatusBadRequest, code)

	code = getJSON(t, ts.URL+"/api/naca4?digits=2412&chord=abc", &fail)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestAnalyze(t *testing.T) {
	ts := newTestServer(t, server.DefaultConfig())

	var res struct {
		Code string `json:"code"`
		Thin struct {
			CL float64 `json:"cl"`
		} `json:"thin_airfoil"`
		Panel struct {
			CL    float64   `json:"cl"`
			Gamma []float64 `json:"gamma"`
		} `json:"vortex_panel"`
		Metrics struct {
			MemoryBytes float64 `json:"memory_bytes"`
		} `json:"metrics"`
	}
	code := postJSON(t, ts.URL+"/api/analyze",
		map[string]interface{}{"digits": "2412", "alpha_deg": 4.0, "panels": 40}, &res)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "2412", res.Code)
	assert.Positive(t, res.Thin.CL)
	assert.Positive(t, res.Panel.CL)
	assert.Len(t, res.Panel.Gamma, 40)
	assert.Positive(t, res.Metrics.MemoryBytes)
}

func TestAnalyze_Errors(t *testing.T) {
	ts := newTestServer(t, server.DefaultConfig())

	var fail map[string]string
	code := postJSON(t, ts.URL+"/api/analyze",
		map[string]interface{}{"digits": "2400"}, &fail)
	assert.Equal(t, http.StatusBadRequest, code, "zero thickness is invalid input")

	code = postJSON(t, ts.URL+"/api/analyze",
		map[string]interface{}{"digits": "2412", "panels": 500}, &fail)
	assert.Equal(t, http.StatusBadRequest, code, "panel count out of range")

	resp, err := http.Post(ts.URL+"/api/analyze", "application/json",
		strings.NewReader("{not json"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// TestAnalyze_SingularMapsTo422: an unreachable conditioning ceiling
// turns every solve into a singular-system failure at the boundary.
func TestAnalyze_SingularMapsTo422(t *testing.T) {
	cfg := server.DefaultConfig()
	cfg.MaxConditionNumber = 1.0
	cfg.WarnConditionNumber = 0.5
	ts := newTestServer(t, cfg)

	var fail map[string]string
	code := postJSON(t, ts.URL+"/api/analyze",
		map[string]interface{}{"digits": "2412", "panels": 40}, &fail)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.NotEmpty(t, fail["error"])
}

func TestDXF(t *testing.T) {
	ts := newTestServer(t, server.DefaultConfig())

	resp, err := http.Get(ts.URL + "/api/dxf?digits=2412&thickness_scale=1.5&n_points=60")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/dxf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "naca2412.dxf")

	doc, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("0\nSECTION\n")))
	assert.True(t, bytes.HasSuffix(doc, []byte("0\nEOF\n")))

	var fail map[string]string
	code := getJSON(t, ts.URL+"/api/dxf?digits=2412&thickness_scale=0", &fail)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestCORS(t *testing.T) {
	ts := newTestServer(t, server.DefaultConfig())

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/analyze", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t, server.DefaultConfig())

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "aerostack_solve_duration_seconds")
}

// TestWebsocketSweep drives the real upgrade path end to end.
func TestWebsocketSweep(t *testing.T) {
	ts := newTestServer(t, server.DefaultConfig())

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(map[string]interface{}{
		"type": "sweep", "digits": "0012", "panels": 30,
		"alpha_start_deg": 0.0, "alpha_end_deg": 2.0, "alpha_step_deg": 1.0,
	}))

	var types []string
	for i := 0; i < 4; i++ {
		var msg map[string]interface{}
		require.NoError(t, conn.ReadJSON(&msg))
		types = append(types, msg["type"].(string))
	}
	assert.Equal(t, []string{"point", "point", "point", "done"}, types)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := server.LoadConfig(filepath.Join(t.TempDir(), "absent.ini"))
	require.NoError(t, err)
	assert.Equal(t, server.DefaultConfig(), cfg)
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aerostack.ini")
	require.NoError(t, os.WriteFile(path, []byte(
		"[server]\nAddr = :9090\n\n[solver]\nDefaultPanels = 60\n\n[cache]\nEnable = false\n"), 0o644))

	cfg, err := server.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 60, cfg.DefaultPanels)
	assert.False(t, cfg.EnableCache)
	assert.Equal(t, "*", cfg.AllowOrigin, "absent keys keep defaults")
}
