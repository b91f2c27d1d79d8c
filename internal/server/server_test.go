package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/sketchont/internal/config"
	"github.com/agenthands/sketchont/internal/core"
	"github.com/agenthands/sketchont/internal/metrics"
)

type fakeDriver struct {
	queries int
	err     error
}

func (f *fakeDriver) ExecuteQuery(ctx context.Context, query string, params map[string]any) (neo4j.EagerResult, error) {
	f.queries++
	return neo4j.EagerResult{}, f.err
}
func (f *fakeDriver) BuildIndices(ctx context.Context) error { return nil }
func (f *fakeDriver) Close(ctx context.Context) error        { return nil }

const diagramYAML = `
concepts:
  - id: person
    prefix: ex
    uri: Person
    geometry: {x: 0, y: 0, width: 120, height: 60}
individuals:
  - id: alice
    prefix: ex
    uri: Alice
    geometry: {x: 121, y: 1, width: 80, height: 30}
rhombuses:
  - {id: rh, prefix: ex, uri: knows, type: "owl:SymmetricProperty"}
`

func newTestServer(t *testing.T, d *fakeDriver) (*gin.Engine, *prometheus.Registry) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	engine := core.NewEngine(core.DefaultOptions(), nil, m)
	if d != nil {
		engine.Driver = d
	}
	cfg := config.Default().Server
	cfg.MaxBodyBytes = 4096
	return NewServer(cfg, engine, nil, m, reg).SetupRouter(), reg
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r, _ := newTestServer(t, nil)
	w := do(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok", "publish": false}`, w.Body.String())
}

func TestResolveEndpoint(t *testing.T) {
	r, _ := newTestServer(t, nil)

	w := do(r, http.MethodPost, "/v1/resolve?mode=owl", diagramYAML)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		RunID   string `json:"run_id"`
		Mode    string `json:"mode"`
		Diagram struct {
			Individuals []struct {
				ID   string   `json:"id"`
				Type []string `json:"type"`
			} `json:"individuals"`
			Relations []struct {
				ID        string `json:"id"`
				Symmetric bool   `json:"symmetric"`
				Domain    any    `json:"domain"`
			} `json:"relations"`
		} `json:"diagram"`
		Errors map[string]any `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.RunID)
	assert.Equal(t, "owl", body.Mode)
	require.Len(t, body.Diagram.Individuals, 1)
	assert.Equal(t, []string{"ex:Person"}, body.Diagram.Individuals[0].Type)
	require.Len(t, body.Diagram.Relations, 1)
	assert.Equal(t, "rh", body.Diagram.Relations[0].ID)
	assert.True(t, body.Diagram.Relations[0].Symmetric)
	assert.Equal(t, false, body.Diagram.Relations[0].Domain)
	assert.Empty(t, body.Errors)
}

func TestResolveEndpoint_BadRequests(t *testing.T) {
	r, _ := newTestServer(t, nil)

	w := do(r, http.MethodPost, "/v1/resolve?mode=shacl", diagramYAML)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown mode")

	w = do(r, http.MethodPost, "/v1/resolve", `{"concepts": [{"id": "a"}, {"id": "a"}]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "duplicate element id")

	w = do(r, http.MethodPost, "/v1/resolve", strings.Repeat("#", 5000))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestPublishEndpoint(t *testing.T) {
	r, _ := newTestServer(t, nil)
	w := do(r, http.MethodPost, "/v1/publish", diagramYAML)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	d := &fakeDriver{}
	r, _ = newTestServer(t, d)
	w = do(r, http.MethodPost, "/v1/publish?mode=rdf", diagramYAML)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body PublishResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, core.ModeRDF, body.Mode)
	assert.Equal(t, 0, body.Diagnostics)
	assert.Positive(t, d.queries)

	w = do(r, http.MethodDelete, "/v1/graphs/"+body.RunID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	r, _ := newTestServer(t, nil)
	do(r, http.MethodPost, "/v1/resolve", diagramYAML)

	w := do(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `sketchont_resolution_runs_total{mode="owl",status="clean"} 1`)
	assert.Contains(t, w.Body.String(), `sketchont_http_requests_total{code="200",method="POST",route="/v1/resolve"} 1`)
}

func TestCORS(t *testing.T) {
	r, _ := newTestServer(t, nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/v1/resolve", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
