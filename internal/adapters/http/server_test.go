package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	httpAdapter "github.com/rtakeda/flowdoc/internal/adapters/http"
	"github.com/rtakeda/flowdoc/pkg/domain"
	"github.com/rtakeda/flowdoc/pkg/observability"
)

// fakeEngine serves a fixed graph.
type fakeEngine struct {
	graph *domain.Graph
}

func (f *fakeEngine) Inspect() (*domain.Graph, error) {
	return f.graph, nil
}

func (f *fakeEngine) Mermaid() (string, error) {
	return "graph TD;\n    a([a]);\n", nil
}

func newFakeEngine(t *testing.T) *fakeEngine {
	t.Helper()
	g := domain.NewGraph()
	if err := g.AddNode(domain.Node{ID: "a"}); err != nil {
		t.Fatalf("AddNode failed: %v", err)
	}
	g.AddEdge(domain.Edge{Source: "a", Target: "a", Conditional: true})
	return &fakeEngine{graph: g}
}

func TestServer_Diagram(t *testing.T) {
	handler := httpAdapter.NewHandler(newFakeEngine(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/diagram.mmd", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.HasPrefix(rec.Body.String(), "graph TD;") {
		t.Errorf("Unexpected body: %q", rec.Body.String())
	}
}

func TestServer_Graph(t *testing.T) {
	handler := httpAdapter.NewHandler(newFakeEngine(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/graph.json", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var resp struct {
		Nodes []domain.Node `json:"nodes"`
		Edges []domain.Edge `json:"edges"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if len(resp.Nodes) != 1 || resp.Nodes[0].ID != "a" {
		t.Errorf("Unexpected nodes: %+v", resp.Nodes)
	}
	if len(resp.Edges) != 1 || !resp.Edges[0].Conditional {
		t.Errorf("Unexpected edges: %+v", resp.Edges)
	}
}

func TestServer_Health(t *testing.T) {
	handler := httpAdapter.NewHandler(newFakeEngine(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
}

func TestServer_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)
	metrics.RecordSync("updated")

	handler := httpAdapter.NewHandler(newFakeEngine(t), reg)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "flowdoc_syncs_total") {
		t.Errorf("Metrics output missing flowdoc_syncs_total:\n%s", rec.Body.String())
	}
}

func TestServer_MetricsDisabled(t *testing.T) {
	handler := httpAdapter.NewHandler(newFakeEngine(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 when metrics are disabled, got %d", rec.Code)
	}
}
