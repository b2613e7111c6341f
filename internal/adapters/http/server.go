package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rtakeda/flowdoc/pkg/domain"
)

// Engine defines the interface for the flowdoc core as seen by the
// HTTP surface.
type Engine interface {
	Inspect() (*domain.Graph, error)
	Mermaid() (string, error)
}

// graphResponse is the JSON projection of a flow graph.
type graphResponse struct {
	Nodes []domain.Node `json:"nodes"`
	Edges []domain.Edge `json:"edges"`
}

// Server exposes a read-only introspection API over the engine.
type Server struct {
	Engine Engine
}

// NewHandler creates a new HTTP handler for the engine.
// When gatherer is non-nil, Prometheus metrics are exposed on /metrics.
func NewHandler(engine Engine, gatherer prometheus.Gatherer) http.Handler {
	server := &Server{Engine: engine}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", server.handleHealth)
	r.Get("/diagram.mmd", server.handleDiagram)
	r.Get("/graph.json", server.handleGraph)
	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	out, err := s.Engine.Mermaid()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(out))
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	g, err := s.Engine.Inspect()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(graphResponse{
		Nodes: g.Nodes(),
		Edges: g.Edges(),
	})
}
