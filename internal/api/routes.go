package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/patrickwarner/openadsense/internal/middleware"
)

// NewRouter wires the HTTP routes for s.
func NewRouter(s *Server) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.WithTraceLogger(s.Logger))

	r.HandleFunc("/health", s.HealthHandler).Methods("GET")
	r.HandleFunc("/head-script", s.HeadScriptHandler).Methods("GET")
	r.HandleFunc("/units", s.PageUnitsHandler).Methods("GET")
	r.HandleFunc("/units/{name}", s.UnitHandler).Methods("GET")
	r.HandleFunc("/reload", s.ReloadHandler).Methods("POST")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/placements", s.ListPlacements).Methods("GET")
	api.HandleFunc("/placements/{name}", s.GetPlacement).Methods("GET")

	r.Handle("/metrics", promhttp.Handler())

	return otelhttp.NewHandler(r, "openadsense")
}
