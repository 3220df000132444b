package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

// helper function to write JSON response
func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// ListPlacements returns the active catalog.
func (s *Server) ListPlacements(w http.ResponseWriter, r *http.Request) {
	if s.Placements == nil {
		http.Error(w, "placements unavailable", http.StatusInternalServerError)
		return
	}
	writeJSON(w, s.Placements.All())
}

// GetPlacement returns a single placement by name.
func (s *Server) GetPlacement(w http.ResponseWriter, r *http.Request) {
	if s.Placements == nil {
		http.Error(w, "placements unavailable", http.StatusInternalServerError)
		return
	}
	p := s.Placements.Get(mux.Vars(r)["name"])
	if p == nil {
		http.Error(w, "placement not found", http.StatusNotFound)
		return
	}
	writeJSON(w, p)
}
