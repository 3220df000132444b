package api

import (
	"net/http"
	"time"
)

// HealthHandler reports liveness and the size of the active catalog.
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	const endpoint = "health"
	const method = "GET"

	n := 0
	if s.Placements != nil {
		n = s.Placements.Len()
	}
	writeJSON(w, map[string]interface{}{"status": "ok", "placements": n})

	s.finish(endpoint, method, http.StatusOK, start)
}
