package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/patrickwarner/openadsense/internal/adsense"
	"github.com/patrickwarner/openadsense/internal/middleware"
	"github.com/patrickwarner/openadsense/internal/observability"
)

var tracer = observability.Tracer("openadsense")

const htmlContentType = "text/html; charset=utf-8"

// pagePath returns the navigation path a fragment is rendered for. Hosts pass
// it explicitly because the fragment request itself is not the page.
func pagePath(r *http.Request) string {
	p := r.URL.Query().Get("path")
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

func (s *Server) finish(endpoint, method string, status int, start time.Time) {
	s.Metrics.IncrementRequests(endpoint, method, strconv.Itoa(status))
	s.Metrics.RecordRequestLatency(endpoint, method, time.Since(start))
}

// UnitHandler handles GET /units/{name} and renders one placement as an HTML
// fragment. Suppressed units answer 204 with an empty body.
func (s *Server) UnitHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	const endpoint = "unit"
	const method = "GET"

	name := mux.Vars(r)["name"]
	path := pagePath(r)
	ctx, span := tracer.Start(r.Context(), "UnitHandler",
		trace.WithAttributes(
			attribute.String("placement", name),
			attribute.String("page.path", path),
		))
	defer span.End()

	logger := middleware.LoggerFromRequest(r, s.Logger)

	p := s.Placements.Get(name)
	if p == nil {
		http.Error(w, "placement not found", http.StatusNotFound)
		s.finish(endpoint, method, http.StatusNotFound, start)
		return
	}

	c := s.Renderer.Unit(adsense.PathNavigator(path), p.Unit())
	if c == nil {
		span.SetAttributes(attribute.Bool("suppressed", true))
		w.WriteHeader(http.StatusNoContent)
		s.finish(endpoint, method, http.StatusNoContent, start)
		return
	}

	html, err := adsense.HTML(ctx, c)
	if err != nil {
		logger.Error("render unit", zap.String("placement", name), zap.Error(err))
		http.Error(w, "render failed", http.StatusInternalServerError)
		s.finish(endpoint, method, http.StatusInternalServerError, start)
		return
	}

	w.Header().Set("Content-Type", htmlContentType)
	_, _ = w.Write([]byte(html))
	s.finish(endpoint, method, http.StatusOK, start)
}

// PageUnitsHandler handles GET /units and renders every placement in catalog
// order. Suppressed placements are skipped.
func (s *Server) PageUnitsHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	const endpoint = "units"
	const method = "GET"

	path := pagePath(r)
	ctx, span := tracer.Start(r.Context(), "PageUnitsHandler",
		trace.WithAttributes(attribute.String("page.path", path)))
	defer span.End()

	logger := middleware.LoggerFromRequest(r, s.Logger)
	nav := adsense.PathNavigator(path)

	var b strings.Builder
	rendered := 0
	for _, p := range s.Placements.All() {
		c := s.Renderer.Unit(nav, p.Unit())
		if c == nil {
			continue
		}
		if err := c.Render(ctx, &b); err != nil {
			logger.Error("render unit", zap.String("placement", p.Name), zap.Error(err))
			http.Error(w, "render failed", http.StatusInternalServerError)
			s.finish(endpoint, method, http.StatusInternalServerError, start)
			return
		}
		rendered++
	}
	span.SetAttributes(attribute.Int("units.rendered", rendered))

	w.Header().Set("Content-Type", htmlContentType)
	_, _ = w.Write([]byte(b.String()))
	s.finish(endpoint, method, http.StatusOK, start)
}

// HeadScriptHandler renders the AdSense loader for the configured publisher,
// or for ?publisher_id= when none is configured.
func (s *Server) HeadScriptHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	const endpoint = "head_script"
	const method = "GET"

	pub := s.Config.PublisherID
	if pub == "" {
		pub = r.URL.Query().Get("publisher_id")
	}
	if !adsense.IsPublisherID(pub) {
		w.WriteHeader(http.StatusNoContent)
		s.finish(endpoint, method, http.StatusNoContent, start)
		return
	}

	html, err := adsense.HTML(r.Context(), adsense.HeadScript(pub))
	if err != nil {
		http.Error(w, "render failed", http.StatusInternalServerError)
		s.finish(endpoint, method, http.StatusInternalServerError, start)
		return
	}
	w.Header().Set("Content-Type", htmlContentType)
	_, _ = w.Write([]byte(html))
	s.finish(endpoint, method, http.StatusOK, start)
}
