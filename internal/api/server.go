package api

import (
	"errors"

	"github.com/patrickwarner/openadsense/internal/adsense"
	"github.com/patrickwarner/openadsense/internal/config"
	"github.com/patrickwarner/openadsense/internal/observability"
	"github.com/patrickwarner/openadsense/internal/placements"

	"go.uber.org/zap"
)

var errNoLoader = errors.New("placements loader unavailable")

// Server groups dependencies for HTTP handlers.
type Server struct {
	Logger     *zap.Logger
	Renderer   *adsense.Renderer
	Placements *placements.Store
	Loader     *placements.Loader
	Metrics    observability.MetricsRegistry
	Config     config.Config
}

// NewServer constructs a Server. The renderer is built from cfg so the
// configured publisher overrides any publisher named in the catalog.
func NewServer(logger *zap.Logger, store *placements.Store, loader *placements.Loader, metrics observability.MetricsRegistry, cfg config.Config) *Server {
	return &Server{
		Logger: logger,
		Renderer: adsense.NewRenderer(adsense.Options{
			PublisherID: cfg.PublisherID,
			Logger:      logger,
			Metrics:     metrics,
		}),
		Placements: store,
		Loader:     loader,
		Metrics:    metrics,
		Config:     cfg,
	}
}

// Reload refreshes the placement catalog from disk.
func (s *Server) Reload() error {
	if s.Loader == nil {
		return errNoLoader
	}
	return s.Loader.Reload()
}
