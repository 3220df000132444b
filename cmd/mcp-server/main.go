package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/patrickwarner/openadsense/internal/adsense"
	"github.com/patrickwarner/openadsense/internal/config"
	"github.com/patrickwarner/openadsense/internal/observability"
	"github.com/patrickwarner/openadsense/internal/placements"
)

type RenderAdUnitInput struct {
	Placement   string `json:"placement,omitempty" jsonschema:"name of a catalog placement; other unit fields are ignored when set"`
	PublisherID string `json:"publisher_id,omitempty" jsonschema:"publisher id, e.g. pub-1234567890123456"`
	SlotID      string `json:"slot_id,omitempty" jsonschema:"ten digit ad slot id"`
	Layout      string `json:"layout,omitempty" jsonschema:"display, in-article or custom"`
	CustomHTML  string `json:"custom_html,omitempty" jsonschema:"markup for the custom layout"`
	Comment     string `json:"comment,omitempty" jsonschema:"comment used in the rendering key"`
	Path        string `json:"path,omitempty" jsonschema:"page path the unit is rendered on, defaults to /"`
}

type RenderAdUnitOutput struct {
	Rendered bool   `json:"rendered"`
	HTML     string `json:"html,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

type ListPlacementsInput struct{}

type ListPlacementsOutput struct {
	Placements []placements.Placement `json:"placements"`
}

// AdUnitTools holds the dependencies of the MCP tool handlers.
type AdUnitTools struct {
	renderer *adsense.Renderer
	store    *placements.Store
	logger   *zap.Logger
}

// RenderAdUnit renders a placement or an ad hoc unit.
func (s *AdUnitTools) RenderAdUnit(ctx context.Context, req *mcp.CallToolRequest, input RenderAdUnitInput) (*mcp.CallToolResult, RenderAdUnitOutput, error) {
	var u adsense.Unit
	if input.Placement != "" {
		p := s.store.Get(input.Placement)
		if p == nil {
			return nil, RenderAdUnitOutput{}, fmt.Errorf("placement %q not found", input.Placement)
		}
		u = p.Unit()
	} else {
		u = adsense.Unit{
			PublisherID: input.PublisherID,
			SlotID:      input.SlotID,
			Layout:      adsense.ParseLayout(input.Layout),
			Comment:     input.Comment,
		}
		if input.CustomHTML != "" {
			u.CustomLayout = placements.CustomLayout(input.CustomHTML)
		}
	}

	path := input.Path
	if path == "" {
		path = "/"
	}

	// Resolve first so the caller learns why nothing was rendered.
	if _, err := s.renderer.Resolve(u); err != nil {
		s.logger.Info("unit suppressed", zap.String("slot_id", u.SlotID), zap.Error(err))
		return nil, RenderAdUnitOutput{Rendered: false, Reason: err.Error()}, nil
	}

	html, err := adsense.HTML(ctx, s.renderer.Unit(adsense.PathNavigator(path), u))
	if err != nil {
		return nil, RenderAdUnitOutput{}, fmt.Errorf("render unit: %w", err)
	}
	return nil, RenderAdUnitOutput{Rendered: true, HTML: html}, nil
}

// ListPlacements returns the catalog.
func (s *AdUnitTools) ListPlacements(ctx context.Context, req *mcp.CallToolRequest, input ListPlacementsInput) (*mcp.CallToolResult, ListPlacementsOutput, error) {
	return nil, ListPlacementsOutput{Placements: s.store.All()}, nil
}

func newMCPServer(tools *AdUnitTools) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "openadsense",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_ad_unit",
		Description: "Render a Google AdSense unit as HTML, either a named placement or an ad hoc unit",
	}, tools.RenderAdUnit)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_placements",
		Description: "List the placements in the catalog",
	}, tools.ListPlacements)

	return server
}

func main() {
	cfg := config.Load()

	// stdout carries the protocol
	logger, err := observability.InitStderrLogger(cfg.ServiceName + "-mcp")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	store := placements.NewStore()
	loader := placements.NewLoader(cfg.PlacementsFile, store, logger, nil)
	if err := loader.Reload(); err != nil {
		logger.Warn("placements unavailable, only ad hoc units can be rendered", zap.Error(err))
	}

	ctx := context.Background()
	if cfg.WatchPlacements {
		go func() {
			if err := loader.Watch(ctx); err != nil {
				logger.Error("placements watcher stopped", zap.Error(err))
			}
		}()
	}

	tools := &AdUnitTools{
		renderer: adsense.NewRenderer(adsense.Options{PublisherID: cfg.PublisherID, Logger: logger}),
		store:    store,
		logger:   logger,
	}
	server := newMCPServer(tools)

	var logBuffer bytes.Buffer
	transport := &mcp.LoggingTransport{
		Transport: &mcp.StdioTransport{},
		Writer:    &logBuffer,
	}

	logger.Info("MCP server running via stdio", zap.Int("placements", store.Len()))
	if err := server.Run(ctx, transport); err != nil {
		logger.Fatal("Server error", zap.Error(err), zap.String("mcp_logs", logBuffer.String()))
	}
}
