// Command adunit renders AdSense unit markup to stdout, for static sites and
// build pipelines that cannot call the HTTP service.
package main

import (
	"fmt"
	"os"

	"github.com/a-h/templ"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/patrickwarner/openadsense/internal/adsense"
	"github.com/patrickwarner/openadsense/internal/config"
	"github.com/patrickwarner/openadsense/internal/observability"
	"github.com/patrickwarner/openadsense/internal/placements"
)

func main() {
	cfg := config.Load()
	logger, err := observability.InitStderrLogger("adunit")
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := newRootCmd(cfg, logger).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config, logger *zap.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "adunit",
		Short:         "Render Google AdSense units as HTML",
		SilenceUsage:  true,
	}
	root.AddCommand(newRenderCmd(cfg, logger), newHeadCmd(cfg))
	return root
}

type renderFlags struct {
	publisherID    string
	slotID         string
	layout         string
	comment        string
	path           string
	customHTML     string
	placement      string
	placementsFile string
}

func newRenderCmd(cfg config.Config, logger *zap.Logger) *cobra.Command {
	var f renderFlags
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one ad unit",
		Long: `Render one ad unit container, including the queue push script.

Examples:
  adunit render --publisher pub-1234567890123456 --slot 1234567890
  adunit render --slot 1234567890 --layout in-article --path /blog/post
  adunit render --placement sidebar --placements-file placements.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := f.unit()
			if err != nil {
				return err
			}
			r := adsense.NewRenderer(adsense.Options{PublisherID: cfg.PublisherID, Logger: logger})
			c := r.Unit(adsense.PathNavigator(f.path), u)
			if c == nil {
				return fmt.Errorf("unit not rendered, see log for details")
			}
			return c.Render(cmd.Context(), cmd.OutOrStdout())
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.publisherID, "publisher", "p", "", "publisher id (ignored when ADSENSE_PUBLISHER_ID is set)")
	fl.StringVarP(&f.slotID, "slot", "s", "", "ad slot id")
	fl.StringVarP(&f.layout, "layout", "l", string(adsense.LayoutDisplay), "display, in-article or custom")
	fl.StringVarP(&f.comment, "comment", "c", adsense.DefaultComment, "comment used in the rendering key")
	fl.StringVar(&f.path, "path", "/", "page path the unit is rendered on")
	fl.StringVar(&f.customHTML, "custom-html", "", "markup for the custom layout")
	fl.StringVar(&f.placement, "placement", "", "render a named placement from the catalog")
	fl.StringVar(&f.placementsFile, "placements-file", cfg.PlacementsFile, "placement catalog")
	return cmd
}

func (f renderFlags) unit() (adsense.Unit, error) {
	if f.placement != "" {
		ps, err := placements.LoadFile(f.placementsFile)
		if err != nil {
			return adsense.Unit{}, err
		}
		for _, p := range ps {
			if p.Name == f.placement {
				return p.Unit(), nil
			}
		}
		return adsense.Unit{}, fmt.Errorf("placement %q not found in %s", f.placement, f.placementsFile)
	}

	u := adsense.Unit{
		PublisherID: f.publisherID,
		SlotID:      f.slotID,
		Layout:      adsense.ParseLayout(f.layout),
		Comment:     f.comment,
	}
	if f.customHTML != "" {
		u.CustomLayout = templ.Raw(f.customHTML)
	}
	return u, nil
}

func newHeadCmd(cfg config.Config) *cobra.Command {
	var publisherID string
	cmd := &cobra.Command{
		Use:   "head",
		Short: "Render the AdSense loader script tag",
		RunE: func(cmd *cobra.Command, args []string) error {
			pub := cfg.PublisherID
			if pub == "" {
				pub = publisherID
			}
			if !adsense.IsPublisherID(pub) {
				return fmt.Errorf("invalid publisher id %q", pub)
			}
			return adsense.HeadScript(pub).Render(cmd.Context(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&publisherID, "publisher", "p", "", "publisher id (ignored when ADSENSE_PUBLISHER_ID is set)")
	return cmd
}
