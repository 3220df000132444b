package adsense

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	"github.com/patrickwarner/openadsense/internal/observability"
)

var (
	// ErrInvalidIdentifier is returned when the effective publisher id or the
	// slot id fails validation.
	ErrInvalidIdentifier = errors.New("invalid publisherId or slotId")
	// ErrMissingCustomLayout is returned for LayoutCustom without a node.
	ErrMissingCustomLayout = errors.New("custom layout is not provided")
)

const (
	clientPrefix   = "ca-"
	DefaultComment = "regular"

	pushScript = `<script id="google-adsense-push">(window.adsbygoogle = window.adsbygoogle || []).push({});</script>`
)

// Unit describes a single ad placement on a page.
type Unit struct {
	// PublisherID is used only when the renderer has no configured publisher.
	PublisherID string
	SlotID      string
	Layout      Layout
	// CustomLayout is rendered verbatim when Layout is LayoutCustom.
	CustomLayout templ.Component
	// Comment distinguishes sibling units in the rendering key. Defaults to "regular".
	Comment string
}

// Navigator supplies the path of the page being rendered.
type Navigator interface {
	Path() string
}

// PathNavigator is a Navigator backed by a fixed path.
type PathNavigator string

func (p PathNavigator) Path() string { return string(p) }

// Options configures a Renderer.
type Options struct {
	// PublisherID overrides Unit.PublisherID for every unit when non-empty.
	PublisherID string
	Logger      *zap.Logger
	Metrics     observability.MetricsRegistry
}

// Renderer turns Unit descriptions into components.
type Renderer struct {
	publisherID string
	logger      *zap.Logger
	metrics     observability.MetricsRegistry
}

// NewRenderer constructs a Renderer. Nil logger and metrics are replaced by no-ops.
func NewRenderer(opts Options) *Renderer {
	r := &Renderer{
		publisherID: opts.PublisherID,
		logger:      opts.Logger,
		metrics:     opts.Metrics,
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	if r.metrics == nil {
		r.metrics = observability.NewNoOpRegistry()
	}
	return r
}

// Resolved is the outcome of validating a Unit and choosing its layout.
type Resolved struct {
	ClientID string
	SlotID   string
	// Layout is the arm actually taken; unknown layouts resolve to LayoutDisplay.
	Layout Layout
	Ad     templ.Component
}

// PublisherID returns the publisher id that wins for u.
func (r *Renderer) PublisherID(u Unit) string {
	if r.publisherID != "" {
		return r.publisherID
	}
	return u.PublisherID
}

// Resolve validates u and selects its layout node without logging.
func (r *Renderer) Resolve(u Unit) (Resolved, error) {
	pub := r.PublisherID(u)
	if !IsPublisherID(pub) || !IsSlotID(u.SlotID) {
		return Resolved{}, ErrInvalidIdentifier
	}

	res := Resolved{ClientID: clientPrefix + pub, SlotID: u.SlotID}

	switch u.Layout {
	case LayoutInArticle:
		res.Layout = LayoutInArticle
		res.Ad = InArticle(res.ClientID, res.SlotID)
	case LayoutCustom:
		if u.CustomLayout == nil {
			return Resolved{}, ErrMissingCustomLayout
		}
		res.Layout = LayoutCustom
		res.Ad = u.CustomLayout
	default:
		// display, empty and unrecognised layouts
		res.Layout = LayoutDisplay
		res.Ad = Display(res.ClientID, res.SlotID)
	}
	return res, nil
}

// Unit returns the container component for u on the page supplied by nav.
// Invalid units are logged and yield nil; nothing is rendered for them.
func (r *Renderer) Unit(nav Navigator, u Unit) templ.Component {
	res, err := r.Resolve(u)
	if err != nil {
		r.logger.Error(fmt.Sprintf("[adsense] %s for the unit", err),
			zap.String("slot_id", u.SlotID),
			zap.String("layout", string(u.Layout)),
		)
		r.metrics.IncrementUnitsSuppressed(suppressReason(err))
		return nil
	}

	comment := u.Comment
	if comment == "" {
		comment = DefaultComment
	}
	var path string
	if nav != nil {
		path = nav.Path()
	}

	r.metrics.IncrementUnitsRendered(string(res.Layout))
	return container(RenderingKey(path, u.SlotID, comment), res.Ad)
}

// RenderingKey derives the key that tells sibling units apart. Every "/" in
// path becomes "-" but only the first space in comment is replaced.
func RenderingKey(path, slotID, comment string) string {
	return strings.ReplaceAll(path, "/", "-") + "-" + slotID + "-" + strings.Replace(comment, " ", "-", 1)
}

func suppressReason(err error) string {
	switch {
	case errors.Is(err, ErrMissingCustomLayout):
		return "missing_custom_layout"
	default:
		return "invalid_identifier"
	}
}

// container wraps the ad node and queues a fill request once the node is in
// the document.
func container(key string, ad templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div data-ad-key="%s">`, templ.EscapeString(key)); err != nil {
			return err
		}
		if err := ad.Render(ctx, w); err != nil {
			return fmt.Errorf("render ad: %w", err)
		}
		_, err := io.WriteString(w, pushScript+`</div>`)
		return err
	})
}
