package adsense

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Layout selects the markup used for an ad unit.
type Layout string

const (
	LayoutDisplay   Layout = "display"
	LayoutInArticle Layout = "in-article"
	LayoutCustom    Layout = "custom"
)

// ParseLayout converts a raw layout name. An empty name means display.
// Unknown names are returned unchanged; the renderer treats them as display.
func ParseLayout(s string) Layout {
	if s == "" {
		return LayoutDisplay
	}
	return Layout(s)
}

// Display renders a responsive display ad bound to the client/slot pair.
func Display(clientID, slotID string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<ins class="adsbygoogle" style="display:block" data-ad-client="%s" data-ad-slot="%s" data-ad-format="auto" data-full-width-responsive="true"></ins>`,
			templ.EscapeString(clientID), templ.EscapeString(slotID))
		return err
	})
}

// InArticle renders a fluid ad styled for placement between paragraphs.
func InArticle(clientID, slotID string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<ins class="adsbygoogle" style="display:block; text-align:center;" data-ad-layout="in-article" data-ad-format="fluid" data-ad-client="%s" data-ad-slot="%s"></ins>`,
			templ.EscapeString(clientID), templ.EscapeString(slotID))
		return err
	})
}
