package adsense

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

const scriptSrc = "https://pagead2.googlesyndication.com/pagead/js/adsbygoogle.js"

// HeadScript loads the AdSense library for the publisher. It belongs in the
// document head, once per page. Invalid ids render nothing.
func HeadScript(publisherID string) templ.Component {
	if !IsPublisherID(publisherID) {
		return templ.NopComponent
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<script async src="%s?client=%s%s" crossorigin="anonymous"></script>`,
			scriptSrc, clientPrefix, templ.EscapeString(publisherID))
		return err
	})
}

// HTML renders c into a string. A nil component renders as "".
func HTML(ctx context.Context, c templ.Component) (string, error) {
	if c == nil {
		return "", nil
	}
	var b strings.Builder
	if err := c.Render(ctx, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}
