package placements

import (
	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"
)

var customPolicy = newCustomPolicy()

func newCustomPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("ins", "div", "span")
	p.AllowAttrs("class", "id").OnElements("ins", "div", "span")
	p.AllowDataAttributes()
	p.AllowStyles("display", "text-align", "width", "height", "min-width", "min-height").OnElements("ins", "div")
	return p
}

// SanitizeCustomHTML strips everything from externally supplied markup except
// the container and <ins> elements an AdSense unit needs. Scripts are removed;
// the renderer adds its own queue push.
func SanitizeCustomHTML(s string) string {
	return customPolicy.Sanitize(s)
}

// CustomLayout sanitises s and wraps it as a custom layout node.
func CustomLayout(s string) templ.Component {
	return templ.Raw(SanitizeCustomHTML(s))
}
