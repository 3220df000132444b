package placements

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeCustomHTML(t *testing.T) {
	cases := []struct {
		name, in     string
		keep, reject []string
	}{
		{
			name: "keeps ins and data attributes",
			in:   `<ins class="adsbygoogle" data-ad-client="ca-pub-1" data-ad-slot="1"></ins>`,
			keep: []string{`<ins`, `class="adsbygoogle"`, `data-ad-client="ca-pub-1"`, `data-ad-slot="1"`},
		},
		{
			name:   "drops scripts and handlers",
			in:     `<div onmouseover="x()"><ins class="adsbygoogle"></ins></div><script>steal()</script>`,
			keep:   []string{`<div>`, `<ins class="adsbygoogle"></ins>`},
			reject: []string{"script", "steal", "onmouseover"},
		},
		{
			name:   "drops iframes",
			in:     `<iframe src="https://evil.example"></iframe><span>ad</span>`,
			keep:   []string{`<span>ad</span>`},
			reject: []string{"iframe", "evil"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := SanitizeCustomHTML(tc.in)
			for _, k := range tc.keep {
				assert.Contains(t, out, k)
			}
			for _, r := range tc.reject {
				assert.NotContains(t, out, r)
			}
		})
	}
}

func TestCustomLayout(t *testing.T) {
	var b strings.Builder
	require.NoError(t, CustomLayout(`<ins class="adsbygoogle"></ins><script>x()</script>`).Render(context.Background(), &b))
	assert.Equal(t, `<ins class="adsbygoogle"></ins>`, b.String())
}
