package placements

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/patrickwarner/openadsense/internal/adsense"
)

const catalog = `
publisher_id: pub-1234567890123456
placements:
  - name: sidebar
    slot_id: "1234567890"
    comment: sidebar ad
  - name: article
    slot_id: "2345678901"
    layout: in-article
  - name: partner
    publisher_id: pub-6543210987654321
    slot_id: "3456789012"
    layout: custom
    custom_html: '<ins class="adsbygoogle" data-ad-slot="3456789012" onclick="x()"></ins><script>alert(1)</script>'
`

func TestParse(t *testing.T) {
	ps, err := Parse([]byte(catalog))
	require.NoError(t, err)
	require.Len(t, ps, 3)

	assert.Equal(t, "sidebar", ps[0].Name)
	assert.Equal(t, "pub-1234567890123456", ps[0].PublisherID, "file default applies")
	assert.Equal(t, "pub-6543210987654321", ps[2].PublisherID, "explicit publisher kept")

	custom := ps[2].CustomHTML
	assert.Contains(t, custom, `<ins class="adsbygoogle" data-ad-slot="3456789012">`)
	assert.NotContains(t, custom, "script")
	assert.NotContains(t, custom, "onclick")
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("placements:\n  - slot_id: \"1\"\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("placements:\n  - name: a\n  - name: a\n"))
	assert.ErrorIs(t, err, ErrDuplicateName)

	_, err = Parse([]byte("placements: [\n"))
	assert.Error(t, err)
}

func TestPlacementUnit(t *testing.T) {
	ps, err := Parse([]byte(catalog))
	require.NoError(t, err)

	u := ps[1].Unit()
	assert.Equal(t, adsense.LayoutInArticle, u.Layout)
	assert.Nil(t, u.CustomLayout)

	u = ps[0].Unit()
	assert.Equal(t, adsense.LayoutDisplay, u.Layout)
	assert.Equal(t, "sidebar ad", u.Comment)

	u = ps[2].Unit()
	assert.Equal(t, adsense.LayoutCustom, u.Layout)
	require.NotNil(t, u.CustomLayout)
	html, err := adsense.HTML(context.Background(), u.CustomLayout)
	require.NoError(t, err)
	assert.Equal(t, ps[2].CustomHTML, html)
}

func TestStore(t *testing.T) {
	s := NewStore()
	assert.Nil(t, s.Get("x"))
	assert.Zero(t, s.Len())

	require.NoError(t, s.Replace([]Placement{{Name: "a", SlotID: "1"}, {Name: "b", SlotID: "2"}}))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "2", s.Get("b").SlotID)

	all := s.All()
	all[0].SlotID = "mutated"
	assert.Equal(t, "1", s.Get("a").SlotID)

	err := s.Replace([]Placement{{Name: "a"}, {Name: "a"}})
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Equal(t, 2, s.Len(), "failed replace keeps the old catalog")
}

func writeCatalog(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func TestLoaderReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "placements.yaml")
	writeCatalog(t, path, catalog)

	store := NewStore()
	l := NewLoader(path, store, zap.NewNop(), nil)
	require.NoError(t, l.Reload())
	assert.Equal(t, 3, store.Len())

	writeCatalog(t, path, "placements: [\n")
	assert.Error(t, l.Reload())
	assert.Equal(t, 3, store.Len())

	l = NewLoader(filepath.Join(t.TempDir(), "missing.yaml"), store, nil, nil)
	assert.Error(t, l.Reload())
}

func TestLoaderWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "placements.yaml")
	writeCatalog(t, path, "placements:\n  - name: one\n    slot_id: \"1234567890\"\n")

	store := NewStore()
	l := NewLoader(path, store, zap.NewNop(), nil)
	require.NoError(t, l.Reload())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Watch(ctx) }()

	// give the watcher time to register before writing
	time.Sleep(100 * time.Millisecond)
	writeCatalog(t, path, catalog)

	assert.Eventually(t, func() bool { return store.Len() == 3 }, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
