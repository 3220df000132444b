package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/patrickwarner/openadsense/internal/config"
)

func execute(t *testing.T, cfg config.Config, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(cfg, zap.NewNop())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRenderCommand(t *testing.T) {
	out, err := execute(t, config.Config{}, "render", "-p", "pub-1234567890123456", "-s", "1234567890", "--path", "/blog/post", "-c", "sidebar ad")
	require.NoError(t, err)
	assert.Contains(t, out, `data-ad-key="-blog-post-1234567890-sidebar-ad"`)
	assert.Contains(t, out, `data-ad-client="ca-pub-1234567890123456"`)
}

func TestRenderCommandInvalid(t *testing.T) {
	out, err := execute(t, config.Config{}, "render", "-p", "pub-1", "-s", "1234567890")
	assert.Error(t, err)
	assert.Empty(t, out)

	_, err = execute(t, config.Config{}, "render", "-p", "pub-1234567890123456", "-s", "1234567890", "-l", "custom")
	assert.Error(t, err)
}

func TestRenderCommandConfiguredPublisher(t *testing.T) {
	out, err := execute(t, config.Config{PublisherID: "pub-9999999999999999"}, "render", "-p", "pub-1234567890123456", "-s", "1234567890")
	require.NoError(t, err)
	assert.Contains(t, out, "ca-pub-9999999999999999")
}

func TestRenderCommandPlacement(t *testing.T) {
	path := filepath.Join(t.TempDir(), "placements.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
placements:
  - name: article
    publisher_id: pub-1234567890123456
    slot_id: "2345678901"
    layout: in-article
`), 0o600))

	out, err := execute(t, config.Config{}, "render", "--placement", "article", "--placements-file", path)
	require.NoError(t, err)
	assert.Contains(t, out, `data-ad-layout="in-article"`)

	_, err = execute(t, config.Config{}, "render", "--placement", "missing", "--placements-file", path)
	assert.Error(t, err)
}

func TestHeadCommand(t *testing.T) {
	out, err := execute(t, config.Config{}, "head", "-p", "pub-1234567890123456")
	require.NoError(t, err)
	assert.Contains(t, out, "client=ca-pub-1234567890123456")

	_, err = execute(t, config.Config{}, "head")
	assert.Error(t, err)
}
