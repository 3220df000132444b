package placements

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/patrickwarner/openadsense/internal/observability"
)

// Loader keeps a Store in sync with a catalog file.
type Loader struct {
	path    string
	store   *Store
	logger  *zap.Logger
	metrics observability.MetricsRegistry

	reloadMu sync.Mutex
}

// NewLoader constructs a Loader for path. Nil logger and metrics are replaced by no-ops.
func NewLoader(path string, store *Store, logger *zap.Logger, metrics observability.MetricsRegistry) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = observability.NewNoOpRegistry()
	}
	return &Loader{path: path, store: store, logger: logger, metrics: metrics}
}

// Path returns the catalog file path.
func (l *Loader) Path() string { return l.path }

// Reload reads the catalog file and replaces the store contents. On error
// the previous catalog stays active.
func (l *Loader) Reload() error {
	l.reloadMu.Lock()
	defer l.reloadMu.Unlock()

	ps, err := LoadFile(l.path)
	if err == nil {
		err = l.store.Replace(ps)
	}
	if err != nil {
		l.metrics.IncrementCatalogReloads("error")
		return fmt.Errorf("reload %s: %w", l.path, err)
	}

	l.metrics.IncrementCatalogReloads("ok")
	l.metrics.SetCatalogSize(len(ps))
	l.logger.Info("placements loaded", zap.String("file", l.path), zap.Int("placements", len(ps)))
	return nil
}

// Watch reloads the catalog whenever the file changes until ctx is done.
// The parent directory is watched so editors that replace the file by rename
// are picked up.
func (l *Loader) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	target := filepath.Clean(l.path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := l.Reload(); err != nil {
				l.logger.Error("auto reload", zap.Error(err))
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			l.logger.Warn("placements watcher error", zap.Error(err))
		}
	}
}
